// Copyright 2026 The Surveyboard Authors
// SPDX-License-Identifier: MIT

package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFormatter_Registered(t *testing.T) {
	for _, name := range []string{"html", "json", "markdown", "text"} {
		f, err := GetFormatter(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, f.Name())
	}
}

func TestGetFormatter_Unknown(t *testing.T) {
	_, err := GetFormatter("pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format: "pdf"`)
	assert.Contains(t, err.Error(), "html, json, markdown, text")
}

func TestFormatNames(t *testing.T) {
	assert.Equal(t, []string{"html", "json", "markdown", "text"}, FormatNames())
}
