// Copyright 2026 The Surveyboard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/surveyboard/internal/config"
)

func TestValidate_OK(t *testing.T) {
	dir := setupProject(t)

	stdout, _, err := execute(t, "-C", dir, "validate")
	require.NoError(t, err)
	assert.Contains(t, stdout, "valid: filter strategy, 5 sections")
	assert.Contains(t, stdout, "empty")
}

func TestValidate_SourceMissing(t *testing.T) {
	dir := setupProject(t)
	require.NoError(t, os.Remove(filepath.Join(dir, "results", "summary_statistics.csv")))

	stdout, _, err := execute(t, "-C", dir, "validate")
	require.Error(t, err)
	assert.Equal(t, ExitSourceMissing, exitCode(err))
	assert.Contains(t, stdout, "source_missing")
}

func TestValidate_UnknownSectionInMapping(t *testing.T) {
	dir := setupProject(t)
	writeTestFile(t, dir, config.FileName, "strategy: dedicated\nsections:\n  Z:\n    source: z.csv\n")

	_, _, err := execute(t, "-C", dir, "validate")
	require.Error(t, err)
	assert.Equal(t, ExitConfigError, exitCode(err))
}

func TestValidate_MalformedCSV(t *testing.T) {
	dir := setupProject(t)
	writeTestFile(t, dir, "results/summary_statistics.csv", "section,f1\nA,\"unterminated\n")

	_, _, err := execute(t, "-C", dir, "validate")
	require.Error(t, err)
	assert.Equal(t, -1, exitCode(err), "load errors surface as plain errors")
	assert.Contains(t, err.Error(), "load shared table")
}
