// Copyright 2026 The Surveyboard Authors
// SPDX-License-Identifier: MIT

package section

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	all := c.All()
	require.Len(t, all, 5)

	ids := make([]string, len(all))
	for i, s := range all {
		ids[i] = s.ID
	}
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, ids)
	assert.Equal(t, "A - General Info", all[0].Label)
	assert.Equal(t, "Section A", all[0].Title())
}

func TestNewCatalog_LabelOverrides(t *testing.T) {
	c := NewCatalog(map[string]string{"B": "B - Crops", "C": "  ", "Z": "ignored"})

	b, ok := c.Get("B")
	require.True(t, ok)
	assert.Equal(t, "B - Crops", b.Label)

	cs, ok := c.Get("C")
	require.True(t, ok)
	assert.Equal(t, "C - Drone Awareness", cs.Label, "blank label falls back to default")

	_, ok = c.Get("Z")
	assert.False(t, ok)
	assert.Len(t, c.All(), 5)
}

func TestCatalog_All_ReturnsCopy(t *testing.T) {
	c := DefaultCatalog()
	all := c.All()
	all[0].ID = "mutated"
	first, _ := c.Get("A")
	assert.Equal(t, "A", first.ID)
}

func TestCatalog_Parse(t *testing.T) {
	c := DefaultCatalog()
	tests := []struct {
		input string
		want  string
	}{
		{"A", "A"},
		{"a", "A"},
		{" e ", "E"},
		{"Section C", "C"},
		{"section c", "C"},
		{"D - Adoption Barriers", "D"},
		{"b - something else", "B"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := c.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.ID)
		})
	}
}

func TestCatalog_Parse_Unknown(t *testing.T) {
	c := DefaultCatalog()
	for _, in := range []string{"", "F", "Section Z", "AB"} {
		_, err := c.Parse(in)
		require.Error(t, err, in)
		assert.True(t, errors.Is(err, ErrUnknown), in)
	}
}

func TestIsValidID(t *testing.T) {
	assert.True(t, IsValidID("A"))
	assert.False(t, IsValidID("a"))
	assert.False(t, IsValidID("F"))
}
