// Copyright 2026 The Surveyboard Authors
// SPDX-License-Identifier: MIT

package table

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() *Table {
	return MustNew(
		[]string{"section", "f1", "f2", "notes"},
		[][]Value{
			{String("A"), String("Yes"), Number(3), String("first")},
			{String("b"), String("No"), Number(1), Empty()},
			{String("A - General Info"), String("Yes"), Empty(), String("third")},
			{Empty(), String("No"), Number(2), String("untagged")},
		},
	)
}

func TestNew_PadsShortRows(t *testing.T) {
	tbl, err := New([]string{"a", "b", "c"}, [][]Value{{String("x")}})
	require.NoError(t, err)
	require.Equal(t, 1, tbl.Len())

	row := tbl.Row(0)
	v, ok := row.Get("c")
	require.True(t, ok)
	assert.True(t, v.IsEmpty())
}

func TestNew_RejectsLongRows(t *testing.T) {
	_, err := New([]string{"a"}, [][]Value{{String("x"), String("y")}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 1 has 2 fields")
}

func TestNew_CopiesInputs(t *testing.T) {
	cols := []string{"a", "b"}
	rows := [][]Value{{String("1"), String("2")}}
	tbl := MustNew(cols, rows)

	cols[0] = "mutated"
	rows[0][0] = String("mutated")

	assert.Equal(t, []string{"a", "b"}, tbl.Columns())
	v, _ := tbl.Row(0).Get("a")
	assert.Equal(t, "1", v.String())
}

func TestColumns_ReturnsCopy(t *testing.T) {
	tbl := sampleTable()
	cols := tbl.Columns()
	cols[0] = "mutated"
	assert.Equal(t, "section", tbl.Columns()[0])
}

func TestColumnIndex_CaseInsensitive(t *testing.T) {
	tbl := MustNew([]string{" Section ", "F1"}, nil)
	assert.Equal(t, 0, tbl.ColumnIndex("section"))
	assert.Equal(t, 1, tbl.ColumnIndex("f1"))
	assert.Equal(t, -1, tbl.ColumnIndex("missing"))
	assert.True(t, tbl.HasColumn("SECTION"))
}

func TestContainsFold(t *testing.T) {
	tbl := sampleTable()

	t.Run("case_insensitive_substring", func(t *testing.T) {
		got := tbl.ContainsFold("section", "a")
		require.Equal(t, 2, got.Len())
		v, _ := got.Row(0).Get("notes")
		assert.Equal(t, "first", v.String())
		v, _ = got.Row(1).Get("notes")
		assert.Equal(t, "third", v.String())
	})

	t.Run("empty_cells_never_match", func(t *testing.T) {
		got := tbl.ContainsFold("section", "")
		assert.Equal(t, 3, got.Len())
	})

	t.Run("no_match", func(t *testing.T) {
		got := tbl.ContainsFold("section", "C")
		assert.Equal(t, 0, got.Len())
		assert.Equal(t, tbl.Columns(), got.Columns())
	})

	t.Run("missing_column_returns_table", func(t *testing.T) {
		got := tbl.ContainsFold("nope", "A")
		assert.Same(t, tbl, got)
	})

	t.Run("source_untouched", func(t *testing.T) {
		_ = tbl.ContainsFold("section", "b")
		assert.Equal(t, 4, tbl.Len())
	})
}

func TestRelabelCategoryCount(t *testing.T) {
	tbl := MustNew([]string{"x", "y"}, [][]Value{
		{String("Yes"), Number(10)},
		{String("No"), Number(5)},
	})

	got, err := tbl.RelabelCategoryCount()
	require.NoError(t, err)
	assert.Equal(t, []string{CategoryColumn, CountColumn}, got.Columns())
	require.Equal(t, 2, got.Len())
	assert.Equal(t, []string{"Yes", "10"}, got.Row(0).Strings())
	assert.Equal(t, []string{"No", "5"}, got.Row(1).Strings())

	// Original is unchanged.
	assert.Equal(t, []string{"x", "y"}, tbl.Columns())
}

func TestRelabelCategoryCount_Precondition(t *testing.T) {
	for _, cols := range [][]string{{}, {"a"}, {"a", "b", "c"}} {
		_, err := MustNew(cols, nil).RelabelCategoryCount()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNotTwoColumns))
	}
}

func TestQuestionColumns(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		prefix  string
		want    []string
	}{
		{"spec_example", []string{"section", "f1", "f2", "notes"}, "", []string{"f1", "f2"}},
		{"keeps_source_order", []string{"f10", "section", "f2"}, "f", []string{"f10", "f2"}},
		{"ignores_words_with_prefix", []string{"farm_size", "feedback", "f3"}, "f", []string{"f3"}},
		{"case_insensitive_prefix", []string{"F1", "q1"}, "f", []string{"F1"}},
		{"custom_prefix", []string{"q1", "q2a", "f1"}, "q", []string{"q1", "q2a"}},
		{"none", []string{"section", "notes"}, "f", nil},
		{"bare_prefix", []string{"f"}, "f", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, QuestionColumns(tt.columns, tt.prefix))
		})
	}
}

func TestValueParse(t *testing.T) {
	assert.Equal(t, KindEmpty, Parse("").Kind())
	assert.Equal(t, KindEmpty, Parse("   ").Kind())
	assert.Equal(t, KindString, Parse("Yes").Kind())
	assert.Equal(t, KindString, Parse("NaN").Kind())

	v := Parse("12.5")
	f, ok := v.Float()
	require.True(t, ok)
	assert.InDelta(t, 12.5, f, 0.0001)
	assert.Equal(t, "12.5", v.String())

	_, ok = Parse("Yes").Float()
	assert.False(t, ok)
}

func TestTable_MarshalJSON(t *testing.T) {
	tbl := MustNew([]string{"Category", "Count"}, [][]Value{
		{String("Yes"), Number(10)},
		{Empty(), Parse("2.5")},
	})
	data, err := json.Marshal(tbl)
	require.NoError(t, err)
	assert.JSONEq(t, `{"columns":["Category","Count"],"rows":[["Yes",10],[null,2.5]]}`, string(data))

	data, err = json.Marshal(Blank())
	require.NoError(t, err)
	assert.JSONEq(t, `{"columns":[],"rows":[]}`, string(data))
}

func TestReadCSV(t *testing.T) {
	in := "\ufeffsection,f1,count\nA,Yes,10\nB,No\n\nC,,3\n"
	tbl, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"section", "f1", "count"}, tbl.Columns())
	require.Equal(t, 3, tbl.Len())

	v, _ := tbl.Row(0).Get("count")
	f, ok := v.Float()
	require.True(t, ok)
	assert.InDelta(t, 10, f, 0.0001)

	v, _ = tbl.Row(1).Get("count")
	assert.True(t, v.IsEmpty(), "short row is padded")

	v, _ = tbl.Row(2).Get("f1")
	assert.True(t, v.IsEmpty())
}

func TestReadCSV_Empty(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoHeader))
}

func TestReadCSV_HeaderOnly(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader("section,f1\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.Len())
	assert.Equal(t, 2, tbl.Width())
}

func TestReadCSV_TooManyFields(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("a,b\n1,2,3\n"))
	require.Error(t, err)
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	tbl := sampleTable()
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, tbl))

	back, err := ReadCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, tbl.Columns(), back.Columns())
	require.Equal(t, tbl.Len(), back.Len())
	for i := 0; i < tbl.Len(); i++ {
		assert.Equal(t, tbl.Row(i).Strings(), back.Row(i).Strings())
	}
}
