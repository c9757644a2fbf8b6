// Copyright 2026 The Surveyboard Authors
// SPDX-License-Identifier: MIT

package chart

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/surveyboard/internal/resolver"
	"github.com/davetashner/surveyboard/internal/section"
	"github.com/davetashner/surveyboard/internal/table"
)

func resolve(t *testing.T, id string, tbl *table.Table) resolver.Record {
	t.Helper()
	spec, ok := section.DefaultCatalog().Get(id)
	require.True(t, ok)
	rec, err := resolver.Resolve(context.Background(), spec, resolver.FilterStrategy{Table: tbl, Source: "summary.csv"})
	require.NoError(t, err)
	return rec
}

func surveyTable() *table.Table {
	s := table.String
	return table.MustNew(
		[]string{"section", "f1", "notes"},
		[][]table.Value{
			{s("A1"), s("Yes"), s("x")},
			{s("A2"), s("No"), s("y")},
			{s("A1"), s("Yes"), table.Empty()},
			{s("A1"), table.Empty(), s("z")},
			{s("B"), s("No"), s("w")},
		},
	)
}

func TestBuild_DistributionAndQuestion(t *testing.T) {
	set := Build(resolve(t, "A", surveyTable()), "")
	require.Len(t, set.Charts, 2)
	assert.Empty(t, set.Notices)

	dist, ok := set.Get(NameDistribution)
	require.True(t, ok)
	assert.Equal(t, KindHistogram, dist.Kind)
	assert.Equal(t, []string{"A1", "A2"}, dist.Labels)
	assert.Equal(t, []float64{3, 1}, dist.Series[0].Values)
	assert.Contains(t, dist.Title, "Section A")

	q, ok := set.Get(NameQuestion)
	require.True(t, ok)
	assert.Equal(t, "Example Question (f1): Section A", q.Title)
	assert.Equal(t, []string{"Yes", "No"}, q.Labels)
	require.Len(t, q.Series, 2)
	assert.Equal(t, "A1", q.Series[0].Name)
	assert.Equal(t, []float64{2, 0}, q.Series[0].Values)
	assert.Equal(t, "A2", q.Series[1].Name)
	assert.Equal(t, []float64{0, 1}, q.Series[1].Values)
}

func TestBuild_NoQuestionColumns(t *testing.T) {
	tbl := table.MustNew([]string{"section", "farm_size"}, [][]table.Value{
		{table.String("C"), table.Number(4)},
		{table.String("C"), table.Number(9)},
		{table.String("C"), table.Number(2)},
	})
	rec := resolve(t, "C", tbl)
	// Two columns means the record was relabeled, so use three.
	require.True(t, rec.Relabeled)

	tbl = table.MustNew([]string{"section", "farm_size", "region"}, [][]table.Value{
		{table.String("C"), table.Number(4), table.String("north")},
	})
	set := Build(resolve(t, "C", tbl), "")
	assert.Equal(t, []string{NoQuestionsNotice}, set.Notices)
	require.Len(t, set.Charts, 1)
	assert.Equal(t, NameDistribution, set.Charts[0].Name)
}

func TestBuild_QuestionWithoutSectionColumn(t *testing.T) {
	tbl := table.MustNew([]string{"f1", "f2", "f3"}, [][]table.Value{
		{table.String("Yes"), table.String("a"), table.String("b")},
		{table.String("Yes"), table.String("a"), table.String("b")},
		{table.String("No"), table.String("a"), table.String("b")},
	})
	set := Build(resolve(t, "D", tbl), "")
	require.Len(t, set.Charts, 1)
	q := set.Charts[0]
	assert.Equal(t, NameQuestion, q.Name)
	assert.Equal(t, []string{"Yes", "No"}, q.Labels)
	require.Len(t, q.Series, 1)
	assert.Equal(t, []float64{2, 1}, q.Series[0].Values)
}

func TestBuild_Categories(t *testing.T) {
	tbl := table.MustNew([]string{"response", "n"}, [][]table.Value{
		{table.String("Yes"), table.Number(10)},
		{table.String("No"), table.Number(5)},
		{table.String("Unsure"), table.String("n/a")},
	})
	set := Build(resolve(t, "E", tbl), "")
	require.Len(t, set.Charts, 1)
	c := set.Charts[0]
	assert.Equal(t, NameCategories, c.Name)
	assert.Equal(t, []string{"Yes", "No", "Unsure"}, c.Labels)
	assert.Equal(t, []float64{10, 5, 0}, c.Series[0].Values)
	assert.Empty(t, set.Notices)
}

func TestBuild_NotOK(t *testing.T) {
	set := Build(resolve(t, "A", nil), "")
	assert.Empty(t, set.Charts)
	assert.Empty(t, set.Notices)

	set = Build(resolve(t, "C", surveyTable()), "")
	assert.Empty(t, set.Charts)
}

func TestRenderSVG(t *testing.T) {
	c := Chart{
		Title:  "Counts <&>",
		Kind:   KindBar,
		Labels: []string{"Yes", "No"},
		Series: []Series{{Name: "count", Values: []float64{2, 5}}},
		YLabel: "count",
	}
	out, err := RenderSVG(c)
	require.NoError(t, err)
	text := string(out)
	assert.True(t, strings.HasPrefix(text, "<svg"))
	assert.True(t, strings.HasSuffix(text, "</svg>"))
	assert.Contains(t, text, "Counts &lt;&amp;&gt;")
	assert.Equal(t, 2, strings.Count(text, "<title>"))
	assert.NotContains(t, text, "Legend")
}

func TestRenderSVG_StackedHasLegend(t *testing.T) {
	c := Chart{
		Title:  "Stacked",
		Labels: []string{"Yes", "No"},
		Series: []Series{
			{Name: "A1", Values: []float64{2, 0}},
			{Name: "A2", Values: []float64{1, 3}},
		},
	}
	out, err := RenderSVG(c)
	require.NoError(t, err)
	text := string(out)
	assert.Contains(t, text, ">A1</text>")
	assert.Contains(t, text, ">A2</text>")
	// Zero-height segments are skipped.
	assert.Equal(t, 3, strings.Count(text, "<title>"))
}

func TestRenderSVG_Empty(t *testing.T) {
	out, err := RenderSVG(Chart{Title: "Nothing"})
	require.NoError(t, err)
	assert.Contains(t, string(out), "Nothing")
	assert.NotContains(t, string(out), "<title>")
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, "abc", trimLabel("abc", 12))
	assert.Equal(t, "abcdefghi...", trimLabel("abcdefghijklmnop", 12))
	assert.Equal(t, "3", formatNumber(3))
	assert.Equal(t, "2.5", formatNumber(2.5))
}
