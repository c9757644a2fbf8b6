// Copyright 2026 The Surveyboard Authors
// SPDX-License-Identifier: MIT

// Package chart derives chart data from resolved section records and
// renders it as standalone SVG.
package chart

import (
	"fmt"

	"github.com/davetashner/surveyboard/internal/resolver"
	"github.com/davetashner/surveyboard/internal/table"
)

// Chart names, used in URLs and lookups.
const (
	NameDistribution = "distribution"
	NameQuestion     = "question"
	NameCategories   = "categories"
)

// NoQuestionsNotice is shown when a section table has no question columns.
const NoQuestionsNotice = "No question columns (like f1, f2, etc.) found in the dataset yet."

// Kind is the visual form of a chart.
type Kind string

// Chart kinds.
const (
	KindHistogram Kind = "histogram"
	KindBar       Kind = "bar"
)

// Series is one named run of values, aligned with Chart.Labels.
type Series struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// Chart is renderer-independent chart data. Multiple series are stacked.
type Chart struct {
	Name   string   `json:"name"`
	Kind   Kind     `json:"kind"`
	Title  string   `json:"title"`
	XLabel string   `json:"x_label,omitempty"`
	YLabel string   `json:"y_label,omitempty"`
	Labels []string `json:"labels"`
	Series []Series `json:"series"`
}

// Set is every chart derived for one record plus informational notices.
type Set struct {
	Charts  []Chart  `json:"charts"`
	Notices []string `json:"notices,omitempty"`
}

// Get returns the chart with the given name.
func (s Set) Get(name string) (Chart, bool) {
	for _, c := range s.Charts {
		if c.Name == name {
			return c, true
		}
	}
	return Chart{}, false
}

// Build derives the charts for rec. Records that are not OK carry no charts;
// their message is the whole presentation. sectionColumn defaults to
// resolver.DefaultSectionColumn.
func Build(rec resolver.Record, sectionColumn string) Set {
	set := Set{Charts: []Chart{}}
	if !rec.OK() || rec.Table == nil {
		return set
	}
	if sectionColumn == "" {
		sectionColumn = resolver.DefaultSectionColumn
	}
	title := rec.Section.Title()

	if rec.Relabeled {
		set.Charts = append(set.Charts, categories(rec.Table, title))
		return set
	}

	if rec.Table.HasColumn(sectionColumn) {
		set.Charts = append(set.Charts, distribution(rec.Table, sectionColumn, title))
	}
	if len(rec.QuestionColumns) == 0 {
		set.Notices = append(set.Notices, NoQuestionsNotice)
		return set
	}
	set.Charts = append(set.Charts, question(rec.Table, rec.QuestionColumns[0], sectionColumn, title))
	return set
}

// distribution counts rows per section value, one colored bar per value.
func distribution(t *table.Table, sectionColumn, title string) Chart {
	labels, counts := countBy(t, sectionColumn)
	return Chart{
		Name:   NameDistribution,
		Kind:   KindHistogram,
		Title:  "Response Distribution: " + title,
		XLabel: sectionColumn,
		YLabel: "count",
		Labels: labels,
		Series: []Series{{Name: "count", Values: counts}},
	}
}

// question counts answers to one question column, stacked by section value
// when the table has a section column.
func question(t *table.Table, column, sectionColumn, title string) Chart {
	c := Chart{
		Name:   NameQuestion,
		Kind:   KindBar,
		Title:  fmt.Sprintf("Example Question (%s): %s", column, title),
		XLabel: column,
		YLabel: "count",
	}

	if !t.HasColumn(sectionColumn) {
		labels, counts := countBy(t, column)
		c.Labels = labels
		c.Series = []Series{{Name: "count", Values: counts}}
		return c
	}

	labels, _ := countBy(t, column)
	groups, _ := countBy(t, sectionColumn)
	labelIdx := indexOf(labels)
	groupIdx := indexOf(groups)

	series := make([]Series, len(groups))
	for i, g := range groups {
		series[i] = Series{Name: g, Values: make([]float64, len(labels))}
	}
	for _, r := range t.Rows() {
		answer, _ := r.Get(column)
		group, _ := r.Get(sectionColumn)
		if answer.IsEmpty() || group.IsEmpty() {
			continue
		}
		series[groupIdx[group.String()]].Values[labelIdx[answer.String()]]++
	}
	c.Labels = labels
	c.Series = series
	return c
}

// categories plots a relabeled Category/Count table directly.
func categories(t *table.Table, title string) Chart {
	labels := make([]string, 0, t.Len())
	values := make([]float64, 0, t.Len())
	for _, r := range t.Rows() {
		cat, _ := r.Get(table.CategoryColumn)
		cnt, _ := r.Get(table.CountColumn)
		n, _ := cnt.Float()
		labels = append(labels, cat.String())
		values = append(values, n)
	}
	return Chart{
		Name:   NameCategories,
		Kind:   KindBar,
		Title:  "Response Categories: " + title,
		XLabel: table.CategoryColumn,
		YLabel: table.CountColumn,
		Labels: labels,
		Series: []Series{{Name: table.CountColumn, Values: values}},
	}
}

// countBy returns the distinct non-empty values of column in first-seen
// order and how often each occurs.
func countBy(t *table.Table, column string) ([]string, []float64) {
	values, ok := t.Column(column)
	if !ok {
		return []string{}, []float64{}
	}
	labels := []string{}
	counts := []float64{}
	seen := map[string]int{}
	for _, v := range values {
		if v.IsEmpty() {
			continue
		}
		key := v.String()
		i, ok := seen[key]
		if !ok {
			i = len(labels)
			seen[key] = i
			labels = append(labels, key)
			counts = append(counts, 0)
		}
		counts[i]++
	}
	return labels, counts
}

func indexOf(values []string) map[string]int {
	m := make(map[string]int, len(values))
	for i, v := range values {
		m[v] = i
	}
	return m
}
