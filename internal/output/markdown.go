// Copyright 2026 The Surveyboard Authors
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/davetashner/surveyboard/internal/chart"
	"github.com/davetashner/surveyboard/internal/resolver"
)

func init() {
	RegisterFormatter(NewMarkdownFormatter())
}

// MarkdownFormatter writes the dashboard as a Markdown report.
type MarkdownFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*MarkdownFormatter)(nil)

// NewMarkdownFormatter returns a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Name returns the format name.
func (m *MarkdownFormatter) Name() string {
	return "markdown"
}

// Format writes the dashboard to w.
//
// The output includes:
//   - A title heading and intro line
//   - A status table with one row per section
//   - One section per panel with its notices, chart counts and rows
//   - The footer caption
func (m *MarkdownFormatter) Format(d *Dashboard, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "# %s\n\n%s\n\n", d.Title, d.Intro); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := writeStatusTable(w, d.Panels); err != nil {
		return err
	}
	for _, p := range d.Panels {
		if err := writePanel(w, p); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "---\n\n_%s_\n", d.Caption); err != nil {
		return fmt.Errorf("write footer: %w", err)
	}
	return nil
}

func writeStatusTable(w io.Writer, panels []Panel) error {
	if _, err := fmt.Fprintf(w, "| Section | Status | Rows | Source |\n|---------|--------|------|--------|\n"); err != nil {
		return fmt.Errorf("write status table: %w", err)
	}
	for _, p := range panels {
		rec := p.Record
		if _, err := fmt.Fprintf(w, "| %s | %s | %d | `%s` |\n",
			mdEscape(rec.Section.Label), rec.Status, rec.Table.Len(), rec.Source); err != nil {
			return fmt.Errorf("write status table: %w", err)
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return fmt.Errorf("write status table: %w", err)
	}
	return nil
}

func writePanel(w io.Writer, p Panel) error {
	rec := p.Record
	if _, err := fmt.Fprintf(w, "## %s Overview\n\n", rec.Section.Title()); err != nil {
		return fmt.Errorf("write panel heading: %w", err)
	}

	if rec.Status != resolver.StatusOK {
		if _, err := fmt.Fprintf(w, "> **%s:** %s\n\n", statusLabel(rec.Status), rec.Message); err != nil {
			return fmt.Errorf("write panel message: %w", err)
		}
		return nil
	}

	for _, c := range p.Charts.Charts {
		if err := writeChartSummary(w, c); err != nil {
			return err
		}
	}
	for _, n := range p.Charts.Notices {
		if _, err := fmt.Fprintf(w, "> %s\n\n", n); err != nil {
			return fmt.Errorf("write notice: %w", err)
		}
	}
	return writeMarkdownTable(w, rec)
}

func writeChartSummary(w io.Writer, c chart.Chart) error {
	if _, err := fmt.Fprintf(w, "**%s**\n\n", c.Title); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}
	for i, label := range c.Labels {
		total := 0.0
		for _, s := range c.Series {
			if i < len(s.Values) {
				total += s.Values[i]
			}
		}
		if _, err := fmt.Fprintf(w, "- %s: %s\n", mdEscape(label), formatCount(total)); err != nil {
			return fmt.Errorf("write chart: %w", err)
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}
	return nil
}

func writeMarkdownTable(w io.Writer, rec resolver.Record) error {
	cols := rec.Table.Columns()
	if len(cols) == 0 {
		return nil
	}
	escaped := make([]string, len(cols))
	seps := make([]string, len(cols))
	for i, c := range cols {
		escaped[i] = mdEscape(c)
		seps[i] = "---"
	}
	if _, err := fmt.Fprintf(w, "| %s |\n| %s |\n", strings.Join(escaped, " | "), strings.Join(seps, " | ")); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	for _, r := range rec.Table.Rows() {
		cells := r.Strings()
		for i := range cells {
			cells[i] = mdEscape(cells[i])
		}
		if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(cells, " | ")); err != nil {
			return fmt.Errorf("write table: %w", err)
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}

func statusLabel(s resolver.Status) string {
	switch s {
	case resolver.StatusEmpty:
		return "Warning"
	case resolver.StatusSourceMissing:
		return "Error"
	default:
		return "Info"
	}
}

var mdEscaper = strings.NewReplacer("|", `\|`, "\n", " ")

func mdEscape(s string) string {
	return mdEscaper.Replace(s)
}

func formatCount(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
