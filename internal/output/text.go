// Copyright 2026 The Surveyboard Authors
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/davetashner/surveyboard/internal/resolver"
)

func init() {
	RegisterFormatter(NewTextFormatter())
}

// TextFormatter writes the dashboard as aligned terminal tables. Colors
// follow fatih/color, which disables itself when stdout is not a terminal
// or NO_COLOR is set.
type TextFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*TextFormatter)(nil)

// NewTextFormatter returns a new TextFormatter.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format writes the dashboard to w.
func (f *TextFormatter) Format(d *Dashboard, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s\n%s\n\n", colorBold.Sprint(d.Title), d.Intro); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	summary := NewTextTable(
		TextColumn{Header: "SECTION"},
		TextColumn{Header: "STATUS", Color: ColorStatus},
		TextColumn{Header: "ROWS", Align: AlignRight},
		TextColumn{Header: "SOURCE"},
	)
	for _, p := range d.Panels {
		rec := p.Record
		summary.AddRow(rec.Section.Label, string(rec.Status), fmt.Sprintf("%d", rec.Table.Len()), rec.Source)
	}
	if err := summary.Render(w); err != nil {
		return err
	}

	for _, p := range d.Panels {
		if err := writeTextPanel(w, p); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "\n%s\n", color.New(color.Faint).Sprint(d.Caption)); err != nil {
		return fmt.Errorf("write footer: %w", err)
	}
	return nil
}

func writeTextPanel(w io.Writer, p Panel) error {
	rec := p.Record
	if _, err := fmt.Fprintf(w, "\n%s\n", color.New(color.Bold, color.Underline).Sprintf("%s Overview", rec.Section.Title())); err != nil {
		return fmt.Errorf("write panel heading: %w", err)
	}
	if !rec.OK() {
		paint := colorYellow
		if rec.Status == resolver.StatusSourceMissing {
			paint = colorRed
		}
		if _, err := fmt.Fprintf(w, "  %s\n", paint.Sprint(rec.Message)); err != nil {
			return fmt.Errorf("write panel message: %w", err)
		}
		return nil
	}
	for _, n := range p.Charts.Notices {
		if _, err := fmt.Fprintf(w, "  %s\n", colorCyan.Sprint(n)); err != nil {
			return fmt.Errorf("write notice: %w", err)
		}
	}

	cols := rec.Table.Columns()
	tcols := make([]TextColumn, len(cols))
	for i, c := range cols {
		tcols[i] = TextColumn{Header: c}
	}
	tbl := NewTextTable(tcols...)
	for _, r := range rec.Table.Rows() {
		tbl.AddRow(r.Strings()...)
	}
	return tbl.Render(w)
}

// Shared color printers for text output.
var (
	colorRed    = color.New(color.FgRed)
	colorYellow = color.New(color.FgYellow)
	colorGreen  = color.New(color.FgGreen)
	colorCyan   = color.New(color.FgCyan)
	colorBold   = color.New(color.Bold)
)

// ColorStatus colors ok/empty/source_missing status labels. It is a
// ColorFunc for status columns.
func ColorStatus(val string) string {
	switch resolver.Status(val) {
	case resolver.StatusOK:
		return colorGreen.Sprint(val)
	case resolver.StatusEmpty:
		return colorYellow.Sprint(val)
	case resolver.StatusSourceMissing:
		return colorRed.Sprint(val)
	default:
		return val
	}
}
