// Copyright 2026 The Surveyboard Authors
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"html/template"
	"io"
	"sync"

	"github.com/davetashner/surveyboard/internal/chart"
	"github.com/davetashner/surveyboard/internal/resolver"
)

func init() {
	RegisterFormatter(NewHTMLFormatter())
}

// HTMLFormatter writes a dashboard as a self-contained HTML page with a
// sidebar section selector, one tab per section, inline SVG charts and a
// table of the resolved rows.
type HTMLFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*HTMLFormatter)(nil)

// NewHTMLFormatter returns a new HTMLFormatter.
func NewHTMLFormatter() *HTMLFormatter {
	return &HTMLFormatter{}
}

// Name returns the format name.
func (h *HTMLFormatter) Name() string {
	return "html"
}

var (
	htmlTmplOnce sync.Once
	htmlTmpl     *template.Template
)

// Format writes the dashboard to w.
func (h *HTMLFormatter) Format(d *Dashboard, w io.Writer) error {
	htmlTmplOnce.Do(func() {
		htmlTmpl = template.Must(template.New("dashboard").Parse(htmlTemplate))
	})

	data, err := buildHTMLData(d)
	if err != nil {
		return err
	}
	if err := htmlTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("execute html template: %w", err)
	}
	return nil
}

// htmlData holds all template data for the HTML dashboard.
type htmlData struct {
	Title       string
	Intro       string
	Caption     string
	GeneratedAt string
	RunID       string
	Strategy    string
	Selected    string
	Panels      []htmlPanel
}

type htmlPanel struct {
	ID       string
	Label    string
	Title    string
	Active   bool
	Level    string // alert class: "", "warning" or "error"
	Message  string
	Notices  []string
	Charts   []htmlChart
	Columns  []string
	Rows     [][]string
	Relabel  bool
	Question []string
}

type htmlChart struct {
	Title string
	SVG   template.HTML
}

func buildHTMLData(d *Dashboard) (htmlData, error) {
	data := htmlData{
		Title:       d.Title,
		Intro:       d.Intro,
		Caption:     d.Caption,
		GeneratedAt: d.GeneratedAt.UTC().Format("2006-01-02 15:04 UTC"),
		RunID:       d.RunID,
		Strategy:    d.Strategy,
		Selected:    d.Selected,
		Panels:      make([]htmlPanel, 0, len(d.Panels)),
	}

	for _, p := range d.Panels {
		rec := p.Record
		hp := htmlPanel{
			ID:       rec.Section.ID,
			Label:    rec.Section.Label,
			Title:    rec.Section.Title(),
			Active:   rec.Section.ID == d.Selected,
			Level:    alertLevel(rec.Status),
			Message:  rec.Message,
			Notices:  p.Charts.Notices,
			Relabel:  rec.Relabeled,
			Question: rec.QuestionColumns,
		}
		for _, c := range p.Charts.Charts {
			svg, err := chart.RenderSVG(c)
			if err != nil {
				return htmlData{}, fmt.Errorf("render chart %s/%s: %w", rec.Section.ID, c.Name, err)
			}
			hp.Charts = append(hp.Charts, htmlChart{
				Title: c.Title,
				SVG:   template.HTML(svg), //nolint:gosec // chart text is XML-escaped by RenderSVG
			})
		}
		if rec.OK() {
			hp.Columns = rec.Table.Columns()
			for _, r := range rec.Table.Rows() {
				hp.Rows = append(hp.Rows, r.Strings())
			}
		}
		data.Panels = append(data.Panels, hp)
	}
	return data, nil
}

func alertLevel(s resolver.Status) string {
	switch s {
	case resolver.StatusEmpty:
		return "warning"
	case resolver.StatusSourceMissing:
		return "error"
	default:
		return ""
	}
}
