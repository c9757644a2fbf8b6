// Copyright 2026 The Surveyboard Authors
// SPDX-License-Identifier: MIT

package output

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/davetashner/surveyboard/internal/chart"
	"github.com/davetashner/surveyboard/internal/resolver"
	"github.com/davetashner/surveyboard/internal/section"
)

// Default dashboard text.
const (
	DefaultTitle   = "AgriDrone Farmer Survey Dashboard"
	DefaultIntro   = "Explore farmer survey responses interactively across Sections A–E."
	DefaultCaption = "Developed as part of AgriDrone Survey Analysis • Phase 3 Dashboard"
)

// Panel is one section of the dashboard: its record and derived charts.
type Panel struct {
	Record resolver.Record `json:"record"`
	Charts chart.Set       `json:"charts"`
}

// Dashboard is every section resolved at one point in time.
type Dashboard struct {
	Title       string    `json:"title"`
	Intro       string    `json:"intro"`
	Caption     string    `json:"caption"`
	GeneratedAt time.Time `json:"generated_at"`
	RunID       string    `json:"run_id"`
	Strategy    string    `json:"strategy"`
	// Selected is the section ID shown first (sidebar selection).
	Selected string  `json:"selected"`
	Panels   []Panel `json:"panels"`
}

// Options tune BuildDashboard.
type Options struct {
	Title   string
	Caption string
	// Selected is the initially active section ID; defaults to the first.
	Selected string
	// SectionColumn is passed to chart.Build.
	SectionColumn string

	nowFunc func() time.Time
}

// BuildDashboard resolves every section of catalog concurrently. Panels
// keep catalog order. Any resolution error aborts the build.
func BuildDashboard(ctx context.Context, r *resolver.Resolver, catalog section.Catalog, opts Options) (*Dashboard, error) {
	specs := catalog.All()
	panels := make([]Panel, len(specs))

	g, gctx := errgroup.WithContext(ctx)
	for i, s := range specs {
		g.Go(func() error {
			rec, err := r.Resolve(gctx, s)
			if err != nil {
				return err
			}
			panels[i] = Panel{Record: rec, Charts: chart.Build(rec, opts.SectionColumn)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	d := newDashboard(r, panels, opts)
	if _, ok := catalog.Get(d.Selected); !ok && len(specs) > 0 {
		d.Selected = specs[0].ID
	}
	return d, nil
}

// SectionDashboard resolves a single section into a one-panel dashboard.
// The dashboard title is the section label.
func SectionDashboard(ctx context.Context, r *resolver.Resolver, spec section.Spec, opts Options) (*Dashboard, error) {
	rec, err := r.Resolve(ctx, spec)
	if err != nil {
		return nil, err
	}
	if opts.Title == "" {
		opts.Title = spec.Label
	}
	opts.Selected = spec.ID
	panels := []Panel{{Record: rec, Charts: chart.Build(rec, opts.SectionColumn)}}
	return newDashboard(r, panels, opts), nil
}

func newDashboard(r *resolver.Resolver, panels []Panel, opts Options) *Dashboard {
	now := time.Now()
	if opts.nowFunc != nil {
		now = opts.nowFunc()
	}

	d := &Dashboard{
		Title:       opts.Title,
		Intro:       DefaultIntro,
		Caption:     opts.Caption,
		GeneratedAt: now.UTC(),
		RunID:       uuid.NewString(),
		Strategy:    r.Strategy().Name(),
		Selected:    opts.Selected,
		Panels:      panels,
	}
	if d.Title == "" {
		d.Title = DefaultTitle
	}
	if d.Caption == "" {
		d.Caption = DefaultCaption
	}
	return d
}

// Panel returns the panel for a section ID.
func (d *Dashboard) Panel(id string) (Panel, bool) {
	for _, p := range d.Panels {
		if p.Record.Section.ID == id {
			return p, true
		}
	}
	return Panel{}, false
}

// statusCounts tallies panels by status.
func (d *Dashboard) statusCounts() map[resolver.Status]int {
	counts := make(map[resolver.Status]int, 3)
	for _, p := range d.Panels {
		counts[p.Record.Status]++
	}
	return counts
}
