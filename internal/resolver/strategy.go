// Copyright 2026 The Surveyboard Authors
// SPDX-License-Identifier: MIT

package resolver

import (
	"context"
	"fmt"
	"strings"

	"github.com/davetashner/surveyboard/internal/loader"
	"github.com/davetashner/surveyboard/internal/section"
	"github.com/davetashner/surveyboard/internal/table"
)

// DefaultSectionColumn is the column the filter strategy matches against.
const DefaultSectionColumn = "section"

// Strategy maps a section to its table. Implementations return an error
// wrapping loader.ErrNotFound when the backing source is absent.
type Strategy interface {
	// Name returns the strategy name ("filter" or "dedicated").
	Name() string

	lookup(ctx context.Context, spec section.Spec) (*table.Table, string, error)
}

// FilterStrategy scopes one shared, already loaded table to a section.
type FilterStrategy struct {
	// Table is the shared table, or nil when it could not be loaded.
	Table *table.Table
	// Source names the shared table for messages.
	Source string
	// Column is the section column; DefaultSectionColumn when empty.
	Column string
}

// Compile-time interface check.
var _ Strategy = FilterStrategy{}

// Name returns "filter".
func (FilterStrategy) Name() string { return string(ModeFilter) }

func (f FilterStrategy) lookup(_ context.Context, spec section.Spec) (*table.Table, string, error) {
	if f.Table == nil {
		return nil, f.Source, fmt.Errorf("shared table %s: %w", f.Source, loader.ErrNotFound)
	}
	col := f.Column
	if col == "" {
		col = DefaultSectionColumn
	}
	// A table without a section column is already scoped to the request.
	if !f.Table.HasColumn(col) {
		return f.Table, f.Source, nil
	}
	return f.Table.ContainsFold(col, spec.ID), f.Source, nil
}

// DedicatedFileStrategy maps each section to its own source.
type DedicatedFileStrategy struct {
	// Sources maps section ID to source identifier.
	Sources map[string]string
	// Loader reads the mapped sources.
	Loader loader.Loader
}

// Compile-time interface check.
var _ Strategy = DedicatedFileStrategy{}

// Name returns "dedicated".
func (DedicatedFileStrategy) Name() string { return string(ModeDedicated) }

func (d DedicatedFileStrategy) lookup(ctx context.Context, spec section.Spec) (*table.Table, string, error) {
	src := strings.TrimSpace(d.Sources[spec.ID])
	if src == "" {
		return nil, "", &ConfigurationError{Unmapped: []string{spec.ID}}
	}
	if d.Loader == nil {
		return nil, src, &ConfigurationError{Reason: "dedicated strategy has no loader"}
	}
	tbl, err := d.Loader.Load(ctx, src)
	if err != nil {
		return nil, src, err
	}
	return tbl, src, nil
}
