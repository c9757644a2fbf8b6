// Copyright 2026 The Surveyboard Authors
// SPDX-License-Identifier: MIT

// Package resolver turns a selected survey section into a presentation
// record. It is the only place that decides between OK, EMPTY and
// SOURCE_MISSING; renderers consume the record and never touch storage.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/davetashner/surveyboard/internal/loader"
	"github.com/davetashner/surveyboard/internal/section"
	"github.com/davetashner/surveyboard/internal/table"
)

// Resolver resolves sections against one strategy. A Resolver is built per
// request (or per report) and holds no mutable state, so it is safe for
// concurrent use.
type Resolver struct {
	strategy       Strategy
	questionPrefix string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithQuestionPrefix sets the question column prefix (default "f").
func WithQuestionPrefix(prefix string) Option {
	return func(r *Resolver) {
		if prefix != "" {
			r.questionPrefix = prefix
		}
	}
}

// New returns a Resolver using strategy.
func New(strategy Strategy, opts ...Option) *Resolver {
	r := &Resolver{strategy: strategy, questionPrefix: table.DefaultQuestionPrefix}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Resolve is a convenience for New(strategy).Resolve(ctx, spec).
func Resolve(ctx context.Context, spec section.Spec, strategy Strategy) (Record, error) {
	return New(strategy).Resolve(ctx, spec)
}

// Strategy returns the strategy in use.
func (r *Resolver) Strategy() Strategy { return r.strategy }

// Resolve produces the presentation record for spec.
//
// A missing backing source yields StatusSourceMissing and a nil error.
// A *ConfigurationError is returned when the strategy cannot map spec at
// all; other errors come from reading or decoding the source.
func (r *Resolver) Resolve(ctx context.Context, spec section.Spec) (Record, error) {
	tbl, source, err := r.strategy.lookup(ctx, spec)
	if err != nil {
		if errors.Is(err, loader.ErrNotFound) {
			slog.Debug("section source missing", "section", spec.ID, "source", source)
			return Record{
				Section:         spec,
				Status:          StatusSourceMissing,
				Source:          source,
				Message:         fmt.Sprintf("Data source %q not found. Run the EDA step first.", source),
				Table:           table.Blank(),
				QuestionColumns: []string{},
			}, nil
		}
		return Record{}, fmt.Errorf("resolve section %s: %w", spec.ID, err)
	}

	if tbl.Len() == 0 {
		slog.Debug("section empty", "section", spec.ID, "source", source)
		return Record{
			Section:         spec,
			Status:          StatusEmpty,
			Source:          source,
			Message:         fmt.Sprintf("No data found for %s", spec.Title()),
			Table:           tbl,
			QuestionColumns: []string{},
		}, nil
	}

	tbl, relabeled := relabelIfPair(tbl)
	questions := tbl.QuestionColumns(r.questionPrefix)
	if questions == nil {
		questions = []string{}
	}

	slog.Debug("section resolved", "section", spec.ID, "source", source,
		"rows", tbl.Len(), "questions", len(questions), "relabeled", relabeled)
	return Record{
		Section:         spec,
		Status:          StatusOK,
		Source:          source,
		Table:           tbl,
		QuestionColumns: questions,
		Relabeled:       relabeled,
	}, nil
}

// ResolveAll resolves every section in the catalog, in catalog order.
func (r *Resolver) ResolveAll(ctx context.Context, catalog section.Catalog) ([]Record, error) {
	specs := catalog.All()
	out := make([]Record, 0, len(specs))
	for _, s := range specs {
		rec, err := r.Resolve(ctx, s)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// relabelIfPair applies the Category/Count relabel step to two-column
// tables and passes every other shape through unchanged.
func relabelIfPair(tbl *table.Table) (*table.Table, bool) {
	if tbl.Width() != 2 {
		return tbl, false
	}
	out, err := tbl.RelabelCategoryCount()
	if err != nil {
		return tbl, false
	}
	return out, true
}
