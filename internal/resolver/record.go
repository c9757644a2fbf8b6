// Copyright 2026 The Surveyboard Authors
// SPDX-License-Identifier: MIT

package resolver

import (
	"github.com/davetashner/surveyboard/internal/section"
	"github.com/davetashner/surveyboard/internal/table"
)

// Status tags the outcome of a resolution.
type Status string

// Resolution outcomes.
const (
	// StatusOK means rows were found and metadata was derived.
	StatusOK Status = "ok"
	// StatusEmpty means the source loaded but no rows belong to the section.
	StatusEmpty Status = "empty"
	// StatusSourceMissing means the backing source could not be located.
	StatusSourceMissing Status = "source_missing"
)

// Record is the presentation record handed to renderers.
type Record struct {
	Section section.Spec `json:"section"`
	Status  Status       `json:"status"`
	// Source identifies the backing table (file name or object key).
	Source string `json:"source"`
	// Message is a human-readable notice for EMPTY and SOURCE_MISSING.
	Message string `json:"message,omitempty"`
	// Table is the resolved table; never nil, possibly empty.
	Table *table.Table `json:"table"`
	// QuestionColumns lists question-like columns in source order.
	QuestionColumns []string `json:"question_columns"`
	// Relabeled is true when a two-column table was renamed to
	// (Category, Count).
	Relabeled bool `json:"relabeled"`
}

// OK reports whether the record carries data.
func (r Record) OK() bool { return r.Status == StatusOK }
