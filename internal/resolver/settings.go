// Copyright 2026 The Surveyboard Authors
// SPDX-License-Identifier: MIT

package resolver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/davetashner/surveyboard/internal/loader"
	"github.com/davetashner/surveyboard/internal/section"
)

// Mode selects a resolution strategy.
type Mode string

// Supported modes.
const (
	ModeFilter    Mode = "filter"
	ModeDedicated Mode = "dedicated"
)

// ParseMode validates a mode name. Empty input selects ModeFilter.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeFilter:
		return ModeFilter, nil
	case ModeDedicated:
		return ModeDedicated, nil
	default:
		return "", fmt.Errorf("invalid strategy %q (must be filter or dedicated)", s)
	}
}

// Settings describes how to build a Resolver. It is validated once at
// startup and then used to build a fresh Resolver for every request.
type Settings struct {
	Mode Mode
	// SharedSource is the shared table for ModeFilter.
	SharedSource string
	// SectionColumn overrides DefaultSectionColumn for ModeFilter.
	SectionColumn string
	// Sources maps section ID to source for ModeDedicated.
	Sources map[string]string
	// QuestionPrefix overrides the question column prefix.
	QuestionPrefix string
	// Loader reads sources.
	Loader loader.Loader
}

// Validate checks the settings against the catalog. Mapping problems are
// returned as *ConfigurationError.
func (s Settings) Validate(catalog section.Catalog) error {
	if s.Loader == nil {
		return &ConfigurationError{Reason: "no loader configured"}
	}
	switch s.Mode {
	case ModeFilter, "":
		if strings.TrimSpace(s.SharedSource) == "" {
			return &ConfigurationError{Reason: "filter strategy requires shared_source"}
		}
		return nil
	case ModeDedicated:
		return ValidateMapping(catalog, s.Sources)
	default:
		return &ConfigurationError{Reason: fmt.Sprintf("unknown strategy %q", s.Mode)}
	}
}

// NewResolver builds a Resolver for one request. In filter mode the shared
// table is loaded here; a missing shared table is not an error, every
// section then resolves to StatusSourceMissing.
func (s Settings) NewResolver(ctx context.Context) (*Resolver, error) {
	opts := []Option{WithQuestionPrefix(s.QuestionPrefix)}

	if s.Mode == ModeDedicated {
		return New(DedicatedFileStrategy{Sources: s.Sources, Loader: s.Loader}, opts...), nil
	}

	fs := FilterStrategy{Source: s.SharedSource, Column: s.SectionColumn}
	tbl, err := s.Loader.Load(ctx, s.SharedSource)
	switch {
	case errors.Is(err, loader.ErrNotFound):
		slog.Warn("shared table not found", "source", s.SharedSource)
	case err != nil:
		return nil, fmt.Errorf("load shared table: %w", err)
	default:
		fs.Table = tbl
	}
	return New(fs, opts...), nil
}
