// Copyright 2026 The Surveyboard Authors
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"net"
	"net/url"
	"sort"
	"strings"
	"unicode"

	"github.com/davetashner/surveyboard/internal/output"
	"github.com/davetashner/surveyboard/internal/resolver"
	"github.com/davetashner/surveyboard/internal/section"
)

// bucketSchemes are the blob drivers linked into the binary.
var bucketSchemes = []string{"azblob", "file", "gs", "mem", "s3"}

// Validate checks all fields in the config and returns all errors at once.
// Section mapping completeness is checked separately by
// resolver.Settings.Validate so it can be reported as a configuration error.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.OutputFormat != "" {
		if _, err := output.GetFormatter(cfg.OutputFormat); err != nil {
			errs = append(errs, fmt.Sprintf("output_format: %v", err))
		}
	}

	if cfg.Strategy != "" {
		if _, err := resolver.ParseMode(cfg.Strategy); err != nil {
			errs = append(errs, fmt.Sprintf("strategy: %v", err))
		}
	}

	if cfg.BucketURL != "" {
		u, err := url.Parse(cfg.BucketURL)
		switch {
		case err != nil:
			errs = append(errs, fmt.Sprintf("bucket_url: %v", err))
		case !contains(bucketSchemes, u.Scheme):
			errs = append(errs, fmt.Sprintf("bucket_url: unsupported scheme %q (must be one of %s)", u.Scheme, strings.Join(bucketSchemes, ", ")))
		}
	}

	if cfg.QuestionPrefix != "" && !isIdentifier(cfg.QuestionPrefix) {
		errs = append(errs, fmt.Sprintf("question_prefix: must be letters, digits or underscores, got %q", cfg.QuestionPrefix))
	}

	if cfg.ListenAddr != "" {
		if _, _, err := net.SplitHostPort(cfg.ListenAddr); err != nil {
			errs = append(errs, fmt.Sprintf("listen_addr: %v", err))
		}
	}

	ids := make([]string, 0, len(cfg.Sections))
	for id := range cfg.Sections {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if !section.IsValidID(id) {
			errs = append(errs, fmt.Sprintf("sections.%s: unknown section (valid: %s)", id, strings.Join(section.IDs, ", ")))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func isIdentifier(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}
