// Copyright 2026 The Surveyboard Authors
// SPDX-License-Identifier: MIT

package resolver

import (
	"fmt"
	"sort"
	"strings"

	"github.com/davetashner/surveyboard/internal/section"
)

// ConfigurationError reports a mismatch between the section enumeration and
// the resolution configuration. It is a programming error: callers validate
// at startup and refuse to serve.
type ConfigurationError struct {
	// Unmapped lists section IDs with no configured source.
	Unmapped []string
	// Unknown lists mapping keys that are not section IDs.
	Unknown []string
	// Reason holds any other configuration problem.
	Reason string
}

func (e *ConfigurationError) Error() string {
	var parts []string
	if len(e.Unmapped) > 0 {
		parts = append(parts, fmt.Sprintf("no source mapped for section(s) %s", strings.Join(e.Unmapped, ", ")))
	}
	if len(e.Unknown) > 0 {
		parts = append(parts, fmt.Sprintf("unknown section(s) in mapping %s", strings.Join(e.Unknown, ", ")))
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}
	if len(parts) == 0 {
		return "configuration error"
	}
	return "configuration error: " + strings.Join(parts, "; ")
}

// ValidateMapping checks that sources maps every section in the catalog to a
// non-blank source and names no section outside it.
func ValidateMapping(catalog section.Catalog, sources map[string]string) error {
	cerr := &ConfigurationError{}
	for _, s := range catalog.All() {
		if strings.TrimSpace(sources[s.ID]) == "" {
			cerr.Unmapped = append(cerr.Unmapped, s.ID)
		}
	}
	for id := range sources {
		if _, ok := catalog.Get(id); !ok {
			cerr.Unknown = append(cerr.Unknown, id)
		}
	}
	sort.Strings(cerr.Unknown)

	if len(cerr.Unmapped) > 0 || len(cerr.Unknown) > 0 {
		return cerr
	}
	return nil
}
