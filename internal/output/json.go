// Copyright 2026 The Surveyboard Authors
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/davetashner/surveyboard/internal/resolver"
)

func init() {
	RegisterFormatter(NewJSONFormatter())
}

// JSONEnvelope wraps the dashboard with summary metadata.
type JSONEnvelope struct {
	*Dashboard
	Summary JSONSummary `json:"summary"`
}

// JSONSummary counts panels by resolution status.
type JSONSummary struct {
	Sections      int `json:"sections"`
	OK            int `json:"ok"`
	Empty         int `json:"empty"`
	SourceMissing int `json:"source_missing"`
}

// JSONFormatter writes the dashboard as a JSON document.
type JSONFormatter struct {
	// Compact controls whether output is compact (single line) or pretty-printed.
	// When false (default), output is indented with two spaces.
	Compact bool
}

// Compile-time interface check.
var _ Formatter = (*JSONFormatter)(nil)

// NewJSONFormatter returns a new JSONFormatter with default settings.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// Format writes the dashboard to w. Output is compact when Compact is set or
// when w is a file that is not a terminal.
func (f *JSONFormatter) Format(d *Dashboard, w io.Writer) error {
	counts := d.statusCounts()
	envelope := JSONEnvelope{
		Dashboard: d,
		Summary: JSONSummary{
			Sections:      len(d.Panels),
			OK:            counts[resolver.StatusOK],
			Empty:         counts[resolver.StatusEmpty],
			SourceMissing: counts[resolver.StatusSourceMissing],
		},
	}

	var data []byte
	var err error
	if f.shouldCompact(w) {
		data, err = json.Marshal(envelope)
	} else {
		data, err = json.MarshalIndent(envelope, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	if _, err := w.Write([]byte("\n")); err != nil {
		return fmt.Errorf("write json trailing newline: %w", err)
	}
	return nil
}

// shouldCompact determines whether to use compact mode.
// If Compact is explicitly set, use that value.
// Otherwise, auto-detect: pretty-print for TTYs, compact for pipes.
func (f *JSONFormatter) shouldCompact(w io.Writer) bool {
	if f.Compact {
		return true
	}
	if file, ok := w.(*os.File); ok {
		fi, err := file.Stat()
		if err != nil {
			return false
		}
		return fi.Mode()&os.ModeCharDevice == 0
	}
	// Non-file writers (buffers, HTTP responses) get pretty output.
	return false
}
