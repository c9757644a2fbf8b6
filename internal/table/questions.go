// Copyright 2026 The Surveyboard Authors
// SPDX-License-Identifier: MIT

package table

import (
	"strings"
	"unicode"
)

// DefaultQuestionPrefix is the naming prefix of survey question columns
// (f1, f2, ...).
const DefaultQuestionPrefix = "f"

// QuestionColumns returns the columns that look like survey questions: the
// name starts with prefix (case-insensitive) and the next character is a
// digit. Source order is preserved. An empty prefix uses
// DefaultQuestionPrefix.
func (t *Table) QuestionColumns(prefix string) []string {
	return QuestionColumns(t.columns, prefix)
}

// QuestionColumns applies the question naming rule to a list of names.
func QuestionColumns(columns []string, prefix string) []string {
	if prefix == "" {
		prefix = DefaultQuestionPrefix
	}
	p := strings.ToLower(prefix)

	var out []string
	for _, c := range columns {
		name := strings.TrimSpace(c)
		if len(name) <= len(p) || !strings.HasPrefix(strings.ToLower(name), p) {
			continue
		}
		if unicode.IsDigit(rune(name[len(p)])) {
			out = append(out, c)
		}
	}
	return out
}
