// Copyright 2026 The Surveyboard Authors
// SPDX-License-Identifier: MIT

package table

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Kind classifies a cell value.
type Kind int

const (
	// KindEmpty is a missing cell (empty CSV field).
	KindEmpty Kind = iota
	// KindString is a non-numeric cell.
	KindString
	// KindNumber is a cell that parses as a float.
	KindNumber
)

// Value is a single scalar cell. The raw text is kept so values round-trip
// exactly as they appeared in the source.
type Value struct {
	kind Kind
	raw  string
	num  float64
}

// Empty returns the empty value.
func Empty() Value { return Value{} }

// String returns a string value. An empty string yields the empty value.
func String(s string) Value {
	if s == "" {
		return Value{}
	}
	return Value{kind: KindString, raw: s}
}

// Number returns a numeric value.
func Number(f float64) Value {
	return Value{kind: KindNumber, raw: strconv.FormatFloat(f, 'f', -1, 64), num: f}
}

// Parse infers the kind of a raw CSV field.
func Parse(raw string) Value {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Value{}
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return Value{kind: KindNumber, raw: raw, num: f}
	}
	return Value{kind: KindString, raw: raw}
}

// Kind reports the value kind.
func (v Value) Kind() Kind { return v.kind }

// IsEmpty reports whether the cell is missing.
func (v Value) IsEmpty() bool { return v.kind == KindEmpty }

// String returns the raw text of the value, or "" when empty.
func (v Value) String() string { return v.raw }

// Float returns the numeric value and whether the cell is numeric.
func (v Value) Float() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// MarshalJSON encodes numbers as JSON numbers, strings as strings and empty
// cells as null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNumber:
		return []byte(strconv.FormatFloat(v.num, 'f', -1, 64)), nil
	case KindString:
		return json.Marshal(v.raw)
	default:
		return []byte("null"), nil
	}
}
