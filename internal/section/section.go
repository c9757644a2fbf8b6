// Copyright 2026 The Surveyboard Authors
// SPDX-License-Identifier: MIT

// Package section defines the fixed set of survey sections (A through E)
// and the catalog that attaches display labels to them.
package section

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknown indicates a section identifier outside the fixed enumeration.
var ErrUnknown = errors.New("unknown section")

// IDs is the fixed section enumeration in display order.
var IDs = []string{"A", "B", "C", "D", "E"}

// defaultTopics are the questionnaire topics used when no label is configured.
var defaultTopics = map[string]string{
	"A": "General Info",
	"B": "Farm Profile",
	"C": "Drone Awareness",
	"D": "Adoption Barriers",
	"E": "Willingness to Pay",
}

// Spec is one survey section.
type Spec struct {
	// ID is the single-letter identifier ("A").
	ID string `json:"id"`
	// Label is the display label ("A - General Info").
	Label string `json:"label"`
}

// Title returns the tab title, e.g. "Section A".
func (s Spec) Title() string {
	return "Section " + s.ID
}

// String returns the label.
func (s Spec) String() string {
	return s.Label
}

// Catalog is the ordered list of all sections with their labels.
// The zero value is not usable; call DefaultCatalog or NewCatalog.
type Catalog struct {
	specs []Spec
}

// DefaultCatalog returns the five sections with their default labels.
func DefaultCatalog() Catalog {
	return NewCatalog(nil)
}

// NewCatalog returns the fixed enumeration with labels overridden from
// labels (keyed by ID). Missing or blank entries fall back to defaults.
func NewCatalog(labels map[string]string) Catalog {
	specs := make([]Spec, len(IDs))
	for i, id := range IDs {
		label := strings.TrimSpace(labels[id])
		if label == "" {
			label = fmt.Sprintf("%s - %s", id, defaultTopics[id])
		}
		specs[i] = Spec{ID: id, Label: label}
	}
	return Catalog{specs: specs}
}

// All returns a copy of every section in display order.
func (c Catalog) All() []Spec {
	out := make([]Spec, len(c.specs))
	copy(out, c.specs)
	return out
}

// Get returns the section with the given ID.
func (c Catalog) Get(id string) (Spec, bool) {
	for _, s := range c.specs {
		if s.ID == id {
			return s, true
		}
	}
	return Spec{}, false
}

// Parse resolves user input to a section. It accepts the ID ("a"), the
// full label ("A - General Info") or the tab title ("Section A"), all
// case-insensitively.
func (c Catalog) Parse(input string) (Spec, error) {
	in := strings.TrimSpace(input)
	if in == "" {
		return Spec{}, fmt.Errorf("%w: empty identifier", ErrUnknown)
	}
	for _, s := range c.specs {
		if strings.EqualFold(in, s.ID) || strings.EqualFold(in, s.Label) || strings.EqualFold(in, s.Title()) {
			return s, nil
		}
	}
	// "A - anything" resolves by its leading ID.
	if head, _, ok := strings.Cut(in, "-"); ok {
		for _, s := range c.specs {
			if strings.EqualFold(strings.TrimSpace(head), s.ID) {
				return s, nil
			}
		}
	}
	return Spec{}, fmt.Errorf("%w: %q (valid: %s)", ErrUnknown, input, strings.Join(IDs, ", "))
}

// IsValidID reports whether id belongs to the fixed enumeration.
func IsValidID(id string) bool {
	for _, v := range IDs {
		if v == id {
			return true
		}
	}
	return false
}
