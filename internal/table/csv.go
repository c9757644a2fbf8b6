// Copyright 2026 The Surveyboard Authors
// SPDX-License-Identifier: MIT

package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoHeader is returned when a CSV source has no header row.
var ErrNoHeader = errors.New("csv has no header row")

// utf8BOM is stripped from the first header cell (Excel exports add it).
const utf8BOM = "\ufeff"

// ReadCSV decodes a CSV stream whose first record is the header. Cell
// kinds are inferred with Parse. Short rows are padded with empty cells.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	var rows [][]Value
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		vals := make([]Value, len(rec))
		for i, field := range rec {
			vals[i] = Parse(field)
		}
		rows = append(rows, vals)
	}

	return New(header, rows)
}

// WriteCSV encodes the table with a header row.
func WriteCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i := range t.rows {
		if err := cw.Write(t.Row(i).Strings()); err != nil {
			return fmt.Errorf("write csv row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
