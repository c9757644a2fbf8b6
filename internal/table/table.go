// Copyright 2026 The Surveyboard Authors
// SPDX-License-Identifier: MIT

// Package table holds the in-memory survey table model. A Table is an
// ordered list of columns and rows; it is never modified after construction
// and every transformation returns a new Table.
package table

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Canonical column names produced by RelabelCategoryCount.
const (
	CategoryColumn = "Category"
	CountColumn    = "Count"
)

// ErrNotTwoColumns is returned by RelabelCategoryCount when its precondition
// does not hold.
var ErrNotTwoColumns = errors.New("table does not have exactly two columns")

// Table is an immutable survey table.
type Table struct {
	columns []string
	rows    [][]Value
}

// Row is a read-only view of one table row.
type Row struct {
	columns []string
	values  []Value
}

// New builds a table from column names and row values. Rows shorter than
// the header are padded with empty values; longer rows are an error.
// The inputs are copied.
func New(columns []string, rows [][]Value) (*Table, error) {
	cols := make([]string, len(columns))
	copy(cols, columns)

	out := make([][]Value, len(rows))
	for i, r := range rows {
		if len(r) > len(cols) {
			return nil, fmt.Errorf("row %d has %d fields, header has %d", i+1, len(r), len(cols))
		}
		vals := make([]Value, len(cols))
		copy(vals, r)
		out[i] = vals
	}
	return &Table{columns: cols, rows: out}, nil
}

// MustNew is like New but panics on error. Intended for tests and literals.
func MustNew(columns []string, rows [][]Value) *Table {
	t, err := New(columns, rows)
	if err != nil {
		panic(err)
	}
	return t
}

// Blank returns a table with no columns and no rows.
func Blank() *Table {
	return &Table{}
}

// Columns returns a copy of the column names in source order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Width returns the number of columns.
func (t *Table) Width() int { return len(t.columns) }

// Row returns the i-th row.
func (t *Table) Row(i int) Row {
	return Row{columns: t.columns, values: t.rows[i]}
}

// Rows returns all rows in order.
func (t *Table) Rows() []Row {
	out := make([]Row, len(t.rows))
	for i := range t.rows {
		out[i] = t.Row(i)
	}
	return out
}

// ColumnIndex returns the index of the named column, matching names
// case-insensitively after trimming whitespace. It returns -1 if absent.
func (t *Table) ColumnIndex(name string) int {
	want := strings.TrimSpace(name)
	for i, c := range t.columns {
		if strings.EqualFold(strings.TrimSpace(c), want) {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// Column returns every value of the named column in row order.
func (t *Table) Column(name string) ([]Value, bool) {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil, false
	}
	out := make([]Value, len(t.rows))
	for i, r := range t.rows {
		out[i] = r[idx]
	}
	return out, true
}

// Filter returns a new table holding the rows for which keep returns true.
func (t *Table) Filter(keep func(Row) bool) *Table {
	out := &Table{columns: t.columns}
	for i := range t.rows {
		if keep(t.Row(i)) {
			out.rows = append(out.rows, t.rows[i])
		}
	}
	return out
}

// ContainsFold keeps rows whose value in column contains needle,
// case-insensitively. Empty cells never match. If the column does not exist
// the table is returned unchanged.
func (t *Table) ContainsFold(column, needle string) *Table {
	idx := t.ColumnIndex(column)
	if idx < 0 {
		return t
	}
	n := strings.ToLower(needle)
	return t.Filter(func(r Row) bool {
		v := r.values[idx]
		if v.IsEmpty() {
			return false
		}
		return strings.Contains(strings.ToLower(v.String()), n)
	})
}

// RelabelCategoryCount renames the columns of a two-column table to
// (Category, Count), preserving values and row order.
//
// Precondition: the table has exactly two columns. Otherwise
// ErrNotTwoColumns is returned and the table is left untouched.
func (t *Table) RelabelCategoryCount() (*Table, error) {
	if len(t.columns) != 2 {
		return nil, fmt.Errorf("relabel %d columns: %w", len(t.columns), ErrNotTwoColumns)
	}
	return &Table{
		columns: []string{CategoryColumn, CountColumn},
		rows:    t.rows,
	}, nil
}

// Get returns the value of the named column in this row.
func (r Row) Get(column string) (Value, bool) {
	want := strings.TrimSpace(column)
	for i, c := range r.columns {
		if strings.EqualFold(strings.TrimSpace(c), want) {
			return r.values[i], true
		}
	}
	return Value{}, false
}

// Values returns a copy of the row values in column order.
func (r Row) Values() []Value {
	out := make([]Value, len(r.values))
	copy(out, r.values)
	return out
}

// Strings returns the raw text of each cell in column order.
func (r Row) Strings() []string {
	out := make([]string, len(r.values))
	for i, v := range r.values {
		out[i] = v.String()
	}
	return out
}

type tableJSON struct {
	Columns []string  `json:"columns"`
	Rows    [][]Value `json:"rows"`
}

// MarshalJSON encodes the table as {"columns": [...], "rows": [[...]]}.
func (t *Table) MarshalJSON() ([]byte, error) {
	cols := t.columns
	if cols == nil {
		cols = []string{}
	}
	rows := t.rows
	if rows == nil {
		rows = [][]Value{}
	}
	return json.Marshal(tableJSON{Columns: cols, Rows: rows})
}
