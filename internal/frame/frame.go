// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

package frame

import (
	"reflect"
	"time"

	"github.com/goccy/go-json"
)

// Type is the logical type of a column.
type Type string

// Column types. Values stored in a column of a given type are:
// String -> string, Int -> int64, Float -> float64, Date -> time.Time (UTC),
// Bool -> bool. Any cell may be nil.
const (
	String  Type = "string"
	Int     Type = "int"
	Float   Type = "float"
	Date    Type = "date"
	Bool    Type = "bool"
	Unknown Type = "unknown"
)

// Numeric reports whether t holds int64 or float64 values.
func (t Type) Numeric() bool {
	return t == Int || t == Float
}

// Column describes one named, typed column.
type Column struct {
	Name string `json:"name"`
	Type Type   `json:"type"`
}

// Row maps column names to cell values.
type Row map[string]any

// Frame is a rectangular table of named, typed columns.
//
// Frames are treated as immutable once built: every transform in this
// package returns a new Frame and leaves its input untouched.
type Frame struct {
	Columns []Column
	Rows    []Row
}

// New builds a frame from columns and rows. The slices are used as-is.
func New(columns []Column, rows ...Row) *Frame {
	if rows == nil {
		rows = []Row{}
	}
	return &Frame{Columns: columns, Rows: rows}
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	return len(f.Rows)
}

// ColumnNames returns the column names in order.
func (f *Frame) ColumnNames() []string {
	names := make([]string, len(f.Columns))
	for i, c := range f.Columns {
		names[i] = c.Name
	}
	return names
}

// Column looks up a column by name.
func (f *Frame) Column(name string) (Column, bool) {
	for _, c := range f.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// Values returns the cells of column name in row order.
func (f *Frame) Values(name string) ([]any, error) {
	if err := f.require("Values", name); err != nil {
		return nil, err
	}
	out := make([]any, len(f.Rows))
	for i, r := range f.Rows {
		out[i] = r[name]
	}
	return out, nil
}

func (f *Frame) require(op string, names ...string) error {
	for _, n := range names {
		if _, ok := f.Column(n); !ok {
			return &MissingColumnError{Op: op, Column: n, Available: f.ColumnNames()}
		}
	}
	return nil
}

// Clone returns a copy whose column slice and row maps can be modified
// without affecting f. Cell values are shared; they are all immutable.
func (f *Frame) Clone() *Frame {
	cols := make([]Column, len(f.Columns))
	copy(cols, f.Columns)
	rows := make([]Row, len(f.Rows))
	for i, r := range f.Rows {
		rows[i] = cloneRow(r)
	}
	return &Frame{Columns: cols, Rows: rows}
}

func cloneRow(r Row) Row {
	out := make(Row, len(r)+1)
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Equal reports whether f and o have the same columns and the same cells
// in the same order. Dates compare by instant.
func (f *Frame) Equal(o *Frame) bool {
	if f == nil || o == nil {
		return f == o
	}
	if !reflect.DeepEqual(f.Columns, o.Columns) || len(f.Rows) != len(o.Rows) {
		return false
	}
	for i := range f.Rows {
		if !rowsEqual(f.Rows[i], o.Rows[i]) {
			return false
		}
	}
	return true
}

func rowsEqual(a, b Row) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok {
			return false
		}
		if at, ok := av.(time.Time); ok {
			bt, ok := bv.(time.Time)
			if !ok || !at.Equal(bt) {
				return false
			}
			continue
		}
		if !reflect.DeepEqual(av, bv) {
			return false
		}
	}
	return true
}

// Records returns the rows as plain maps, the shape chart renderers expect
// for inline data.
func (f *Frame) Records() []map[string]any {
	out := make([]map[string]any, len(f.Rows))
	for i, r := range f.Rows {
		out[i] = map[string]any(r)
	}
	return out
}

// MarshalJSON encodes the frame as {"columns": [...], "rows": [...]}.
func (f *Frame) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Columns []Column         `json:"columns"`
		Rows    []map[string]any `json:"rows"`
	}{Columns: f.Columns, Rows: f.Records()})
}

// withColumn returns cols with c appended, or replacing a column of the
// same name in place.
func withColumn(cols []Column, c Column) []Column {
	out := make([]Column, 0, len(cols)+1)
	replaced := false
	for _, existing := range cols {
		if existing.Name == c.Name {
			out = append(out, c)
			replaced = true
			continue
		}
		out = append(out, existing)
	}
	if !replaced {
		out = append(out, c)
	}
	return out
}
