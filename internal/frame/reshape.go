// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

package frame

import (
	"sort"
)

// Melt reshapes wide columns into long (variable, value) rows. Each
// valueVars column becomes one row per input row carrying the idVars,
// varName set to the column name and valueName set to the cell. Output rows
// are grouped by value variable, then by input row order.
func Melt(f *Frame, idVars, valueVars []string, varName, valueName string) (*Frame, error) {
	if err := f.require("Melt", idVars...); err != nil {
		return nil, err
	}
	if err := f.require("Melt", valueVars...); err != nil {
		return nil, err
	}

	valueType := Unknown
	for i, v := range valueVars {
		c, _ := f.Column(v)
		switch {
		case i == 0:
			valueType = c.Type
		case valueType == c.Type:
		case valueType.Numeric() && c.Type.Numeric():
			valueType = Float
		default:
			valueType = Unknown
		}
	}

	cols := make([]Column, 0, len(idVars)+2)
	for _, id := range idVars {
		c, _ := f.Column(id)
		cols = append(cols, c)
	}
	cols = append(cols, Column{Name: varName, Type: String}, Column{Name: valueName, Type: valueType})

	rows := make([]Row, 0, len(f.Rows)*len(valueVars))
	for _, v := range valueVars {
		for _, r := range f.Rows {
			row := make(Row, len(idVars)+2)
			for _, id := range idVars {
				row[id] = r[id]
			}
			row[varName] = v
			val := r[v]
			if valueType == Float {
				if n, err := toFloat(val); err == nil && val != nil {
					val = n
				}
			}
			row[valueName] = val
			rows = append(rows, row)
		}
	}
	return New(cols, rows...), nil
}

// Select projects f onto cols, in the given order.
func Select(f *Frame, cols ...string) (*Frame, error) {
	if err := f.require("Select", cols...); err != nil {
		return nil, err
	}
	out := &Frame{Columns: make([]Column, 0, len(cols)), Rows: make([]Row, len(f.Rows))}
	for _, name := range cols {
		c, _ := f.Column(name)
		out.Columns = append(out.Columns, c)
	}
	for i, r := range f.Rows {
		row := make(Row, len(cols))
		for _, name := range cols {
			row[name] = r[name]
		}
		out.Rows[i] = row
	}
	return out, nil
}

// Rename renames columns according to mapping (old -> new). Columns not
// in mapping keep their names.
func Rename(f *Frame, mapping map[string]string) (*Frame, error) {
	for old := range mapping {
		if err := f.require("Rename", old); err != nil {
			return nil, err
		}
	}
	newName := func(n string) string {
		if m, ok := mapping[n]; ok {
			return m
		}
		return n
	}

	out := &Frame{Columns: make([]Column, len(f.Columns)), Rows: make([]Row, len(f.Rows))}
	for i, c := range f.Columns {
		out.Columns[i] = Column{Name: newName(c.Name), Type: c.Type}
	}
	for i, r := range f.Rows {
		row := make(Row, len(r))
		for k, v := range r {
			row[newName(k)] = v
		}
		out.Rows[i] = row
	}
	return out, nil
}

// ReplaceValues relabels string cells of col found in mapping.
func ReplaceValues(f *Frame, col string, mapping map[string]string) (*Frame, error) {
	if err := f.require("ReplaceValues", col); err != nil {
		return nil, err
	}
	out := f.Clone()
	for _, r := range out.Rows {
		if s, ok := r[col].(string); ok {
			if repl, ok := mapping[s]; ok {
				r[col] = repl
			}
		}
	}
	return out, nil
}

// SortBy stable-sorts rows on col. nil cells sort last in both directions.
func SortBy(f *Frame, col string, desc bool) (*Frame, error) {
	if err := f.require("SortBy", col); err != nil {
		return nil, err
	}
	out := f.Clone()
	sort.SliceStable(out.Rows, func(i, j int) bool {
		a, b := out.Rows[i][col], out.Rows[j][col]
		if a == nil || b == nil {
			return b == nil && a != nil
		}
		if desc {
			return compareValues(a, b) > 0
		}
		return compareValues(a, b) < 0
	})
	return out, nil
}

// SortByOrder stable-sorts rows so that col follows order. Values not in
// order keep their relative position after all listed ones.
func SortByOrder(f *Frame, col string, order []string) (*Frame, error) {
	if err := f.require("SortByOrder", col); err != nil {
		return nil, err
	}
	rank := make(map[string]int, len(order))
	for i, v := range order {
		rank[v] = i
	}
	pos := func(v any) int {
		if r, ok := rank[label(v)]; ok && v != nil {
			return r
		}
		return len(order)
	}

	out := f.Clone()
	sort.SliceStable(out.Rows, func(i, j int) bool {
		return pos(out.Rows[i][col]) < pos(out.Rows[j][col])
	})
	return out, nil
}
