// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

package frame

import (
	"fmt"
	"sort"
)

// Sum adds up column col. nil cells count as zero.
func Sum(f *Frame, col string) (float64, error) {
	if err := f.require("Sum", col); err != nil {
		return 0, err
	}
	var total float64
	for i, r := range f.Rows {
		v, err := toFloat(r[col])
		if err != nil {
			return 0, fmt.Errorf("Sum: column %q row %d: %w", col, i, err)
		}
		total += v
	}
	return total, nil
}

// ShareOfTotal adds outCol = valueCol / sum(valueCol) as a float column.
// When the column sums to zero every share is zero.
func ShareOfTotal(f *Frame, valueCol, outCol string) (*Frame, error) {
	total, err := Sum(f, valueCol)
	if err != nil {
		return nil, fmt.Errorf("ShareOfTotal: %w", err)
	}

	out := f.Clone()
	out.Columns = withColumn(out.Columns, Column{Name: outCol, Type: Float})
	for _, r := range out.Rows {
		v, _ := toFloat(r[valueCol])
		share := 0.0
		if total != 0 {
			share = v / total
		}
		r[outCol] = share
	}
	return out, nil
}

// Pivot reshapes long rows into a wide table: one row per distinct index
// value, one column per distinct category in columns, cells holding the
// sum of values for that pair. Absent combinations are zero. Index rows and
// category columns are sorted lexically. Rows whose index or category is
// nil are dropped. A category labeled like the index column is an
// ErrInvalidValue.
func Pivot(f *Frame, index, columns, values string) (*Frame, error) {
	if err := f.require("Pivot", index, columns, values); err != nil {
		return nil, err
	}

	type cell struct {
		index string
		cat   string
	}
	sums := make(map[cell]float64)
	indexVals := make(map[string]any)
	cats := make(map[string]struct{})
	allInt := true

	for i, r := range f.Rows {
		iv, cv := r[index], r[columns]
		if iv == nil || cv == nil {
			continue
		}
		v, err := toFloat(r[values])
		if err != nil {
			return nil, fmt.Errorf("Pivot: column %q row %d: %w", values, i, err)
		}
		if !isInteger(r[values]) {
			allInt = false
		}
		key := cell{index: label(iv), cat: label(cv)}
		if key.cat == index {
			return nil, fmt.Errorf("Pivot: row %d: category %q collides with index column: %w", i, key.cat, ErrInvalidValue)
		}
		sums[key] += v
		indexVals[key.index] = iv
		cats[key.cat] = struct{}{}
	}

	indexKeys := sortedKeys(indexVals)
	catKeys := make([]string, 0, len(cats))
	for c := range cats {
		catKeys = append(catKeys, c)
	}
	sort.Strings(catKeys)

	indexCol, _ := f.Column(index)
	valueType, _ := numericResult(0, allInt)
	cols := make([]Column, 0, len(catKeys)+1)
	cols = append(cols, indexCol)
	for _, c := range catKeys {
		cols = append(cols, Column{Name: c, Type: valueType})
	}

	rows := make([]Row, 0, len(indexKeys))
	for _, ik := range indexKeys {
		row := Row{index: indexVals[ik]}
		for _, c := range catKeys {
			_, row[c] = numericResult(sums[cell{index: ik, cat: c}], allInt)
		}
		rows = append(rows, row)
	}
	return New(cols, rows...), nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// AddTotalColumn appends column name holding the per-row sum of cols.
// With no cols, every numeric column is summed. The frame must not already
// have a column called name.
func AddTotalColumn(f *Frame, name string, cols ...string) (*Frame, error) {
	if _, exists := f.Column(name); exists {
		return nil, fmt.Errorf("AddTotalColumn: column %q already exists: %w", name, ErrInvalidValue)
	}
	if len(cols) == 0 {
		for _, c := range f.Columns {
			if c.Type.Numeric() {
				cols = append(cols, c.Name)
			}
		}
	}
	if err := f.require("AddTotalColumn", cols...); err != nil {
		return nil, err
	}

	allInt := true
	for _, c := range cols {
		col, _ := f.Column(c)
		if col.Type != Int {
			allInt = false
		}
	}

	out := f.Clone()
	typ, _ := numericResult(0, allInt)
	out.Columns = append(out.Columns, Column{Name: name, Type: typ})
	for i, r := range out.Rows {
		var total float64
		for _, c := range cols {
			v, err := toFloat(r[c])
			if err != nil {
				return nil, fmt.Errorf("AddTotalColumn: column %q row %d: %w", c, i, err)
			}
			total += v
		}
		_, r[name] = numericResult(total, allInt)
	}
	return out, nil
}

// AppendTotalsRow appends a row with the sum of every numeric column,
// label in labelCol, and nil elsewhere.
func AppendTotalsRow(f *Frame, labelCol, label string) (*Frame, error) {
	if err := f.require("AppendTotalsRow", labelCol); err != nil {
		return nil, err
	}

	totals := Row{}
	for _, c := range f.Columns {
		if c.Name == labelCol {
			totals[c.Name] = label
			continue
		}
		if !c.Type.Numeric() {
			totals[c.Name] = nil
			continue
		}
		sum, err := Sum(f, c.Name)
		if err != nil {
			return nil, fmt.Errorf("AppendTotalsRow: %w", err)
		}
		_, totals[c.Name] = numericResult(sum, c.Type == Int)
	}

	out := f.Clone()
	out.Rows = append(out.Rows, totals)
	return out, nil
}
