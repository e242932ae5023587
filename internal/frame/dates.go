// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

package frame

import (
	"fmt"
	"strconv"
	"time"
)

// SynthesizeMonthDate adds outCol holding the first day (UTC) of the month
// identified by yearCol and monthCol. Year and month are coerced to int64
// in the output. A missing or out-of-range month is an error.
func SynthesizeMonthDate(f *Frame, yearCol, monthCol, outCol string) (*Frame, error) {
	if err := f.require("SynthesizeMonthDate", yearCol, monthCol); err != nil {
		return nil, err
	}

	out := f.Clone()
	out.Columns = withColumn(out.Columns, Column{Name: yearCol, Type: Int})
	out.Columns = withColumn(out.Columns, Column{Name: monthCol, Type: Int})
	out.Columns = withColumn(out.Columns, Column{Name: outCol, Type: Date})

	for i, r := range out.Rows {
		year, err := toInt64(r[yearCol])
		if err != nil {
			return nil, fmt.Errorf("SynthesizeMonthDate: column %q row %d: %w", yearCol, i, err)
		}
		month, err := toInt64(r[monthCol])
		if err != nil {
			return nil, fmt.Errorf("SynthesizeMonthDate: column %q row %d: %w", monthCol, i, err)
		}
		if month < 1 || month > 12 {
			return nil, fmt.Errorf("SynthesizeMonthDate: row %d: month %d: %w", i, month, ErrInvalidValue)
		}
		r[yearCol] = year
		r[monthCol] = month
		r[outCol] = time.Date(int(year), time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	}
	return out, nil
}

// FormatPercent adds outCol with ratioCol rendered as a percentage label,
// for example 0.3 -> "30.0%" with one decimal. nil ratios stay nil.
func FormatPercent(f *Frame, ratioCol, outCol string, decimals int) (*Frame, error) {
	if err := f.require("FormatPercent", ratioCol); err != nil {
		return nil, err
	}

	out := f.Clone()
	out.Columns = withColumn(out.Columns, Column{Name: outCol, Type: String})
	for i, r := range out.Rows {
		if r[ratioCol] == nil {
			r[outCol] = nil
			continue
		}
		v, err := toFloat(r[ratioCol])
		if err != nil {
			return nil, fmt.Errorf("FormatPercent: column %q row %d: %w", ratioCol, i, err)
		}
		r[outCol] = strconv.FormatFloat(v*100, 'f', decimals, 64) + "%"
	}
	return out, nil
}
