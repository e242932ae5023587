// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

package frame

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// toFloat converts a numeric cell. nil counts as zero.
func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case nil:
		return 0, nil
	case int64:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("%w: %T(%v)", ErrNotNumeric, v, v)
	}
}

// isInteger reports whether v is stored as an integer (or nil).
func isInteger(v any) bool {
	switch v.(type) {
	case nil, int64, int, int32:
		return true
	}
	return false
}

// toInt64 coerces a cell to an integer the way a strict cast would:
// integers pass through, floats are truncated, numeric strings are parsed.
func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, fmt.Errorf("%w: %v", ErrNotNumeric, n)
		}
		return int64(n), nil
	case float32:
		return toInt64(float64(n))
	case string:
		s := strings.TrimSpace(n)
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i, nil
		}
		if fl, err := strconv.ParseFloat(s, 64); err == nil {
			return toInt64(fl)
		}
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, n)
	default:
		return 0, fmt.Errorf("%w: %T(%v)", ErrNotNumeric, v, v)
	}
}

// numericResult returns the column type and cell value for a sum, keeping
// integer sums as int64.
func numericResult(sum float64, allInt bool) (Type, any) {
	if allInt {
		return Int, int64(math.Round(sum))
	}
	return Float, sum
}

// compareValues orders two cells: nil sorts last, numbers numerically,
// dates chronologically, everything else by its string form.
func compareValues(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}

	if at, ok := a.(time.Time); ok {
		if bt, ok := b.(time.Time); ok {
			return at.Compare(bt)
		}
	}

	af, aerr := toFloat(a)
	bf, berr := toFloat(b)
	if aerr == nil && berr == nil {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		}
		return 0
	}

	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

// label renders a cell as a category/column name.
func label(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
