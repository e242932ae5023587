// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

package database

import (
	"database/sql"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/gaco/portrait-data-engineer-test/internal/frame"
)

// scanFrame reads every remaining row into a frame. Column types come from
// the driver's type names; cells are normalized so a frame looks the same
// whether it came from postgres or duckdb.
func scanFrame(rows *sql.Rows) (*frame.Frame, error) {
	colTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("column types: %w", err)
	}

	cols := make([]frame.Column, len(colTypes))
	for i, ct := range colTypes {
		cols[i] = frame.Column{Name: ct.Name(), Type: columnType(ct.DatabaseTypeName())}
	}

	out := frame.New(cols)
	dest := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range dest {
		ptrs[i] = &dest[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row %d: %w", out.Len(), err)
		}
		row := make(frame.Row, len(cols))
		for i, c := range cols {
			v, err := normalize(c.Type, dest[i])
			if err != nil {
				return nil, fmt.Errorf("column %q: %w", c.Name, err)
			}
			row[c.Name] = v
		}
		out.Rows = append(out.Rows, row)
	}

	inferUnknown(out)
	return out, nil
}

// columnType maps a driver type name (INT4, DOUBLE, DECIMAL(18,3), ...)
// to a frame column type.
func columnType(dbType string) frame.Type {
	t := strings.ToUpper(strings.TrimSpace(dbType))
	if i := strings.IndexByte(t, '('); i >= 0 {
		t = strings.TrimSpace(t[:i])
	}

	switch t {
	case "VARCHAR", "TEXT", "BPCHAR", "CHAR", "NAME", "UUID", "STRING":
		return frame.String
	case "INT2", "INT4", "INT8", "SMALLINT", "INTEGER", "INT", "BIGINT", "HUGEINT", "TINYINT",
		"UTINYINT", "USMALLINT", "UINTEGER", "UBIGINT":
		return frame.Int
	case "FLOAT4", "FLOAT8", "FLOAT", "REAL", "DOUBLE", "NUMERIC", "DECIMAL":
		return frame.Float
	case "DATE":
		return frame.Date
	case "BOOL", "BOOLEAN":
		return frame.Bool
	}
	if strings.HasPrefix(t, "TIMESTAMP") {
		return frame.Date
	}
	return frame.Unknown
}

// normalize converts a driver value to the Go type frame uses for typ.
func normalize(typ frame.Type, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	if b, ok := v.([]byte); ok {
		v = string(b)
	}

	switch typ {
	case frame.String:
		if s, ok := v.(string); ok {
			return s, nil
		}
		return fmt.Sprint(v), nil
	case frame.Int:
		return asInt(v)
	case frame.Float:
		return asFloat(v)
	case frame.Date:
		switch t := v.(type) {
		case time.Time:
			return t.UTC(), nil
		case string:
			d, err := time.Parse("2006-01-02", t)
			if err != nil {
				return nil, fmt.Errorf("parse date %q: %w", t, err)
			}
			return d, nil
		}
		return nil, fmt.Errorf("unexpected date value %T", v)
	case frame.Bool:
		if b, ok := v.(bool); ok {
			return b, nil
		}
		return nil, fmt.Errorf("unexpected bool value %T", v)
	default:
		return inferValue(v), nil
	}
}

// float64er is implemented by driver decimal types such as duckdb.Decimal.
type float64er interface {
	Float64() float64
}

func asInt(v any) (any, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint64:
		return int64(n), nil
	case *big.Int:
		if n.IsInt64() {
			return n.Int64(), nil
		}
		return nil, fmt.Errorf("integer %s overflows int64", n)
	case float64:
		return int64(n), nil
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse integer %q: %w", n, err)
		}
		return i, nil
	}
	return nil, fmt.Errorf("unexpected integer value %T", v)
}

func asFloat(v any) (any, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return nil, fmt.Errorf("parse number %q: %w", n, err)
		}
		return f, nil
	case float64er:
		return n.Float64(), nil
	case *big.Int:
		f, _ := new(big.Float).SetInt(n).Float64()
		return f, nil
	}
	i, err := asInt(v)
	if err != nil {
		return nil, fmt.Errorf("unexpected numeric value %T", v)
	}
	if n, ok := i.(int64); ok {
		return float64(n), nil
	}
	return i, nil
}

func inferValue(v any) any {
	switch n := v.(type) {
	case int, int8, int16, int32, uint8, uint16, uint32, uint64, *big.Int:
		i, _ := asInt(n)
		return i
	case float32:
		return float64(n)
	case float64er:
		return n.Float64()
	case time.Time:
		return n.UTC()
	}
	return v
}

// inferUnknown assigns a type to columns the driver did not describe,
// using the first non-nil value.
func inferUnknown(f *frame.Frame) {
	for i, c := range f.Columns {
		if c.Type != frame.Unknown {
			continue
		}
		for _, r := range f.Rows {
			v := r[c.Name]
			if v == nil {
				continue
			}
			switch v.(type) {
			case string:
				f.Columns[i].Type = frame.String
			case int64:
				f.Columns[i].Type = frame.Int
			case float64:
				f.Columns[i].Type = frame.Float
			case time.Time:
				f.Columns[i].Type = frame.Date
			case bool:
				f.Columns[i].Type = frame.Bool
			}
			break
		}
	}
}
