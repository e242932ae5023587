// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

package database

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/gaco/portrait-data-engineer-test/internal/frame"
	"github.com/gaco/portrait-data-engineer-test/internal/logging"
	"github.com/gaco/portrait-data-engineer-test/internal/metrics"
)

// Query runs a read-only SQL statement and returns its result as a frame
// with one row per result row in the order the warehouse returned them.
//
// The statement runs under the configured query timeout and, when enabled,
// through the circuit breaker. While the breaker is open Query fails fast
// with ErrCircuitOpen.
func (db *DB) Query(ctx context.Context, query string) (*frame.Frame, error) {
	if db == nil || db.conn == nil {
		return nil, ErrNotConfigured
	}
	return db.execute(func() (*frame.Frame, error) {
		return db.query(ctx, query)
	})
}

func (db *DB) query(ctx context.Context, query string) (*frame.Frame, error) {
	if db.cfg.QueryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, db.cfg.QueryTimeout)
		defer cancel()
	}

	op, table := statementKind(query), tableFromQuery(query)
	start := time.Now()

	f, err := db.scanQuery(ctx, query)
	elapsed := time.Since(start)
	metrics.RecordDBQuery(op, table, elapsed, err)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("table", table).Dur("duration", elapsed).Msg("Warehouse query failed")
		return nil, fmt.Errorf("query %s: %w", table, err)
	}

	metrics.RecordDBRows(table, f.Len())
	logging.Ctx(ctx).Debug().Str("table", table).Int("rows", f.Len()).Dur("duration", elapsed).Msg("Warehouse query")
	return f, nil
}

func (db *DB) scanQuery(ctx context.Context, query string) (*frame.Frame, error) {
	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer closeWithLog(rows, "rows")

	f, err := scanFrame(rows)
	if err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return f, nil
}

var fromClause = regexp.MustCompile(`(?i)\bfrom\s+([A-Za-z0-9_."]+)`)

// tableFromQuery extracts the unqualified table name of the first FROM
// clause for metric labels, or "unknown".
func tableFromQuery(query string) string {
	m := fromClause.FindStringSubmatch(query)
	if m == nil {
		return "unknown"
	}
	name := m[1]
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	name = strings.Trim(name, `"`)
	if name == "" {
		return "unknown"
	}
	return name
}

func statementKind(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}
