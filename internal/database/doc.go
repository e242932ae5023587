// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

// Package database is the connection provider for the analytics warehouse.
//
// The warehouse is normally PostgreSQL holding the dbt marts schema, reached
// through pgx's database/sql driver. DuckDB is supported for local runs and
// tests, optionally seeded with demo marts.
//
// # Usage
//
//	db, err := database.New(&cfg.Database)
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	f, err := db.Query(ctx, "SELECT * FROM analytics_marts.emergency_visits_by_day")
//
// Query scans results into frame.Frame values with normalized cell types
// (int64, float64, string, time.Time in UTC, bool) regardless of driver.
//
// # Failure Handling
//
// Queries are not retried. A gobreaker circuit breaker stops sending
// queries to a warehouse that keeps failing and returns ErrCircuitOpen until
// its timeout elapses. Breaker state is exported as a Prometheus gauge.
package database
