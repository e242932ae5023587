// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

package database

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gaco/portrait-data-engineer-test/internal/config"
	"github.com/gaco/portrait-data-engineer-test/internal/frame"
)

// testDBSemaphore serializes DuckDB use across tests. Concurrent CGO calls
// from many parallel tests can hang under CI load.
var testDBSemaphore = make(chan struct{}, 1)

func testConfig() *config.DatabaseConfig {
	return &config.DatabaseConfig{
		Driver:       config.DriverDuckDB,
		QueryTimeout: 10 * time.Second,
		Breaker: config.BreakerConfig{
			Enabled:     true,
			MaxFailures: 3,
			Timeout:     time.Minute,
			Interval:    time.Minute,
		},
	}
}

// setupTestDB opens an in-memory DuckDB warehouse. The semaphore is held
// until the test completes.
func setupTestDB(t *testing.T, cfg *config.DatabaseConfig) *DB {
	t.Helper()

	testDBSemaphore <- struct{}{}
	t.Cleanup(func() {
		<-testDBSemaphore
	})

	if cfg == nil {
		cfg = testConfig()
	}
	db, err := New(cfg)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return db
}

func exec(t *testing.T, db *DB, stmts ...string) {
	t.Helper()
	for _, s := range stmts {
		if _, err := db.Conn().ExecContext(context.Background(), s); err != nil {
			t.Fatalf("exec %q: %v", s, err)
		}
	}
}

func TestNew_NilConfig(t *testing.T) {
	t.Parallel()

	if _, err := New(nil); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("New(nil) error = %v, want ErrNotConfigured", err)
	}
}

func TestNew_UnsupportedDriver(t *testing.T) {
	t.Parallel()

	_, err := New(&config.DatabaseConfig{Driver: "mysql"})
	if !errors.Is(err, ErrUnsupportedDriver) {
		t.Errorf("New() error = %v, want ErrUnsupportedDriver", err)
	}
}

func TestNew_DuckDBFile(t *testing.T) {
	cfg := testConfig()
	cfg.Path = filepath.Join(t.TempDir(), "nested", "warehouse.duckdb")

	db := setupTestDB(t, cfg)
	if err := db.Ping(context.Background()); err != nil {
		t.Fatalf("Ping() error = %v", err)
	}
	if db.Driver() != config.DriverDuckDB {
		t.Errorf("Driver() = %q", db.Driver())
	}
}

func TestDB_NilSafety(t *testing.T) {
	t.Parallel()

	var db *DB
	if err := db.Ping(context.Background()); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Ping() error = %v", err)
	}
	if _, err := db.Query(context.Background(), "SELECT 1"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Query() error = %v", err)
	}
	if err := db.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestClose_Idempotent(t *testing.T) {
	db := setupTestDB(t, nil)

	if err := db.Close(); err != nil {
		t.Fatalf("first Close() error = %v", err)
	}
	if err := db.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestQuery_ScansNormalizedFrame(t *testing.T) {
	db := setupTestDB(t, nil)
	exec(t, db,
		"CREATE SCHEMA marts",
		`CREATE TABLE marts.mixed (
			label VARCHAR, small INTEGER, big BIGINT, ratio DOUBLE,
			amount DECIMAL(10,2), day DATE, flag BOOLEAN)`,
		`INSERT INTO marts.mixed VALUES
			('a', 1, 10000000000, 0.5, 12.25, DATE '2023-03-01', true),
			('b', NULL, 2, NULL, NULL, NULL, NULL)`,
	)

	f, err := db.Query(context.Background(), "SELECT * FROM marts.mixed ORDER BY label")
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}

	wantCols := []frame.Column{
		{Name: "label", Type: frame.String},
		{Name: "small", Type: frame.Int},
		{Name: "big", Type: frame.Int},
		{Name: "ratio", Type: frame.Float},
		{Name: "amount", Type: frame.Float},
		{Name: "day", Type: frame.Date},
		{Name: "flag", Type: frame.Bool},
	}
	if len(f.Columns) != len(wantCols) {
		t.Fatalf("columns = %v", f.Columns)
	}
	for i, c := range wantCols {
		if f.Columns[i] != c {
			t.Errorf("column %d = %+v, want %+v", i, f.Columns[i], c)
		}
	}

	if f.Len() != 2 {
		t.Fatalf("rows = %d, want 2", f.Len())
	}
	r := f.Rows[0]
	if r["small"] != int64(1) || r["big"] != int64(10000000000) {
		t.Errorf("integer cells = %T %v / %T %v", r["small"], r["small"], r["big"], r["big"])
	}
	if r["ratio"] != 0.5 || r["amount"] != 12.25 {
		t.Errorf("float cells = %v / %v", r["ratio"], r["amount"])
	}
	if d, ok := r["day"].(time.Time); !ok || !d.Equal(time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("date cell = %T %v", r["day"], r["day"])
	}
	if r["flag"] != true {
		t.Errorf("bool cell = %v", r["flag"])
	}
	for _, col := range []string{"small", "ratio", "amount", "day", "flag"} {
		if f.Rows[1][col] != nil {
			t.Errorf("NULL %s = %v, want nil", col, f.Rows[1][col])
		}
	}
}

func TestQuery_EmptyResultKeepsColumns(t *testing.T) {
	db := setupTestDB(t, nil)
	exec(t, db, "CREATE TABLE empty_mart (age_group VARCHAR, num_patients INTEGER)")

	f, err := db.Query(context.Background(), "SELECT * FROM empty_mart")
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if f.Len() != 0 || len(f.Columns) != 2 {
		t.Errorf("frame = %d rows, %v", f.Len(), f.Columns)
	}
}

func TestQuery_ErrorIsWrapped(t *testing.T) {
	db := setupTestDB(t, nil)

	_, err := db.Query(context.Background(), "SELECT * FROM analytics_marts.nope")
	if err == nil {
		t.Fatal("expected error for missing table")
	}
	if got := err.Error(); !strings.HasPrefix(got, "query nope: ") {
		t.Errorf("error = %q, want it prefixed with the table", got)
	}
}

func TestQuery_Timeout(t *testing.T) {
	cfg := testConfig()
	cfg.QueryTimeout = time.Nanosecond
	cfg.Breaker.Enabled = false
	db := setupTestDB(t, cfg)

	_, err := db.Query(context.Background(), "SELECT count(*) FROM range(100000000) t1, range(100) t2")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Query() error = %v, want deadline exceeded", err)
	}
}
