// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/duckdb/duckdb-go/v2" // registers the "duckdb" driver
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/gaco/portrait-data-engineer-test/internal/config"
	"github.com/gaco/portrait-data-engineer-test/internal/frame"
	"github.com/gaco/portrait-data-engineer-test/internal/logging"
)

// DB is the process-wide connection to the analytics warehouse.
//
// One DB is created at startup and shared by every request; database/sql
// pools the underlying connections. Query results come back as frames.
type DB struct {
	conn      *sql.DB
	cfg       config.DatabaseConfig
	breaker   *gobreaker.CircuitBreaker[*frame.Frame]
	closeOnce sync.Once
}

// New opens the warehouse described by cfg and verifies it with a ping.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	if cfg == nil {
		return nil, ErrNotConfigured
	}

	driverName, err := sqlDriver(cfg.Driver)
	if err != nil {
		return nil, err
	}

	if cfg.Driver == config.DriverDuckDB && cfg.Path != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	conn, err := sql.Open(driverName, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := &DB{conn: conn, cfg: *cfg}
	db.configurePool()

	if cfg.Breaker.Enabled {
		db.breaker = newBreaker("warehouse", cfg.Breaker)
	}

	// An unreachable warehouse is not fatal: each section reports its own
	// failure and the readiness probe stays red until a ping succeeds.
	if err := db.Ping(context.Background()); err != nil {
		logging.Warn().Err(err).Str("dsn", cfg.RedactedDSN()).Msg("Analytics warehouse is not reachable yet")
		return db, nil
	}

	logging.Info().
		Str("driver", cfg.Driver).
		Str("dsn", cfg.RedactedDSN()).
		Int("max_open_conns", cfg.MaxOpenConns).
		Bool("circuit_breaker", cfg.Breaker.Enabled).
		Msg("Connected to analytics warehouse")

	return db, nil
}

func sqlDriver(driver string) (string, error) {
	switch driver {
	case config.DriverPostgres, "":
		return "pgx", nil
	case config.DriverDuckDB:
		return "duckdb", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
}

func (db *DB) configurePool() {
	// An in-memory DuckDB database lives inside a single connection.
	if db.cfg.Driver == config.DriverDuckDB && db.cfg.Path == "" {
		db.conn.SetMaxOpenConns(1)
		db.conn.SetMaxIdleConns(1)
		db.conn.SetConnMaxLifetime(0)
		return
	}
	if db.cfg.MaxOpenConns > 0 {
		db.conn.SetMaxOpenConns(db.cfg.MaxOpenConns)
	}
	if db.cfg.MaxIdleConns > 0 {
		db.conn.SetMaxIdleConns(db.cfg.MaxIdleConns)
	}
	db.conn.SetConnMaxLifetime(db.cfg.ConnMaxLifetime)
}

// Ping checks that the warehouse answers within five seconds.
func (db *DB) Ping(ctx context.Context) error {
	if db == nil || db.conn == nil {
		return ErrNotConfigured
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return db.conn.PingContext(ctx)
}

// Close releases the connection pool. It is safe to call more than once.
func (db *DB) Close() error {
	if db == nil || db.conn == nil {
		return nil
	}
	var err error
	db.closeOnce.Do(func() {
		err = db.conn.Close()
	})
	return err
}

// Conn exposes the underlying pool for seeding and tests.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// Driver returns the configured driver name (postgres or duckdb).
func (db *DB) Driver() string {
	return db.cfg.Driver
}

// PoolStats returns database/sql pool statistics.
func (db *DB) PoolStats() sql.DBStats {
	return db.conn.Stats()
}

// BreakerState returns the circuit breaker state name, or "disabled".
func (db *DB) BreakerState() string {
	if db.breaker == nil {
		return "disabled"
	}
	return stateToString(db.breaker.State())
}
