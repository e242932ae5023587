// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

package database

import (
	"errors"
	"io"

	"github.com/gaco/portrait-data-engineer-test/internal/logging"
)

var (
	// ErrNotConfigured is returned when the DB handle or its config is nil.
	ErrNotConfigured = errors.New("database not configured")

	// ErrUnsupportedDriver is returned for a driver other than postgres or duckdb.
	ErrUnsupportedDriver = errors.New("unsupported database driver")

	// ErrCircuitOpen is returned while the breaker rejects queries.
	ErrCircuitOpen = errors.New("warehouse circuit breaker is open")

	// ErrSeedUnsupported is returned when demo data is requested on a
	// driver other than duckdb.
	ErrSeedUnsupported = errors.New("demo data can only be seeded into duckdb")
)

// closeWithLog closes a resource and logs any error.
func closeWithLog(closer io.Closer, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
	}
}

// closeQuietly closes a resource on an error path where the Close error is
// not actionable.
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}
