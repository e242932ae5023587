// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

//go:build integration

package database

import (
	"context"
	"testing"

	"github.com/gaco/portrait-data-engineer-test/internal/frame"
	"github.com/gaco/portrait-data-engineer-test/internal/testinfra"
)

func TestPostgresWarehouse(t *testing.T) {
	testinfra.SkipIfNoDocker(t)

	ctx := context.Background()
	pg, err := testinfra.NewPostgresContainer(ctx)
	if err != nil {
		t.Fatalf("start postgres: %v", err)
	}
	testinfra.CleanupContainer(t, pg)

	db, err := New(pg.DatabaseConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := db.Ping(ctx); err != nil {
		t.Fatalf("Ping() error = %v", err)
	}

	stmts := []string{
		"CREATE SCHEMA analytics_marts",
		`CREATE TABLE analytics_marts.prescription_appointment_correlation (
			prescription_frequency_bucket TEXT,
			avg_appointments NUMERIC(6,2),
			avg_prescriptions DOUBLE PRECISION,
			patients BIGINT,
			first_seen DATE)`,
		`INSERT INTO analytics_marts.prescription_appointment_correlation VALUES
			('Few', 3.40, 1.6, 120, '2023-01-01'),
			('Moderate', 3.10, 4.2, 80, NULL)`,
	}
	for _, s := range stmts {
		if _, err := db.Conn().ExecContext(ctx, s); err != nil {
			t.Fatalf("exec %q: %v", s, err)
		}
	}

	f, err := db.Query(ctx, "SELECT * FROM analytics_marts.prescription_appointment_correlation ORDER BY prescription_frequency_bucket")
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}

	want := []frame.Type{frame.String, frame.Float, frame.Float, frame.Int, frame.Date}
	for i, w := range want {
		if f.Columns[i].Type != w {
			t.Errorf("column %s type = %s, want %s", f.Columns[i].Name, f.Columns[i].Type, w)
		}
	}
	if got := f.Rows[0]["avg_appointments"]; got != 3.4 {
		t.Errorf("NUMERIC cell = %T %v, want 3.4", got, got)
	}
	if got := f.Rows[0]["patients"]; got != int64(120) {
		t.Errorf("BIGINT cell = %T %v", got, got)
	}
	if f.Rows[1]["first_seen"] != nil {
		t.Errorf("NULL date = %v", f.Rows[1]["first_seen"])
	}
}
