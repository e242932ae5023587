// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/gaco/portrait-data-engineer-test/internal/config"
	"github.com/gaco/portrait-data-engineer-test/internal/logging"
)

// seedTable is one demo mart: its DDL column list and rows in column order.
type seedTable struct {
	name    string
	columns string
	rows    [][]any
}

var ageGroups = []string{"0-18", "19-35", "36-50", "51-70", "71+"}

// SeedDemoData creates the marts schema and fills every mart table with a
// small demo dataset. Existing tables are replaced. Only duckdb is
// supported; a real warehouse is populated by the upstream pipeline.
func (db *DB) SeedDemoData(ctx context.Context, marts config.MartsConfig) error {
	if db == nil || db.conn == nil {
		return ErrNotConfigured
	}
	if db.cfg.Driver != config.DriverDuckDB {
		return ErrSeedUnsupported
	}

	logging.Info().Str("schema", marts.Schema).Msg("Seeding analytics marts with demo data")

	if _, err := db.conn.ExecContext(ctx, "CREATE SCHEMA IF NOT EXISTS "+marts.Schema); err != nil {
		return fmt.Errorf("create schema %s: %w", marts.Schema, err)
	}

	for _, t := range demoTables(marts) {
		if err := db.seedTable(ctx, marts.Schema, t); err != nil {
			return err
		}
	}

	logging.Info().Msg("Demo data seeded")
	return nil
}

func (db *DB) seedTable(ctx context.Context, schema string, t seedTable) error {
	qualified := schema + "." + t.name

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed %s: %w", qualified, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, fmt.Sprintf("CREATE OR REPLACE TABLE %s (%s)", qualified, t.columns)); err != nil {
		return fmt.Errorf("create table %s: %w", qualified, err)
	}

	if len(t.rows) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(t.rows[0])), ", ")
		stmt, err := tx.PrepareContext(ctx, fmt.Sprintf("INSERT INTO %s VALUES (%s)", qualified, placeholders))
		if err != nil {
			return fmt.Errorf("prepare insert %s: %w", qualified, err)
		}
		defer closeWithLog(stmt, "prepared statement")

		for _, row := range t.rows {
			if _, err := stmt.ExecContext(ctx, row...); err != nil {
				return fmt.Errorf("insert into %s: %w", qualified, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed %s: %w", qualified, err)
	}
	logging.Debug().Str("table", qualified).Int("rows", len(t.rows)).Msg("Seeded mart")
	return nil
}

// demoTables returns demo marts shaped like the dbt outputs. The numbers
// are made up but reproduce the trends the Conclusions section describes.
func demoTables(m config.MartsConfig) []seedTable {
	return []seedTable{
		{
			name:    m.PatientDistribution,
			columns: "age_group VARCHAR, num_patients INTEGER",
			rows:    byAgeGroup(120, 210, 190, 240, 160),
		},
		{
			name:    m.AppointmentFrequency,
			columns: "patient_type VARCHAR, total_appointments INTEGER",
			rows: [][]any{
				{"Inpatient", 1240},
				{"Outpatient", 3110},
			},
		},
		{
			name:    m.AppointmentDistribution,
			columns: "age_group VARCHAR, appointment_type VARCHAR, total INTEGER",
			rows: crossAgeGroups(map[string][]int{
				"Checkup":      {80, 110, 140, 260, 240},
				"Emergency":    {35, 50, 45, 70, 90},
				"Follow-up":    {40, 60, 75, 120, 130},
				"Consultation": {25, 45, 60, 85, 70},
			}, "Checkup", "Emergency", "Follow-up", "Consultation"),
		},
		{
			// Deliberately not in weekday order.
			name:    m.EmergencyVisits,
			columns: "day_of_week VARCHAR, emergency_visits INTEGER",
			rows: [][]any{
				{"Friday", 134},
				{"Monday", 92},
				{"Sunday", 79},
				{"Wednesday", 88},
				{"Saturday", 97},
				{"Tuesday", 85},
				{"Thursday", 90},
			},
		},
		{
			name:    m.PrescriptionDistribution,
			columns: "age_group VARCHAR, category VARCHAR, total INTEGER",
			rows: crossAgeGroups(map[string][]int{
				"Pain":           {40, 85, 120, 210, 230},
				"Antibiotic":     {55, 60, 50, 45, 40},
				"Cardiovascular": {5, 15, 45, 110, 150},
				"Respiratory":    {30, 35, 30, 40, 55},
			}, "Pain", "Antibiotic", "Cardiovascular", "Respiratory"),
		},
		{
			name:    m.PrescriptionCorrelation,
			columns: "prescription_frequency_bucket VARCHAR, avg_appointments DOUBLE, avg_prescriptions DOUBLE",
			rows: [][]any{
				{"None", 1.8, 0.0},
				{"Few", 3.4, 1.6},
				{"Moderate", 3.1, 4.2},
				{"Frequent", 2.2, 8.9},
			},
		},
		{
			name:    m.PrescriptionTrend,
			columns: "year INTEGER, month INTEGER, prescription_frequency VARCHAR, total INTEGER",
			rows:    trendRows(2022, 2023),
		},
	}
}

func byAgeGroup(counts ...int) [][]any {
	rows := make([][]any, len(ageGroups))
	for i, g := range ageGroups {
		rows[i] = []any{g, counts[i]}
	}
	return rows
}

func crossAgeGroups(totals map[string][]int, order ...string) [][]any {
	var rows [][]any
	for i, g := range ageGroups {
		for _, k := range order {
			rows = append(rows, []any{g, k, totals[k][i]})
		}
	}
	return rows
}

// trendRows produces a declining first-time series and a growing repeat
// series, one point per month.
func trendRows(fromYear, toYear int) [][]any {
	var rows [][]any
	i := 0
	for y := fromYear; y <= toYear; y++ {
		for m := 1; m <= 12; m++ {
			rows = append(rows,
				[]any{y, m, "First-time", 120 - 4*i},
				[]any{y, m, "Repeat", 60 + 5*i},
			)
			i++
		}
	}
	return rows
}
