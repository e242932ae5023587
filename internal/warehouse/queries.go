// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

package warehouse

import "github.com/gaco/portrait-data-engineer-test/internal/config"

// Queries builds the fixed query text for each mart. Identifiers come from
// validated configuration, never from requests.
type Queries struct {
	marts config.MartsConfig
}

// NewQueries returns the queries for the configured marts.
func NewQueries(marts config.MartsConfig) Queries {
	return Queries{marts: marts}
}

func (q Queries) selectAll(table string) string {
	return "SELECT * FROM " + q.marts.Schema + "." + table
}

func (q Queries) PatientDistribution() string {
	return q.selectAll(q.marts.PatientDistribution)
}

func (q Queries) AppointmentFrequency() string {
	return q.selectAll(q.marts.AppointmentFrequency)
}

func (q Queries) AppointmentDistribution() string {
	return q.selectAll(q.marts.AppointmentDistribution)
}

func (q Queries) EmergencyVisits() string {
	return q.selectAll(q.marts.EmergencyVisits)
}

func (q Queries) PrescriptionDistribution() string {
	return q.selectAll(q.marts.PrescriptionDistribution)
}

func (q Queries) PrescriptionCorrelation() string {
	return q.selectAll(q.marts.PrescriptionCorrelation)
}

func (q Queries) PrescriptionTrend() string {
	return q.selectAll(q.marts.PrescriptionTrend)
}
