// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

// Package reports turns mart query results into render instructions for the
// dashboard sections.
//
// Each section has a pure function from frames to a Report
// (PatientAnalysis, AppointmentAnalysis, PrescriptionAnalysis, Conclusions).
// A Report is a list of panels: Vega-Lite chart specs with inline data,
// tables as frames, or markdown. Nothing here draws; the browser renders
// the specs with vega-embed.
//
// Builder wires the pure functions to a Loader, normally the warehouse
// query cache, loading a section's one to three queries concurrently.
package reports
