// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

// Package frame holds the tabular result type returned by warehouse
// queries and the pure transforms used to shape it for charts and tables.
//
// Every transform takes a *Frame and returns a new *Frame; inputs are never
// modified, so frames served from the query cache can be shared freely.
// Referencing a column the input lacks yields a *MissingColumnError.
//
//	shares, err := frame.ShareOfTotal(f, "total_appointments", "percentage")
//	wide, err := frame.Pivot(f, "age_group", "appointment_type", "total")
//	wide, err = frame.AddTotalColumn(wide, "Total")
package frame
