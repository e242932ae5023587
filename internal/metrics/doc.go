// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

// Package metrics defines the Prometheus collectors exported on /metrics.
//
// Collectors are registered with the default registry at init through
// promauto. Callers use the Record* helpers rather than touching the
// vectors directly so label sets stay consistent:
//
//	start := time.Now()
//	rows, err := db.QueryContext(ctx, q)
//	metrics.RecordDBQuery("SELECT", "emergency_visits_by_day", time.Since(start), err)
package metrics
