// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

// Package warehouse sits between the report builders and the database.
//
// QueryCache memoizes each query result for the configured TTL (10 minutes
// by default), keyed by the exact query text. Results may be up to one TTL
// stale; POST /api/v1/cache/invalidate clears them early. Queries holds the
// fixed SELECT statements for each analytics mart.
package warehouse
