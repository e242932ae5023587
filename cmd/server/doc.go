// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

// Command server runs the healthcare analytics dashboard.
//
// Startup order:
//
//  1. Configuration from defaults, an optional config.yaml and the
//     environment (koanf)
//  2. Warehouse connection: Postgres via pgx, or DuckDB for local use
//  3. Optional demo data seeding (SEED_DEMO_DATA=true, duckdb only)
//  4. Query cache, report handlers and the chi router
//  5. Supervisor tree running the cache janitor and the HTTP server
//
// # Configuration
//
// The warehouse connection reads DB_USER, DB_PASS, DB_HOST and DB_NAME,
// defaulting to postgres, postgres, localhost and healthcare. CACHE_TTL
// sets how long query results are reused (default 10m).
//
// # Running locally
//
//	DB_DRIVER=duckdb SEED_DEMO_DATA=true ./server
//
// then open http://localhost:8501/.
//
// # Signals
//
// SIGINT and SIGTERM cancel the supervisor tree. The HTTP server drains
// in-flight requests for up to 10s before the warehouse connection closes.
package main
