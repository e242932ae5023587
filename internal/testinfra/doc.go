// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

// Package testinfra provides containers for integration tests.
//
// Everything here is behind the integration build tag and needs Docker:
//
//	go test -tags integration ./internal/database/...
//
// # PostgreSQL
//
// NewPostgresContainer starts a throwaway PostgreSQL server with the
// dashboard's default credentials, so the pgx code path can be exercised
// against a real warehouse:
//
//	func TestWarehouse(t *testing.T) {
//	    testinfra.SkipIfNoDocker(t)
//	    pg, err := testinfra.NewPostgresContainer(context.Background())
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    testinfra.CleanupContainer(t, pg)
//
//	    db, err := database.New(pg.DatabaseConfig())
//	    // ...
//	}
//
// Tests are skipped when Docker is unavailable. The first run pulls the
// image; later runs use the local cache.
package testinfra
