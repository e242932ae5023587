// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

// Package supervisor runs the dashboard's long-lived goroutines under a
// suture/v4 supervision tree.
//
// Services live in the services subpackage and are attached to one of two
// layers. The data layer holds background maintenance (the query cache
// janitor); the api layer holds the HTTP server. Each layer restarts its
// own failed services with suture's backoff, so a janitor crash never
// takes the HTTP server down.
//
//	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
//	tree.AddDataService(services.NewCacheJanitorService(qc, cfg.Cache.CleanupInterval))
//	tree.AddAPIService(services.NewHTTPServerService(srv, 10*time.Second))
//	err = tree.Serve(ctx) // returns when ctx is canceled
//
// Supervisor events (restarts, backoff, stop timeouts) are logged through
// sutureslog into the zerolog-backed slog handler from internal/logging.
package supervisor
