// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

// Package middleware provides the HTTP middleware used by the dashboard
// router. Every function has the func(http.Handler) http.Handler shape
// expected by chi's Use.
//
// # Components
//
//   - RequestID: propagates or generates X-Request-ID and stores it in the
//     context so logging.Ctx picks it up
//   - AccessLog: per-request log line, warns on slow requests
//   - PrometheusMetrics: request count, latency and in-flight gauge,
//     labelled by chi route pattern
//   - Compression: gzip with pooled writers
//
// # Ordering
//
// RequestID must run before AccessLog so the log line carries the ID.
// PrometheusMetrics should sit inside chi's routing so the route pattern
// is known once the handler returns; labelling by the raw URL path would
// give every unknown section its own series.
//
//	r := chi.NewRouter()
//	r.Use(middleware.RequestID)
//	r.Use(chimw.RealIP)
//	r.Use(middleware.AccessLog(time.Second))
//	r.Use(chimw.Recoverer)
//	r.Use(middleware.Compression)
//	r.Use(middleware.PrometheusMetrics)
package middleware
