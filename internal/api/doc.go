// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

// Package api serves the dashboard over HTTP using the chi router.
//
// # Endpoints
//
//	GET  /                           dashboard page (section navigation + vega-embed)
//	GET  /api/v1/health              version, uptime, warehouse connectivity
//	GET  /api/v1/health/live         liveness probe
//	GET  /api/v1/health/ready        readiness probe, 503 when the warehouse is down
//	GET  /api/v1/sections            section list in navigation order
//	GET  /api/v1/sections/{section}  render instructions for one section
//	GET  /api/v1/cache/stats         query cache counters
//	POST /api/v1/cache/invalidate    drop every cached query result
//	GET  /metrics                    Prometheus exposition
//
// # Responses
//
// JSON endpoints answer with models.APIResponse encoded by goccy/go-json.
// Each response carries an ETag over its data, so a dashboard reload whose
// section data has not changed revalidates with 304. Section failures map
// to status codes as follows:
//
//	unknown section            404 NOT_FOUND
//	malformed section param    400 VALIDATION_ERROR
//	circuit breaker open       503 SERVICE_UNAVAILABLE
//	missing or invalid column  500 TRANSFORM_ERROR
//	anything else              500 DATABASE_ERROR
//
// A failing section never affects other sections; the error body never
// contains driver or SQL text.
package api
