// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

package api

import (
	"context"
	"time"

	"github.com/gaco/portrait-data-engineer-test/internal/config"
	"github.com/gaco/portrait-data-engineer-test/internal/warehouse"
)

// Warehouse is the part of database.DB the handlers need.
type Warehouse interface {
	Ping(ctx context.Context) error
	Driver() string
	BreakerState() string
}

// QuerySource is the query cache the section handlers read through.
// warehouse.QueryCache satisfies it.
type QuerySource interface {
	Fetch(ctx context.Context, query string) (warehouse.Result, error)
	Invalidate() int
	Stats() warehouse.Stats
}

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers_health.go: health, liveness and readiness probes
//   - handlers_sections.go: section navigation and report endpoints
//   - handlers_cache.go: query cache stats and invalidation
//   - handlers_index.go: the embedded dashboard page
type Handler struct {
	db        Warehouse
	source    QuerySource
	queries   warehouse.Queries
	config    *config.Config
	version   string
	startTime time.Time
}

// NewHandler creates a Handler. db may be nil, in which case health
// reports the warehouse as disconnected.
//
//	qc := warehouse.NewQueryCache(db, cache.New(cfg.Cache.TTL))
//	h := api.NewHandler(db, qc, warehouse.NewQueries(cfg.Marts), cfg, version)
//	srv := &http.Server{Handler: api.NewRouter(h)}
func NewHandler(db Warehouse, source QuerySource, queries warehouse.Queries, cfg *config.Config, version string) *Handler {
	if version == "" {
		version = "dev"
	}
	return &Handler{
		db:        db,
		source:    source,
		queries:   queries,
		config:    cfg,
		version:   version,
		startTime: time.Now(),
	}
}

// Uptime returns how long the handler has been serving.
func (h *Handler) Uptime() time.Duration {
	return time.Since(h.startTime)
}
