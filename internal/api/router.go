// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gaco/portrait-data-engineer-test/internal/middleware"
	"github.com/gaco/portrait-data-engineer-test/internal/models"
)

// NewRouter wires every route onto a chi router.
//
// /metrics sits outside the gzip group because promhttp negotiates its
// own compression.
func NewRouter(h *Handler) http.Handler {
	var mwCfg *ChiMiddlewareConfig
	if h.config != nil {
		mwCfg = ChiMiddlewareConfigFromSecurity(h.config.Security)
	}
	mw := NewChiMiddleware(mwCfg)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog(middleware.DefaultSlowRequestThreshold))
	r.Use(chimiddleware.Recoverer)
	r.Use(mw.CORS())
	r.Use(middleware.PrometheusMetrics)

	r.NotFound(h.notFound)
	r.MethodNotAllowed(h.methodNotAllowed)

	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.Compression)

		r.Get("/", h.Index)

		r.Route("/api/v1", func(r chi.Router) {
			r.Use(mw.RateLimit())
			r.Use(APISecurityHeaders())

			r.Get("/health", h.Health)
			r.Get("/health/live", h.HealthLive)
			r.Get("/health/ready", h.HealthReady)

			r.Get("/sections", h.Sections)
			r.Get("/sections/{section}", h.Section)

			r.Get("/cache/stats", h.CacheStats)
			r.Post("/cache/invalidate", h.CacheInvalidate)
		})
	})

	return r
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusNotFound, &models.APIError{
		Code:    models.ErrCodeNotFound,
		Message: "Route not found",
	}, nil)
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusMethodNotAllowed, &models.APIError{
		Code:    models.ErrCodeMethodNotAllowed,
		Message: "Method not allowed",
	}, nil)
}
