// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

package api

import (
	"net/http"
	"time"

	"github.com/gaco/portrait-data-engineer-test/internal/models"
)

// Health reports version, uptime and warehouse connectivity. It always
// answers 200; Status is "degraded" when the warehouse does not respond.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	health := models.HealthStatus{
		Status:         "healthy",
		Version:        h.version,
		UptimeSeconds:  h.Uptime().Seconds(),
		CircuitBreaker: "disabled",
		Timestamp:      time.Now().UTC(),
	}

	if h.db != nil {
		health.DatabaseConnected = h.db.Ping(r.Context()) == nil
		health.DatabaseDriver = h.db.Driver()
		health.CircuitBreaker = h.db.BreakerState()
	}
	if !health.DatabaseConnected {
		health.Status = "degraded"
	}

	respondJSON(w, r, http.StatusOK, success(health, models.Metadata{}), cacheControlNoStore)
}

// HealthLive is the liveness probe: 200 whenever the process can serve.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, success(map[string]any{
		"alive":  true,
		"uptime": h.Uptime().Seconds(),
	}, models.Metadata{}), cacheControlNoStore)
}

// HealthReady is the readiness probe: 200 only when the warehouse answers
// a ping, 503 otherwise.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		respondError(w, r, http.StatusServiceUnavailable, &models.APIError{
			Code:    models.ErrCodeServiceUnavailable,
			Message: "Database not configured",
		}, nil)
		return
	}

	if err := h.db.Ping(r.Context()); err != nil {
		respondError(w, r, http.StatusServiceUnavailable, &models.APIError{
			Code:    models.ErrCodeServiceUnavailable,
			Message: "Database not ready",
		}, err)
		return
	}

	respondJSON(w, r, http.StatusOK, success(map[string]any{
		"ready":    true,
		"database": h.db.Driver(),
	}, models.Metadata{}), cacheControlNoStore)
}
