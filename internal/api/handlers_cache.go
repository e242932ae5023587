// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

package api

import (
	"net/http"
	"time"

	"github.com/gaco/portrait-data-engineer-test/internal/logging"
	"github.com/gaco/portrait-data-engineer-test/internal/models"
)

// CacheStats returns query cache counters and the hit rate.
func (h *Handler) CacheStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, success(h.source.Stats(), models.Metadata{}), cacheControlNoStore)
}

// CacheInvalidate drops every cached query result so the next section
// request reads fresh data from the warehouse.
func (h *Handler) CacheInvalidate(w http.ResponseWriter, r *http.Request) {
	n := h.source.Invalidate()
	logging.Ctx(r.Context()).Info().Int("entries", n).Msg("Query cache invalidated")

	respondJSON(w, r, http.StatusOK, success(models.CacheInvalidation{
		Invalidated: n,
		At:          time.Now().UTC(),
	}, models.Metadata{}), cacheControlNoStore)
}
