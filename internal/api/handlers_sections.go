// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

package api

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/gaco/portrait-data-engineer-test/internal/frame"
	"github.com/gaco/portrait-data-engineer-test/internal/logging"
	"github.com/gaco/portrait-data-engineer-test/internal/metrics"
	"github.com/gaco/portrait-data-engineer-test/internal/models"
	"github.com/gaco/portrait-data-engineer-test/internal/reports"
	"github.com/gaco/portrait-data-engineer-test/internal/validation"
)

const sectionsPath = "/api/v1/sections/"

// Sections lists the dashboard sections in navigation order.
func (h *Handler) Sections(w http.ResponseWriter, r *http.Request) {
	sections := reports.Sections()
	links := make([]models.SectionLink, len(sections))
	for i, s := range sections {
		links[i] = models.SectionLink{ID: s.ID, Title: s.Title, Href: sectionsPath + s.ID}
	}
	respondJSON(w, r, http.StatusOK, success(links, models.Metadata{}), cacheControlReports)
}

// Section builds the report for one section. Metadata.Cached is true when
// every query behind the report came from the query cache.
func (h *Handler) Section(w http.ResponseWriter, r *http.Request) {
	req := validation.SectionRequest{Section: chi.URLParam(r, "section")}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondError(w, r, http.StatusBadRequest, verr.ToAPIError(), nil)
		return
	}

	ctx := logging.ContextWithSection(r.Context(), req.Section)
	tracker := &trackingLoader{source: h.source}

	start := time.Now()
	report, err := reports.NewBuilder(tracker, h.queries).Build(ctx, req.Section)
	elapsed := time.Since(start)

	if errors.Is(err, reports.ErrUnknownSection) {
		status, apiErr := classifySectionError(err)
		respondError(w, r.WithContext(ctx), status, apiErr, nil)
		return
	}
	metrics.RecordSectionBuild(req.Section, elapsed, err)
	if err != nil {
		status, apiErr := classifySectionError(err)
		respondError(w, r.WithContext(ctx), status, apiErr, err)
		return
	}

	logging.Ctx(ctx).Debug().
		Int64("duration_ms", elapsed.Milliseconds()).
		Int32("queries", tracker.loads.Load()).
		Bool("cached", tracker.allCached()).
		Msg("Section built")

	respondJSON(w, r, http.StatusOK, success(report, models.Metadata{
		QueryTimeMS: elapsed.Milliseconds(),
		Cached:      tracker.allCached(),
	}), cacheControlReports)
}

// trackingLoader adapts a QuerySource to reports.Loader and remembers
// whether any query missed the cache.
type trackingLoader struct {
	source QuerySource
	loads  atomic.Int32
	misses atomic.Int32
}

func (l *trackingLoader) Load(ctx context.Context, query string) (*frame.Frame, error) {
	l.loads.Add(1)
	res, err := l.source.Fetch(ctx, query)
	if err != nil {
		return nil, err
	}
	if !res.Cached {
		l.misses.Add(1)
	}
	return res.Frame, nil
}

func (l *trackingLoader) allCached() bool {
	return l.loads.Load() > 0 && l.misses.Load() == 0
}
