// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/gaco/portrait-data-engineer-test/internal/metrics"
)

func TestPrometheusMetrics_LabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(PrometheusMetrics)
	r.Get("/mw-test/sections/{section}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "section") == "billing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("ok"))
	})

	const pattern = "/mw-test/sections/{section}"
	ok := metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, pattern, "200")
	notFound := metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, pattern, "404")
	okBefore, nfBefore := testutil.ToFloat64(ok), testutil.ToFloat64(notFound)

	for _, path := range []string{"/mw-test/sections/patients", "/mw-test/sections/appointments", "/mw-test/sections/billing"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	if got := testutil.ToFloat64(ok) - okBefore; got != 2 {
		t.Errorf("200 count delta = %v, want 2", got)
	}
	if got := testutil.ToFloat64(notFound) - nfBefore; got != 1 {
		t.Errorf("404 count delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(metrics.APIActiveRequests); got != 0 {
		t.Errorf("active requests = %v after completion, want 0", got)
	}
}

func TestPrometheusMetrics_Unmatched(t *testing.T) {
	counter := metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, unmatchedRoute, "200")
	before := testutil.ToFloat64(counter)

	h := PrometheusMetrics(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/no/router", nil))

	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("unmatched count delta = %v, want 1", got)
	}
}

func TestStatusRecorder(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	sr := newStatusRecorder(rec)
	sr.WriteHeader(http.StatusServiceUnavailable)
	sr.WriteHeader(http.StatusOK)
	_, _ = sr.Write([]byte("down"))

	if sr.status != http.StatusServiceUnavailable || rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d / %d, want 503", sr.status, rec.Code)
	}
	if sr.bytes != 4 {
		t.Errorf("bytes = %d, want 4", sr.bytes)
	}
	if sr.Unwrap() != rec {
		t.Error("Unwrap() should return the wrapped writer")
	}
}
