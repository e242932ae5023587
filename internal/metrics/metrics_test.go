// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

package metrics

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordDBQuery_CountsErrors(t *testing.T) {
	table := "metrics_test_errors"
	before := testutil.ToFloat64(DBQueryErrors.WithLabelValues("SELECT", table, "connection refused"))

	RecordDBQuery("SELECT", table, 10*time.Millisecond, nil)
	RecordDBQuery("SELECT", table, 10*time.Millisecond, errors.New("connection refused"))

	after := testutil.ToFloat64(DBQueryErrors.WithLabelValues("SELECT", table, "connection refused"))
	if after-before != 1 {
		t.Errorf("expected 1 new error, got %v", after-before)
	}
}

func TestErrorType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"deadline", fmt.Errorf("query: %w", context.DeadlineExceeded), "timeout"},
		{"canceled", context.Canceled, "canceled"},
		{"short", errors.New("boom"), "boom"},
		{"long", errors.New(strings.Repeat("x", 80)), strings.Repeat("x", 50)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := errorType(tt.err); got != tt.want {
				t.Errorf("errorType() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRecordCacheLookup(t *testing.T) {
	hits := testutil.ToFloat64(CacheHits.WithLabelValues("metrics_test"))
	misses := testutil.ToFloat64(CacheMisses.WithLabelValues("metrics_test"))

	RecordCacheLookup("metrics_test", true)
	RecordCacheLookup("metrics_test", true)
	RecordCacheLookup("metrics_test", false)

	if got := testutil.ToFloat64(CacheHits.WithLabelValues("metrics_test")) - hits; got != 2 {
		t.Errorf("hits delta = %v, want 2", got)
	}
	if got := testutil.ToFloat64(CacheMisses.WithLabelValues("metrics_test")) - misses; got != 1 {
		t.Errorf("misses delta = %v, want 1", got)
	}
}

func TestRecordSectionBuild(t *testing.T) {
	before := testutil.ToFloat64(SectionBuildErrors.WithLabelValues("metrics_test"))

	RecordSectionBuild("metrics_test", 5*time.Millisecond, nil)
	RecordSectionBuild("metrics_test", 5*time.Millisecond, errors.New("missing column"))

	if got := testutil.ToFloat64(SectionBuildErrors.WithLabelValues("metrics_test")) - before; got != 1 {
		t.Errorf("section errors delta = %v, want 1", got)
	}
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/metrics-test", "200"))

	RecordAPIRequest("GET", "/metrics-test", "200", 20*time.Millisecond)

	if got := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/metrics-test", "200")) - before; got != 1 {
		t.Errorf("requests delta = %v, want 1", got)
	}
}

func TestTrackActiveRequest_Concurrent(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			TrackActiveRequest(true)
			TrackActiveRequest(false)
		}()
	}
	wg.Wait()

	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("active requests = %v, want %v after balanced inc/dec", got, before)
	}
}
