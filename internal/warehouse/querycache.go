// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

package warehouse

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/gaco/portrait-data-engineer-test/internal/cache"
	"github.com/gaco/portrait-data-engineer-test/internal/frame"
	"github.com/gaco/portrait-data-engineer-test/internal/logging"
	"github.com/gaco/portrait-data-engineer-test/internal/metrics"
)

const cacheType = "query"

// Querier runs one SQL statement against the warehouse.
type Querier interface {
	Query(ctx context.Context, query string) (*frame.Frame, error)
}

// Result is a loaded frame plus where it came from.
type Result struct {
	Frame     *frame.Frame
	Cached    bool
	FetchedAt time.Time
}

// Stats is the query cache state reported by the API.
type Stats struct {
	cache.Stats
	HitRate    float64 `json:"hit_rate"`
	TTLSeconds float64 `json:"ttl_seconds"`
}

// QueryCache memoizes query results by exact query text for the cache TTL.
//
// Within the TTL a repeated query returns an equal frame without touching
// the warehouse. Concurrent misses for the same text share one round-trip.
// Failed queries are never cached, so the next call tries again.
//
// A query in flight when Invalidate runs is not stored, and callers arriving
// after Invalidate start a new flight instead of joining the old one.
type QueryCache struct {
	db    Querier
	cache *cache.Cache
	group singleflight.Group

	// mu orders Invalidate against result stores; gen counts invalidations.
	mu  sync.Mutex
	gen uint64
}

// NewQueryCache wraps db with c.
func NewQueryCache(db Querier, c *cache.Cache) *QueryCache {
	return &QueryCache{db: db, cache: c}
}

// Load returns the result of query, from the cache when fresh.
// The returned frame is a private copy the caller may modify.
func (q *QueryCache) Load(ctx context.Context, query string) (*frame.Frame, error) {
	res, err := q.Fetch(ctx, query)
	if err != nil {
		return nil, err
	}
	return res.Frame, nil
}

// Fetch is Load but also reports whether the cache served the result and
// when the warehouse produced it.
func (q *QueryCache) Fetch(ctx context.Context, query string) (Result, error) {
	if e, ok := q.cache.GetEntry(query); ok {
		metrics.RecordCacheLookup(cacheType, true)
		return Result{Frame: e.Data.(*frame.Frame).Clone(), Cached: true, FetchedAt: e.StoredAt}, nil
	}
	metrics.RecordCacheLookup(cacheType, false)

	q.mu.Lock()
	gen := q.gen
	q.mu.Unlock()

	// The flight outlives any single caller: one caller leaving must not
	// fail the others waiting on the same query. The warehouse applies its
	// own query timeout.
	flightCtx := context.WithoutCancel(ctx)
	ch := q.group.DoChan(strconv.FormatUint(gen, 10)+"\x00"+query, func() (any, error) {
		// A flight that finished after our lookup may have filled the entry.
		if e, ok := q.cache.Peek(query); ok {
			return Result{Frame: e.Data.(*frame.Frame), Cached: true, FetchedAt: e.StoredAt}, nil
		}
		f, err := q.db.Query(flightCtx, query)
		if err != nil {
			return nil, err
		}
		return Result{Frame: f, FetchedAt: q.store(gen, query, f)}, nil
	})

	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return Result{}, fmt.Errorf("load query: %w", res.Err)
		}
		r := res.Val.(Result)
		r.Frame = r.Frame.Clone()
		return r, nil
	}
}

// store caches f unless an invalidation happened since gen was read, and
// returns the time the result was produced.
func (q *QueryCache) store(gen uint64, query string, f *frame.Frame) time.Time {
	q.mu.Lock()
	defer q.mu.Unlock()

	if gen != q.gen {
		return time.Now()
	}
	q.cache.Set(query, f)
	metrics.CacheSize.WithLabelValues(cacheType).Set(float64(q.cache.Len()))
	if e, ok := q.cache.Peek(query); ok {
		return e.StoredAt
	}
	return time.Now()
}

// Invalidate drops every cached result and returns how many were dropped.
func (q *QueryCache) Invalidate() int {
	q.mu.Lock()
	q.gen++
	n := q.cache.Clear()
	q.mu.Unlock()

	metrics.CacheEvictions.WithLabelValues(cacheType).Add(float64(n))
	metrics.CacheSize.WithLabelValues(cacheType).Set(0)
	logging.Info().Int("entries", n).Msg("Query cache invalidated")
	return n
}

// Cleanup removes expired results and returns how many were dropped.
func (q *QueryCache) Cleanup() int {
	n := q.cache.Cleanup()
	metrics.CacheEvictions.WithLabelValues(cacheType).Add(float64(n))
	metrics.CacheSize.WithLabelValues(cacheType).Set(float64(q.cache.Len()))
	return n
}

// Stats returns a snapshot of the cache counters.
func (q *QueryCache) Stats() Stats {
	return Stats{
		Stats:      q.cache.GetStats(),
		HitRate:    q.cache.HitRate(),
		TTLSeconds: q.cache.TTL().Seconds(),
	}
}
