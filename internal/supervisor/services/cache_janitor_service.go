// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

package services

import (
	"context"
	"time"

	"github.com/gaco/portrait-data-engineer-test/internal/logging"
)

// DefaultCleanupInterval is used when NewCacheJanitorService gets a
// non-positive interval.
const DefaultCleanupInterval = time.Minute

// Cleaner drops expired entries and reports how many it removed.
// warehouse.QueryCache satisfies it.
type Cleaner interface {
	Cleanup() int
}

// CacheJanitorService evicts expired query results on a fixed interval.
// Reads already ignore expired entries; the janitor only bounds memory.
type CacheJanitorService struct {
	cache    Cleaner
	interval time.Duration
	name     string
}

// NewCacheJanitorService returns a janitor for cache.
func NewCacheJanitorService(cache Cleaner, interval time.Duration) *CacheJanitorService {
	if interval <= 0 {
		interval = DefaultCleanupInterval
	}
	return &CacheJanitorService{cache: cache, interval: interval, name: "cache-janitor"}
}

// Serve implements suture.Service.
func (j *CacheJanitorService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if n := j.cache.Cleanup(); n > 0 {
				logging.Debug().Int("evicted", n).Msg("Expired query results evicted")
			}
		}
	}
}

func (j *CacheJanitorService) String() string {
	return j.name
}
