// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

// Package cache provides the in-memory TTL cache that backs the warehouse
// query cache.
//
// Expiry is checked on every Get. Long-running processes should also call
// Cleanup periodically (see supervisor/services.CacheJanitorService) so
// entries that are never read again do not accumulate.
package cache
