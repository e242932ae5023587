// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/gaco/portrait-data-engineer-test/internal/logging"
)

// DefaultSlowRequestThreshold is used when AccessLog gets a non-positive
// threshold.
const DefaultSlowRequestThreshold = time.Second

// AccessLog writes one log line per request through the context logger.
// Requests slower than slow are logged at warn, server errors at error,
// everything else at debug.
func AccessLog(slow time.Duration) func(http.Handler) http.Handler {
	if slow <= 0 {
		slow = DefaultSlowRequestThreshold
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r)
			duration := time.Since(start)

			logger := logging.Ctx(r.Context())
			var event *zerolog.Event
			switch {
			case rec.status >= http.StatusInternalServerError:
				event = logger.Error()
			case duration > slow:
				event = logger.Warn().Dur("threshold", slow)
			default:
				event = logger.Debug()
			}

			msg := "request"
			if duration > slow {
				msg = "slow request"
			}
			event.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", rec.status).
				Int("bytes", rec.bytes).
				Int64("duration_ms", duration.Milliseconds()).
				Str("remote_addr", r.RemoteAddr).
				Msg(msg)
		})
	}
}
