// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/gaco/portrait-data-engineer-test/internal/database"
	"github.com/gaco/portrait-data-engineer-test/internal/frame"
	"github.com/gaco/portrait-data-engineer-test/internal/logging"
	"github.com/gaco/portrait-data-engineer-test/internal/models"
	"github.com/gaco/portrait-data-engineer-test/internal/reports"
)

// Cache-Control values.
const (
	cacheControlReports = "public, max-age=60"
	cacheControlNoStore = "no-store"
)

// sanitizeLogValue escapes control characters so client-supplied values
// cannot forge log lines.
func sanitizeLogValue(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7f {
			fmt.Fprintf(&b, "\\x%02x", r)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// respondJSON writes resp with an ETag computed over its data. A request
// whose If-None-Match matches gets 304 with no body.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, resp *models.APIResponse, cacheControl string) {
	data, err := json.Marshal(resp.Data)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to marshal response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	envelope := *resp
	envelope.Data = json.RawMessage(data)
	body, err := json.Marshal(&envelope)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	etag := generateETag(data)
	h := w.Header()
	h.Set("Cache-Control", cacheControl)
	h.Set("ETag", etag)

	if status == http.StatusOK && etagMatches(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	h.Set("Content-Type", "application/json")
	h.Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to write JSON response")
	}
}

// generateETag returns a quoted FNV-1a hash of data.
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return `"` + strconv.FormatUint(uint64(hash), 16) + `"`
}

func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == "*" || candidate == etag {
			return true
		}
	}
	return false
}

func success(data any, meta models.Metadata) *models.APIResponse {
	if meta.Timestamp.IsZero() {
		meta.Timestamp = time.Now().UTC()
	}
	return &models.APIResponse{Status: models.StatusSuccess, Data: data, Metadata: meta}
}

// respondError sends an error envelope. err, when non-nil, is logged but
// never sent to the client.
func respondError(w http.ResponseWriter, r *http.Request, status int, apiErr *models.APIError, err error) {
	if err != nil {
		event := logging.Ctx(r.Context()).Warn()
		if status >= http.StatusInternalServerError {
			event = logging.Ctx(r.Context()).Error()
		}
		event.Str("code", apiErr.Code).Str("error", sanitizeLogValue(err.Error())).Msg("API error")
	}

	respondJSON(w, r, status, &models.APIResponse{
		Status:   models.StatusError,
		Metadata: models.Metadata{Timestamp: time.Now().UTC()},
		Error:    apiErr,
	}, cacheControlNoStore)
}

// classifySectionError maps a section build failure to a status and
// error body.
func classifySectionError(err error) (int, *models.APIError) {
	switch {
	case errors.Is(err, reports.ErrUnknownSection):
		return http.StatusNotFound, &models.APIError{
			Code:    models.ErrCodeNotFound,
			Message: err.Error(),
		}
	case errors.Is(err, database.ErrCircuitOpen):
		return http.StatusServiceUnavailable, &models.APIError{
			Code:    models.ErrCodeServiceUnavailable,
			Message: "The data warehouse is temporarily unavailable",
		}
	case errors.Is(err, frame.ErrMissingColumn),
		errors.Is(err, frame.ErrNotNumeric),
		errors.Is(err, frame.ErrInvalidValue):
		return http.StatusInternalServerError, &models.APIError{
			Code:    models.ErrCodeTransform,
			Message: "Failed to build the section report",
		}
	default:
		return http.StatusInternalServerError, &models.APIError{
			Code:    models.ErrCodeDatabase,
			Message: "Failed to load section data",
		}
	}
}
