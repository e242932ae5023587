// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

package models

import (
	"time"
)

// Response status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error codes used in APIError.Code.
const (
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeTransform          = "TRANSFORM_ERROR"
	ErrCodeDatabase           = "DATABASE_ERROR"
	ErrCodeRateLimited        = "RATE_LIMIT_EXCEEDED"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

// APIResponse is the envelope for every JSON endpoint.
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"section": {"id": "patients", "title": "Patient Analysis"}, "panels": [...]},
//	  "metadata": {
//	    "timestamp": "2026-03-01T12:00:00Z",
//	    "query_time_ms": 45,
//	    "cached": true
//	  }
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "data": null,
//	  "error": {"code": "NOT_FOUND", "message": "unknown section: \"billing\""},
//	  "metadata": {"timestamp": "2026-03-01T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string    `json:"status"`
	Data     any       `json:"data"`
	Metadata Metadata  `json:"metadata"`
	Error    *APIError `json:"error,omitempty"`
}

// Metadata describes how a response was produced.
//
// Cached is true only when every query behind the response was served from
// the query cache.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError is a machine-readable error code plus a human-readable message.
type APIError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// HealthStatus is returned by /api/v1/health.
type HealthStatus struct {
	Status            string    `json:"status"`
	Version           string    `json:"version"`
	UptimeSeconds     float64   `json:"uptime_seconds"`
	DatabaseConnected bool      `json:"database_connected"`
	DatabaseDriver    string    `json:"database_driver"`
	CircuitBreaker    string    `json:"circuit_breaker"`
	Timestamp         time.Time `json:"timestamp"`
}

// SectionLink is one navigation entry in /api/v1/sections.
type SectionLink struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Href  string `json:"href"`
}

// CacheInvalidation is returned by POST /api/v1/cache/invalidate.
type CacheInvalidation struct {
	Invalidated int       `json:"invalidated"`
	At          time.Time `json:"at"`
}
