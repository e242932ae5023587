// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	sectionKey   contextKey = "section"
)

// GenerateRequestID creates a new request ID.
func GenerateRequestID() string {
	return uuid.New().String()
}

// ContextWithRequestID returns a copy of ctx carrying the request ID.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext returns the request ID, or "" if none is set.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// ContextWithSection tags ctx with the dashboard section being built so
// database and cache logs can be attributed to it.
func ContextWithSection(ctx context.Context, section string) context.Context {
	return context.WithValue(ctx, sectionKey, section)
}

// SectionFromContext returns the section tag, or "" if none is set.
func SectionFromContext(ctx context.Context) string {
	if s, ok := ctx.Value(sectionKey).(string); ok {
		return s
	}
	return ""
}

// Ctx returns the global logger enriched with the request_id and section
// fields found in ctx.
//
//	logging.Ctx(ctx).Info().Msg("Section built")
func Ctx(ctx context.Context) *zerolog.Logger {
	logCtx := Logger().With()
	if id := RequestIDFromContext(ctx); id != "" {
		logCtx = logCtx.Str("request_id", id)
	}
	if s := SectionFromContext(ctx); s != "" {
		logCtx = logCtx.Str("section", s)
	}
	l := logCtx.Logger()
	return &l
}
