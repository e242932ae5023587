// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

// Package logging provides the process-wide zerolog logger.
//
// Initialize once from main with the loaded configuration:
//
//	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
//	logging.Info().Msg("Server starting")
//
// Request-scoped code should log through Ctx so request_id and section
// fields are attached automatically:
//
//	logging.Ctx(ctx).Warn().Err(err).Msg("Section build failed")
//
// Always terminate chains with Msg or Send; an unterminated event is never
// written.
package logging
