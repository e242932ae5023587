// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

// Package models defines the JSON shapes of the HTTP API: the response
// envelope, error codes, and the health, navigation and cache payloads.
// Report bodies themselves are reports.Report values.
package models
