// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

// Package services adapts the dashboard's long-running components to
// suture.Service.
//
//   - HTTPServerService: ListenAndServe with graceful Shutdown (api layer)
//   - CacheJanitorService: periodic query cache Cleanup (data layer)
//
// Every service implements fmt.Stringer so supervisor log lines name it.
// Serve returns ctx.Err() on a requested stop and any other error to ask
// for a restart.
package services
