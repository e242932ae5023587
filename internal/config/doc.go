// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

// Package config loads dashboard configuration with koanf.
//
// Precedence, lowest to highest:
//
//  1. Built-in defaults (defaultConfig)
//  2. YAML file from CONFIG_PATH, ./config.yaml or /etc/healthcare-dashboard/config.yaml
//  3. Environment variables
//
// The warehouse credentials come from DB_USER, DB_PASS, DB_HOST and DB_NAME
// and default to postgres/postgres/localhost/healthcare on port 5432.
//
// Example config.yaml:
//
//	database:
//	  driver: postgres
//	  host: warehouse.internal
//	marts:
//	  schema: analytics_marts
//	cache:
//	  ttl: 10m
package config
