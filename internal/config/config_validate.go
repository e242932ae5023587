// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

package config

import (
	"fmt"
	"regexp"
	"sort"
	"time"
)

// identifierPattern restricts schema and table names to plain SQL
// identifiers since they are interpolated into query text.
var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

var validLogLevels = map[string]bool{
	"trace": true, "debug": true, "info": true, "warn": true, "error": true,
}

var validLogFormats = map[string]bool{
	"json": true, "console": true,
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateDatabase(); err != nil {
		return err
	}
	if err := c.validateMarts(); err != nil {
		return err
	}
	if err := c.validateCache(); err != nil {
		return err
	}
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateDatabase() error {
	db := &c.Database
	switch db.Driver {
	case DriverPostgres:
		if db.Host == "" {
			return fmt.Errorf("DB_HOST is required when DB_DRIVER=postgres")
		}
		if db.Name == "" {
			return fmt.Errorf("DB_NAME is required when DB_DRIVER=postgres")
		}
		if db.User == "" {
			return fmt.Errorf("DB_USER is required when DB_DRIVER=postgres")
		}
		if db.Port < 1 || db.Port > 65535 {
			return fmt.Errorf("DB_PORT must be between 1 and 65535")
		}
		if db.SeedDemoData {
			return fmt.Errorf("SEED_DEMO_DATA is only supported with DB_DRIVER=duckdb")
		}
	case DriverDuckDB:
	default:
		return fmt.Errorf("DB_DRIVER must be one of: postgres, duckdb (got %q)", db.Driver)
	}

	if db.MaxOpenConns < 1 {
		return fmt.Errorf("DB_MAX_OPEN_CONNS must be at least 1")
	}
	if db.MaxIdleConns < 0 || db.MaxIdleConns > db.MaxOpenConns {
		return fmt.Errorf("DB_MAX_IDLE_CONNS must be between 0 and DB_MAX_OPEN_CONNS")
	}
	if db.QueryTimeout <= 0 {
		return fmt.Errorf("DB_QUERY_TIMEOUT must be positive")
	}
	return c.validateBreaker()
}

func (c *Config) validateBreaker() error {
	b := c.Database.Breaker
	if !b.Enabled {
		return nil
	}
	if b.MaxFailures == 0 {
		return fmt.Errorf("DB_BREAKER_MAX_FAILURES must be at least 1")
	}
	if b.Timeout <= 0 {
		return fmt.Errorf("DB_BREAKER_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateMarts() error {
	if !identifierPattern.MatchString(c.Marts.Schema) {
		return fmt.Errorf("MARTS_SCHEMA %q is not a valid identifier", c.Marts.Schema)
	}

	tables := c.Marts.Tables()
	keys := make([]string, 0, len(tables))
	for k := range tables {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !identifierPattern.MatchString(tables[k]) {
			return fmt.Errorf("marts.%s: %q is not a valid table identifier", k, tables[k])
		}
	}
	return nil
}

func (c *Config) validateCache() error {
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive")
	}
	if c.Cache.CleanupInterval < time.Second {
		return fmt.Errorf("CACHE_CLEANUP_INTERVAL must be at least 1s")
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if len(c.Security.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGINS must not be empty")
	}
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1")
	}
	if c.Security.RateLimitWindow < time.Second {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be at least 1s")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
