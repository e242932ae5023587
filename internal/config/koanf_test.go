// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolate points CONFIG_PATH at a missing file and moves into an empty
// directory so no stray config.yaml is picked up.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Chdir(t.TempDir())
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Database.User != "postgres" || cfg.Database.Password != "postgres" {
		t.Errorf("credentials = %q/%q, want postgres/postgres", cfg.Database.User, cfg.Database.Password)
	}
	if cfg.Database.Host != "localhost" {
		t.Errorf("Database.Host = %q, want localhost", cfg.Database.Host)
	}
	if cfg.Database.Name != "healthcare" {
		t.Errorf("Database.Name = %q, want healthcare", cfg.Database.Name)
	}
	if cfg.Database.Port != 5432 {
		t.Errorf("Database.Port = %d, want 5432", cfg.Database.Port)
	}
	if cfg.Marts.Schema != "analytics_marts" {
		t.Errorf("Marts.Schema = %q, want analytics_marts", cfg.Marts.Schema)
	}
	if cfg.Cache.TTL != 10*time.Minute {
		t.Errorf("Cache.TTL = %v, want 10m", cfg.Cache.TTL)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadWithKoanf_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Database.Driver != DriverPostgres {
		t.Errorf("Database.Driver = %q, want postgres", cfg.Database.Driver)
	}
	if cfg.Server.Port != 8501 {
		t.Errorf("Server.Port = %d, want 8501", cfg.Server.Port)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "*" {
		t.Errorf("CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}
}

func TestLoadWithKoanf_EnvVars(t *testing.T) {
	isolate(t)
	t.Setenv("DB_USER", "analyst")
	t.Setenv("DB_PASS", "s3cret")
	t.Setenv("DB_HOST", "warehouse.internal")
	t.Setenv("DB_NAME", "clinic")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("CACHE_TTL", "90s")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("MART_EMERGENCY_VISITS", "er_visits_by_weekday")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("UNRELATED_VARIABLE", "ignored")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	db := cfg.Database
	if db.User != "analyst" || db.Password != "s3cret" || db.Host != "warehouse.internal" || db.Name != "clinic" {
		t.Errorf("database env not applied: %+v", db)
	}
	if db.Port != 6543 {
		t.Errorf("Database.Port = %d, want 6543", db.Port)
	}
	if cfg.Cache.TTL != 90*time.Second {
		t.Errorf("Cache.TTL = %v, want 90s", cfg.Cache.TTL)
	}
	if got := cfg.Security.CORSOrigins; len(got) != 2 || got[1] != "http://b.test" {
		t.Errorf("CORSOrigins = %v", got)
	}
	if cfg.Marts.EmergencyVisits != "er_visits_by_weekday" {
		t.Errorf("Marts.EmergencyVisits = %q", cfg.Marts.EmergencyVisits)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadWithKoanf_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
database:
  driver: duckdb
  path: /tmp/demo.duckdb
  seed_demo_data: true
marts:
  schema: reporting
cache:
  ttl: 2m
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("CACHE_TTL", "5m")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Database.Driver != DriverDuckDB || !cfg.Database.SeedDemoData {
		t.Errorf("file values not applied: %+v", cfg.Database)
	}
	if cfg.Marts.Schema != "reporting" {
		t.Errorf("Marts.Schema = %q, want reporting", cfg.Marts.Schema)
	}
	if cfg.Cache.TTL != 5*time.Minute {
		t.Errorf("env should override file: Cache.TTL = %v, want 5m", cfg.Cache.TTL)
	}
	if cfg.Marts.PrescriptionTrend != "prescription_frequency_trend" {
		t.Errorf("unset keys should keep defaults, got %q", cfg.Marts.PrescriptionTrend)
	}
}

func TestLoadWithKoanf_InvalidFails(t *testing.T) {
	isolate(t)
	t.Setenv("MARTS_SCHEMA", "analytics; DROP TABLE x")

	_, err := LoadWithKoanf()
	if err == nil {
		t.Fatal("expected validation error for bad schema")
	}
	if !strings.Contains(err.Error(), "MARTS_SCHEMA") {
		t.Errorf("error should mention MARTS_SCHEMA, got %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"DB_USER":   "database.user",
		"DB_PASS":   "database.password",
		"DB_HOST":   "database.host",
		"DB_NAME":   "database.name",
		"CACHE_TTL": "cache.ttl",
		"HTTP_PORT": "server.port",
		"HOME":      "",
	}
	for in, want := range tests {
		if got := envTransformFunc(in); got != want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", in, got, want)
		}
	}
}
