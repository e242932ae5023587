// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths are searched in order when CONFIG_PATH is unset.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/healthcare-dashboard/config.yaml",
}

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "CONFIG_PATH"

func defaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:          DriverPostgres,
			User:            "postgres",
			Password:        "postgres",
			Host:            "localhost",
			Port:            5432,
			Name:            "healthcare",
			SSLMode:         "disable",
			Path:            "",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 30 * time.Minute,
			QueryTimeout:    30 * time.Second,
			SeedDemoData:    false,
			Breaker: BreakerConfig{
				Enabled:     true,
				MaxFailures: 5,
				Timeout:     30 * time.Second,
				Interval:    time.Minute,
			},
		},
		Marts: MartsConfig{
			Schema:                   "analytics_marts",
			PatientDistribution:      "patient_distribution_by_age_group",
			AppointmentFrequency:     "appointment_frequency_by_patient_type",
			AppointmentDistribution:  "appointment_distribution_by_age_group",
			EmergencyVisits:          "emergency_visits_by_day",
			PrescriptionDistribution: "prescription_distribution_by_age_group",
			PrescriptionCorrelation:  "prescription_appointment_correlation",
			PrescriptionTrend:        "prescription_frequency_trend",
		},
		Cache: CacheConfig{
			TTL:             10 * time.Minute,
			CleanupInterval: time.Minute,
		},
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        8501,
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// LoadWithKoanf loads configuration from defaults, an optional YAML file
// and the environment, in that order of precedence, then validates it.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields turns comma-separated env values into string slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		s, ok := k.Get(path).(string)
		if !ok || s == "" {
			continue
		}
		var parts []string
		for _, p := range strings.Split(s, ",") {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		if len(parts) == 0 {
			continue
		}
		if err := k.Set(path, parts); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps lower-cased environment variable names to koanf paths.
var envMappings = map[string]string{
	"db_driver":               "database.driver",
	"db_user":                 "database.user",
	"db_pass":                 "database.password",
	"db_host":                 "database.host",
	"db_port":                 "database.port",
	"db_name":                 "database.name",
	"db_sslmode":              "database.ssl_mode",
	"duckdb_path":             "database.path",
	"db_max_open_conns":       "database.max_open_conns",
	"db_max_idle_conns":       "database.max_idle_conns",
	"db_conn_max_lifetime":    "database.conn_max_lifetime",
	"db_query_timeout":        "database.query_timeout",
	"seed_demo_data":          "database.seed_demo_data",
	"db_breaker_enabled":      "database.breaker.enabled",
	"db_breaker_max_failures": "database.breaker.max_failures",
	"db_breaker_timeout":      "database.breaker.timeout",
	"db_breaker_interval":     "database.breaker.interval",

	"marts_schema":                   "marts.schema",
	"mart_patient_distribution":      "marts.patient_distribution",
	"mart_appointment_frequency":     "marts.appointment_frequency",
	"mart_appointment_distribution":  "marts.appointment_distribution",
	"mart_emergency_visits":          "marts.emergency_visits",
	"mart_prescription_distribution": "marts.prescription_distribution",
	"mart_prescription_correlation":  "marts.prescription_correlation",
	"mart_prescription_trend":        "marts.prescription_trend",

	"cache_ttl":              "cache.ttl",
	"cache_cleanup_interval": "cache.cleanup_interval",

	"http_host":    "server.host",
	"http_port":    "server.port",
	"http_timeout": "server.timeout",
	"environment":  "server.environment",

	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc maps environment variable names to koanf paths.
// Unmapped variables return "" and are ignored.
//
//   - DB_PASS -> database.password
//   - CACHE_TTL -> cache.ttl
//   - HTTP_PORT -> server.port
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
