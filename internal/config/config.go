// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"
)

// Config holds all application configuration.
//
// Values are layered: struct defaults, then an optional YAML file, then
// environment variables. Config is read-only after Load.
type Config struct {
	Database DatabaseConfig `koanf:"database"`
	Marts    MartsConfig    `koanf:"marts"`
	Cache    CacheConfig    `koanf:"cache"`
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// Supported warehouse drivers.
const (
	DriverPostgres = "postgres"
	DriverDuckDB   = "duckdb"
)

// DatabaseConfig describes the analytics warehouse connection.
//
// User, Password, Host and Name are the DB_USER, DB_PASS, DB_HOST and
// DB_NAME environment variables.
type DatabaseConfig struct {
	Driver   string `koanf:"driver"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Name     string `koanf:"name"`
	SSLMode  string `koanf:"ssl_mode"`

	// Path is the DuckDB file used when Driver is duckdb. Empty means in-memory.
	Path string `koanf:"path"`

	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	QueryTimeout    time.Duration `koanf:"query_timeout"`

	// SeedDemoData loads the demo marts at startup (duckdb only).
	SeedDemoData bool `koanf:"seed_demo_data"`

	Breaker BreakerConfig `koanf:"breaker"`
}

// BreakerConfig configures the circuit breaker around warehouse queries.
type BreakerConfig struct {
	Enabled     bool          `koanf:"enabled"`
	MaxFailures uint32        `koanf:"max_failures"`
	Timeout     time.Duration `koanf:"timeout"`
	Interval    time.Duration `koanf:"interval"`
}

// MartsConfig names the warehouse schema and the mart tables behind each
// report query.
type MartsConfig struct {
	Schema                   string `koanf:"schema"`
	PatientDistribution      string `koanf:"patient_distribution"`
	AppointmentFrequency     string `koanf:"appointment_frequency"`
	AppointmentDistribution  string `koanf:"appointment_distribution"`
	EmergencyVisits          string `koanf:"emergency_visits"`
	PrescriptionDistribution string `koanf:"prescription_distribution"`
	PrescriptionCorrelation  string `koanf:"prescription_correlation"`
	PrescriptionTrend        string `koanf:"prescription_trend"`
}

// Tables returns every configured mart table name keyed by its config key.
func (m MartsConfig) Tables() map[string]string {
	return map[string]string{
		"patient_distribution":      m.PatientDistribution,
		"appointment_frequency":     m.AppointmentFrequency,
		"appointment_distribution":  m.AppointmentDistribution,
		"emergency_visits":          m.EmergencyVisits,
		"prescription_distribution": m.PrescriptionDistribution,
		"prescription_correlation":  m.PrescriptionCorrelation,
		"prescription_trend":        m.PrescriptionTrend,
	}
}

// CacheConfig configures the query result cache.
type CacheConfig struct {
	TTL             time.Duration `koanf:"ttl"`
	CleanupInterval time.Duration `koanf:"cleanup_interval"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Host        string        `koanf:"host"`
	Port        int           `koanf:"port"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// SecurityConfig holds the HTTP hardening knobs. There is no authentication.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// DSN returns the connection string for the configured driver.
// For postgres it is a URL with escaped credentials; for duckdb it is the
// file path, or ":memory:" when Path is empty.
func (d *DatabaseConfig) DSN() string {
	if d.Driver == DriverDuckDB {
		return d.duckDBPath()
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:   "/" + d.Name,
	}
	if d.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {d.SSLMode}}.Encode()
	}
	return u.String()
}

// RedactedDSN returns DSN with the password masked, suitable for logs.
func (d *DatabaseConfig) RedactedDSN() string {
	if d.Driver == DriverDuckDB {
		return d.duckDBPath()
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, "xxxxx"),
		Host:   net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:   "/" + d.Name,
	}
	return u.String()
}

func (d *DatabaseConfig) duckDBPath() string {
	if d.Path == "" {
		return ":memory:"
	}
	return d.Path
}

// Load reads configuration using the layered koanf loader.
func Load() (*Config, error) {
	cfg, err := LoadWithKoanf()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
