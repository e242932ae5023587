// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gaco/portrait-data-engineer-test/internal/api"
	"github.com/gaco/portrait-data-engineer-test/internal/cache"
	"github.com/gaco/portrait-data-engineer-test/internal/config"
	"github.com/gaco/portrait-data-engineer-test/internal/database"
	"github.com/gaco/portrait-data-engineer-test/internal/logging"
	"github.com/gaco/portrait-data-engineer-test/internal/supervisor"
	"github.com/gaco/portrait-data-engineer-test/internal/supervisor/services"
	"github.com/gaco/portrait-data-engineer-test/internal/warehouse"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("Dashboard exited with error")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("version", version).
		Str("driver", cfg.Database.Driver).
		Str("dsn", cfg.Database.RedactedDSN()).
		Str("schema", cfg.Marts.Schema).
		Dur("cache_ttl", cfg.Cache.TTL).
		Msg("Starting healthcare dashboard")

	db, err := database.New(&cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	if cfg.Database.SeedDemoData {
		if err := db.SeedDemoData(context.Background(), cfg.Marts); err != nil {
			return err
		}
		logging.Info().Msg("Demo marts seeded")
	}

	queryCache := warehouse.NewQueryCache(db, cache.New(cfg.Cache.TTL))
	handler := api.NewHandler(db, queryCache, warehouse.NewQueries(cfg.Marts), cfg, version)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           api.NewRouter(handler),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       2 * time.Minute,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: services.DefaultShutdownTimeout,
	})
	if err != nil {
		return err
	}
	tree.AddDataService(services.NewCacheJanitorService(queryCache, cfg.Cache.CleanupInterval))
	tree.AddAPIService(services.NewHTTPServerService(server, services.DefaultShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Dashboard stopped")
	return nil
}
