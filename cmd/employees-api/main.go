// main is the entry point of the Employees API.
//
// STARTUP SEQUENCE:
//  1. Load configuration from a YAML file and/or the environment
//  2. Initialise the logger
//  3. Register Prometheus collectors
//  4. Connect to the configured store (SQLite or PostgreSQL)
//  5. Build the router and start the HTTP server in a separate goroutine
//  6. Block until an OS signal (Ctrl+C / kill) arrives
//  7. Gracefully shut down: finish in-flight requests, close the store
//
// RUNNING THE SERVER:
//
//	go run ./cmd/employees-api --config=config/local.yaml
//
// or, configured from the environment only:
//
//	PORT=8080 STORAGE_PATH=storage/employees.db go run ./cmd/employees-api
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/aanand-mishra/employees-api/internal/config"
	"github.com/aanand-mishra/employees-api/internal/http/router"
	"github.com/aanand-mishra/employees-api/internal/lib/logger/sl"
	"github.com/aanand-mishra/employees-api/internal/metrics"
	"github.com/aanand-mishra/employees-api/internal/storage"
	"github.com/aanand-mishra/employees-api/internal/storage/postgres"
	"github.com/aanand-mishra/employees-api/internal/storage/sqlite"
	"github.com/aanand-mishra/employees-api/internal/version"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const appName = "employees-api"

func main() {
	configPath := flag.String("config", "", "Path to the configuration YAML file")
	showVersion := flag.Bool("version", false, "Print version information and exit")
	flag.Parse()

	buildInfo := version.Info(appName, "REST API for employee records")
	if *showVersion {
		fmt.Println(buildInfo.String())
		return
	}

	// ── 1. Load Config ────────────────────────────────────────────────────
	cfg := config.MustLoad(*configPath)

	// ── 2. Initialise Logger ──────────────────────────────────────────────
	log := setupLogger(cfg.Env)

	log.Info("starting "+appName,
		slog.String("env", cfg.Env),
		slog.String("version", buildInfo.GitVersion),
		slog.String("storage_driver", cfg.Storage.Driver),
	)

	// ── 3. Metrics ────────────────────────────────────────────────────────
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	// ── 4. Initialise Storage ─────────────────────────────────────────────
	// The rest of the program only sees the storage.Storage interface.
	store, err := openStorage(cfg, appMetrics)
	if err != nil {
		log.Error("failed to initialise storage", sl.Err(err))
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("failed to close storage", sl.Err(err))
		}
	}()

	log.Info("storage initialised", slog.String("driver", cfg.Storage.Driver))

	// ── 5. HTTP Server ────────────────────────────────────────────────────
	server := &http.Server{
		Addr:         cfg.HTTPServer.Addr(),
		Handler:      router.New(log, store, appMetrics, reg),
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("server started", slog.String("address", server.Addr))

		// ListenAndServe returns http.ErrServerClosed once Shutdown is called.
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// ── 6. Wait for Shutdown Signal ───────────────────────────────────────
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		log.Info("shutdown signal received, stopping server...")
	case err := <-serverErr:
		log.Error("server encountered an error", sl.Err(err))
	}

	// ── 7. Graceful Shutdown ──────────────────────────────────────────────
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server gracefully", sl.Err(err))
		return
	}

	log.Info("server stopped gracefully")
}

// openStorage connects to the store selected by cfg.Storage.Driver.
func openStorage(cfg *config.Config, m *metrics.Metrics) (storage.Storage, error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		pg := cfg.Storage.Postgres
		pool, err := postgres.NewDatabase(context.Background(), pg.Host, pg.Port, pg.User, pg.Password, pg.Dbname)
		if err != nil {
			return nil, err
		}
		return postgres.New(pool, m), nil
	default:
		db, err := sqlite.New(cfg.Storage.Path, m)
		if err != nil {
			return nil, err
		}
		return db, nil
	}
}

// setupLogger returns a *slog.Logger configured for the given environment.
//
// dev:     human-readable text output at DEBUG level.
// staging: JSON output at DEBUG level.
// prod:    JSON output at INFO level.
func setupLogger(env string) *slog.Logger {
	switch env {
	case config.EnvProd:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case config.EnvStaging:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	}
}
