// Package main is the entry point for the TripLedger API server.
// Its sole responsibility is wiring dependencies together and starting the
// server. No business logic belongs here.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"github.com/tripledger/tripledger/internal/config"
	"github.com/tripledger/tripledger/internal/handler"
	"github.com/tripledger/tripledger/internal/middleware"
	"github.com/tripledger/tripledger/internal/repo"
	"github.com/tripledger/tripledger/internal/repo/mem"
	"github.com/tripledger/tripledger/internal/service"
	"github.com/tripledger/tripledger/migrations"
)

// maxBodyBytes caps incoming request bodies at 1 MiB. No legitimate payload
// in this API comes close.
const maxBodyBytes = 1 << 20

func main() {
	// --- Config -----------------------------------------------------------
	// .env is a development convenience; absence is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Storage ----------------------------------------------------------
	var (
		trips        repo.TripRepo
		expenses     repo.ExpenseRepo
		rates        repo.RateRepo
		categories   repo.RegistryRepo
		paymentModes repo.RegistryRepo
	)

	switch cfg.Storage {
	case config.StoragePostgres:
		pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to create database pool", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		// Verify the DB is reachable before accepting traffic.
		if err := pool.Ping(context.Background()); err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}

		if err := migrate(cfg.DatabaseURL); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("database ready", "backend", cfg.Storage)

		trips = repo.NewTripRepo(pool)
		expenses = repo.NewExpenseRepo(pool)
		rates = repo.NewRateRepo(pool)
		categories = repo.NewCategoryRepo(pool)
		paymentModes = repo.NewPaymentModeRepo(pool)

	default: // config.StorageMemory
		opts := []mem.Option{mem.WithLatencyScale(cfg.MockLatency)}
		trips = mem.NewTripRepo(opts...)
		expenses = mem.NewExpenseRepo(opts...)
		rates = mem.NewRateRepo(mem.SeedRates(), opts...)
		categories = mem.NewCategoryRepo(opts...)
		paymentModes = mem.NewPaymentModeRepo(opts...)
		slog.Info("using in-memory storage", "latency_scale", cfg.MockLatency)
	}

	// --- Services ---------------------------------------------------------
	srv := handler.NewServer(handler.Services{
		Trips:        service.NewTripService(trips, expenses),
		Expenses:     service.NewExpenseService(expenses, trips, rates),
		Rates:        service.NewRateService(rates),
		Categories:   service.NewCategoryService(categories),
		PaymentModes: service.NewPaymentModeService(paymentModes),
		Stats:        service.NewStatsService(trips, expenses),
		Calendar:     service.NewCalendarService(expenses),
		Export:       service.NewExportService(trips, expenses),
	})

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer
	// → CORS → body size cap.
	// RequestID generates a unique trace ID per request.
	// RealIP sets r.RemoteAddr from X-Forwarded-For / X-Real-IP (safe behind a proxy).
	// SlogLogger writes one structured JSON log line per request.
	// Recoverer catches panics and returns HTTP 500 instead of crashing.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(maxBodyBytes))

	r.Mount("/", srv.Routes())

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// migrate applies pending schema migrations via the goose programmatic API.
// goose needs database/sql, not a pgx pool, so a short-lived connection is
// opened just for the migration run.
func migrate(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return err
	}
	_, err = provider.Up(context.Background())
	return err
}
