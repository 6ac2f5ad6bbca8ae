// Package main is the entry point for the traivel API server.
// It wires dependencies together, applies migrations and serves REST and MCP.
// No business logic belongs here.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
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

	"github.com/pkordes/traivel/internal/config"
	"github.com/pkordes/traivel/internal/currency"
	"github.com/pkordes/traivel/internal/handler"
	"github.com/pkordes/traivel/internal/middleware"
	"github.com/pkordes/traivel/internal/repo"
	"github.com/pkordes/traivel/internal/service"
	"github.com/pkordes/traivel/internal/tools"
	"github.com/pkordes/traivel/migrations"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.LoadWithDotEnv()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Migrations -------------------------------------------------------
	if cfg.MigrateOnStart {
		if err := migrate(context.Background(), cfg.DatabaseURL, logger); err != nil {
			slog.Error("failed to apply migrations", "error", err)
			os.Exit(1)
		}
	}

	// --- Database ---------------------------------------------------------
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established")

	// --- Services ---------------------------------------------------------
	itineraryRepo := repo.NewItineraryRepo(pool)
	dayRepo := repo.NewDayRepo(pool)
	activityRepo := repo.NewActivityRepo(pool)

	assembler := service.NewAssembler(itineraryRepo, dayRepo, activityRepo)
	itinerarySvc := service.NewItineraryService(itineraryRepo, assembler)
	daySvc := service.NewDayService(itineraryRepo, dayRepo, assembler)
	activitySvc := service.NewActivityService(dayRepo, activityRepo)

	rates := currency.NewClient(cfg.RatesURL, cfg.HomeCurrency, cfg.RateCacheTTL, logger)
	planSvc := service.NewPlanService(assembler, rates)

	// --- Router -----------------------------------------------------------
	api := handler.NewServer(itinerarySvc, daySvc, activitySvc, planSvc, logger)
	mcpServer := tools.NewServer(tools.New(itinerarySvc, daySvc, activitySvc, logger))
	r := newRouter(cfg, logger, api, tools.NewHTTPHandler(mcpServer, logger))

	// --- HTTP Server ------------------------------------------------------
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr, "home_currency", cfg.HomeCurrency)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// newRouter stacks the shared middleware in front of the MCP endpoint and
// the REST routes. Order: RequestID, RealIP, Logger, Recoverer, CORS, body cap.
func newRouter(cfg config.Config, logger *slog.Logger, api *handler.Server, mcp http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLog(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	r.Handle("/mcp", mcp)
	r.Mount("/", api.Routes())
	return r
}

// migrate applies every pending embedded migration through goose using a
// short-lived database/sql connection.
func migrate(ctx context.Context, dsn string, logger *slog.Logger) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer db.Close()

	provider, err := migrations.NewProvider(db)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	for _, res := range results {
		logger.Info("migration applied", "version", res.Source.Version, "duration", res.Duration)
	}
	return nil
}
