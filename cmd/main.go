package main

//
//  @title           shoppulse API
//  @version         1.0
//  @description     Sales, inventory and user-activity analytics over date ranges.
//  @termsOfService  https://github.com/guttosm/shoppulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/shoppulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        sales
//  @tag.description Revenue and product rankings
//
//  @tag.name        inventory
//  @tag.description Stock levels
//
//  @tag.name        user-activity
//  @tag.description Engagement statistics
//
//  @tag.name        overview
//  @tag.description Dashboard headline figures
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goose "github.com/pressly/goose/v3"

	"github.com/guttosm/shoppulse/config"
	_ "github.com/guttosm/shoppulse/docs" // swagger docs
	"github.com/guttosm/shoppulse/internal/app"
	"github.com/guttosm/shoppulse/internal/logger"
	"github.com/guttosm/shoppulse/internal/seed"
)

// startServer runs the HTTP server on port in a background goroutine.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown blocks until SIGINT or SIGTERM, drains the server within
// timeout and then runs cleanup.
func gracefulShutdown(ctx context.Context, server *http.Server, timeout time.Duration, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Error().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// runMigrations applies every pending goose migration found in dir.
func runMigrations(db *sql.DB, dir string) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

// main is the entry point of shoppulse.
//
// Modes (--mode):
//   - api:     serve the analytics REST API (default).
//   - seed:    load products.csv, sales.csv and user_activities.csv from --dir.
//   - migrate: apply the SQL migrations in --migrations.
func main() {
	ctx := context.Background()

	config.LoadConfig()
	logger.Init()

	mode := flag.String("mode", "api", "Mode: api, seed or migrate")
	dir := flag.String("dir", "./data/seed", "Directory with the CSV fixtures (seed mode)")
	parallel := flag.Int("parallel", 2, "Fixture files loaded concurrently after products (seed mode, 1-2)")
	force := flag.Bool("force", false, "Truncate all tables and reload every fixture (seed mode)")
	migrations := flag.String("migrations", "./db/migrations", "Directory with goose migrations (migrate mode)")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "seed":
		logger.L().Info().Str("dir", *dir).Msg("running seed")

		db, err := app.OpenPostgres(config.AppConfig)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("db connect error")
		}
		defer func() { _ = db.Close() }()

		opts := seed.Options{Parallel: *parallel, Force: *force}
		if err := seed.LoadDirectory(ctx, *dir, db, opts); err != nil {
			logger.L().Fatal().Err(err).Msg("seed failed")
		}
		logger.L().Info().Msg("seed completed successfully")

	case "migrate":
		logger.L().Info().Str("dir", *migrations).Msg("running migrations")

		db, err := app.OpenPostgres(config.AppConfig)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("db connect error")
		}
		defer func() { _ = db.Close() }()

		if err := runMigrations(db, *migrations); err != nil {
			logger.L().Fatal().Err(err).Msg("migration failed")
		}
		logger.L().Info().Msg("migrations applied")

	case "api":
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, config.AppConfig.Server.ShutdownTimeout, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
