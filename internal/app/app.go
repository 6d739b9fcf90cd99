package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/shoppulse/config"
	"github.com/guttosm/shoppulse/internal/api"
	"github.com/guttosm/shoppulse/internal/service"
	"github.com/guttosm/shoppulse/internal/storage"
)

// InitializeApp wires the HTTP application from config.AppConfig.
//
// Behavior:
//   - Opens and pings the postgres pool.
//   - Builds the product, sale and activity repositories.
//   - Builds the report cache (Memory or Noop per CACHE_ENABLED) and starts
//     its janitor when entries expire.
//   - Composes the reporting service, handlers, router and health probes.
//
// Returns:
//   - *gin.Engine: the router to serve.
//   - func(): cleanup that stops the cache janitor and closes the pool; call it
//     once the HTTP server has shut down.
//   - error: if the database or the cache cannot be set up.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	store, stopCache, err := newReportCache(cfg.Cache)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to initialize report cache: %w", err)
	}

	svc := service.NewAnalyticsService(
		storage.NewProductRepository(db),
		storage.NewSaleRepository(db),
		storage.NewActivityRepository(db),
		store,
	)

	handler := api.NewHandler(svc, api.ReportDefaults{
		Limit:      cfg.Report.DefaultLimit,
		Threshold:  cfg.Report.DefaultThreshold,
		WindowDays: cfg.Report.DefaultWindowDays,
	})

	router := api.NewRouter(handler, api.RouterOptions{
		RequestTimeout: cfg.Server.RequestTimeout,
		RateLimit:      cfg.Server.RateLimit,
	})

	api.NewHealthHandler(db.PingContext).Register(router)

	cleanup := func() {
		stopCache()
		_ = db.Close()
	}

	return router, cleanup, nil
}
