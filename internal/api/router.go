package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/shoppulse/internal/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterOptions tune the middleware chain.
type RouterOptions struct {
	RequestTimeout time.Duration // 0 leaves request contexts without a deadline
	RateLimit      int           // requests per client IP per minute; 0 disables
}

// NewRouter builds the gin engine serving the analytics routes.
//
// Behavior:
//   - Middleware order: RequestID, RequestLogger, RecoveryMiddleware,
//     ErrorHandler, RateLimiter (per minute).
//   - When opts.RequestTimeout > 0 every request context gets that deadline,
//     which the reporting service passes on to the database.
//   - Mounts the swagger UI at /swagger/*any and the report routes under
//     /api/analytics.
//   - Health probes are mounted separately by app.InitializeApp.
//
// Parameters:
//   - handler: report handlers bound to an AnalyticsService.
//   - opts: request timeout and rate limit.
//
// Returns:
//   - *gin.Engine: ready to be served by http.Server.
//
// Example:
//
//	h := api.NewHandler(svc, api.ReportDefaults{Limit: 10, Threshold: 50, WindowDays: 30})
//	router := api.NewRouter(h, api.RouterOptions{RequestTimeout: 10 * time.Second, RateLimit: 120})
func NewRouter(handler *Handler, opts RouterOptions) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.RateLimiter(opts.RateLimit, time.Minute),
	)

	if opts.RequestTimeout > 0 {
		router.Use(func(c *gin.Context) {
			ctx, cancel := context.WithTimeout(c.Request.Context(), opts.RequestTimeout)
			defer cancel()
			c.Request = c.Request.WithContext(ctx)
			c.Next()
		})
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	handler.Register(router)

	return router
}
