package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/shoppulse/internal/logger"
	"github.com/rs/zerolog"
)

// RequestLogger writes one access log line per request.
//
// The level follows the response: info for 2xx/3xx, warn for 4xx and error
// for 5xx. Report parameters travel in the query string, so it is logged too.
//
//	router.Use(middleware.RequestID(), middleware.RequestLogger())
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		status := c.Writer.Status()
		rid, _ := c.Get(RequestIDKey)

		evt := levelFor(status)
		if len(c.Errors) > 0 {
			evt = evt.Str("errors", c.Errors.String())
		}
		evt.Str("request_id", toString(rid)).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("query", query).
			Int("status", status).
			Int64("latency_ms", time.Since(start).Milliseconds()).
			Str("client_ip", c.ClientIP()).
			Msg("http_request")
	}
}

func levelFor(status int) *zerolog.Event {
	switch {
	case status >= 500:
		return logger.L().Error()
	case status >= 400:
		return logger.L().Warn()
	default:
		return logger.L().Info()
	}
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
