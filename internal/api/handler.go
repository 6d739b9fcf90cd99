package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/shoppulse/internal/domain/dto"
	"github.com/guttosm/shoppulse/internal/middleware"
	"github.com/guttosm/shoppulse/internal/service"
)

// ReportDefaults are applied to omitted query parameters.
type ReportDefaults struct {
	Limit      int
	Threshold  int
	WindowDays int // window ending today used when both dates are omitted
}

// Handler exposes the analytics reports over HTTP.
//
// Handlers only parse and validate query parameters, call the reporting
// service and encode its result; no computation happens here.
type Handler struct {
	svc      service.AnalyticsService
	defaults ReportDefaults
	now      func() time.Time
}

// NewHandler builds a Handler over svc.
func NewHandler(svc service.AnalyticsService, defaults ReportDefaults) *Handler {
	return &Handler{svc: svc, defaults: defaults, now: time.Now}
}

// Register mounts every report route under /api/analytics.
func (h *Handler) Register(r gin.IRouter) {
	analytics := r.Group("/api/analytics")

	sales := analytics.Group("/sales")
	{
		sales.GET("/by-category", h.GetSalesByCategory)
		sales.GET("/top-products", h.GetTopSellingProducts)
		sales.GET("/daily", h.GetDailySales)
		sales.GET("/total", h.GetTotalSales)
	}

	inventory := analytics.Group("/inventory")
	{
		inventory.GET("/status", h.GetInventoryStatus)
		inventory.GET("/low-stock", h.GetLowStockProducts)
	}

	activity := analytics.Group("/user-activity")
	{
		activity.GET("/summary", h.GetActivitySummary)
		activity.GET("/most-viewed", h.GetMostViewedProducts)
		activity.GET("/unique-users", h.GetUniqueUsers)
	}

	analytics.GET("/overview", h.GetOverview)
}

// window reads startDate/endDate (YYYY-MM-DD). Both omitted selects the
// default window ending today; giving only one of them is an error.
func (h *Handler) window(c *gin.Context) (time.Time, time.Time, bool) {
	rawStart, rawEnd := c.Query("startDate"), c.Query("endDate")

	if rawStart == "" && rawEnd == "" {
		now := h.now().UTC()
		end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		return end.AddDate(0, 0, -h.defaults.WindowDays), end, true
	}
	if rawStart == "" || rawEnd == "" {
		middleware.AbortWithError(c, http.StatusBadRequest, "startDate and endDate must be given together", nil)
		return time.Time{}, time.Time{}, false
	}

	start, err := time.Parse(dto.DateLayout, rawStart)
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid startDate format, expected YYYY-MM-DD", err)
		return time.Time{}, time.Time{}, false
	}
	end, err := time.Parse(dto.DateLayout, rawEnd)
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid endDate format, expected YYYY-MM-DD", err)
		return time.Time{}, time.Time{}, false
	}
	if end.Before(start) {
		middleware.AbortWithError(c, http.StatusBadRequest, "endDate must not be before startDate", nil)
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// positiveInt reads an optional positive integer query parameter.
func positiveInt(c *gin.Context, name string, def int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		middleware.AbortWithError(c, http.StatusBadRequest, fmt.Sprintf("%s must be a positive integer", name), err)
		return 0, false
	}
	return n, true
}

func respond[T any](c *gin.Context, what string, out T, err error) {
	if err != nil {
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to compute "+what, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
