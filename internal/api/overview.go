package api

import "github.com/gin-gonic/gin"

// GetOverview godoc
// @Summary      Dashboard overview
// @Description  Total sales, unique users, low stock count and best category for the window
// @Tags         overview
// @Produce      json
// @Param        startDate  query     string  false  "Start date (YYYY-MM-DD)" example(2024-01-01)
// @Param        endDate    query     string  false  "End date, inclusive (YYYY-MM-DD)" example(2024-01-31)
// @Param        threshold  query     int     false  "Low stock threshold" default(50)
// @Success      200        {object}  dto.Overview
// @Failure      400        {object}  dto.ErrorResponse
// @Failure      500        {object}  dto.ErrorResponse
// @Router       /api/analytics/overview [get]
func (h *Handler) GetOverview(c *gin.Context) {
	start, end, ok := h.window(c)
	if !ok {
		return
	}
	threshold, ok := positiveInt(c, "threshold", h.defaults.Threshold)
	if !ok {
		return
	}
	out, err := h.svc.Overview(c.Request.Context(), start, end, threshold)
	respond(c, "overview", out, err)
}
