package api

import "github.com/gin-gonic/gin"

// GetActivitySummary godoc
// @Summary      User activity summary
// @Description  Event count and share per activity type in the window
// @Tags         user-activity
// @Produce      json
// @Param        startDate  query     string  false  "Start date (YYYY-MM-DD)" example(2024-01-01)
// @Param        endDate    query     string  false  "End date, inclusive (YYYY-MM-DD)" example(2024-01-31)
// @Success      200        {array}   dto.ActivitySummary
// @Failure      400        {object}  dto.ErrorResponse
// @Failure      500        {object}  dto.ErrorResponse
// @Router       /api/analytics/user-activity/summary [get]
func (h *Handler) GetActivitySummary(c *gin.Context) {
	start, end, ok := h.window(c)
	if !ok {
		return
	}
	out, err := h.svc.ActivitySummary(c.Request.Context(), start, end)
	respond(c, "activity summary", out, err)
}

// GetMostViewedProducts godoc
// @Summary      Most viewed products
// @Description  Products ranked by VIEW events; quantitySold carries the view count
// @Tags         user-activity
// @Produce      json
// @Param        startDate  query     string  false  "Start date (YYYY-MM-DD)" example(2024-01-01)
// @Param        endDate    query     string  false  "End date, inclusive (YYYY-MM-DD)" example(2024-01-31)
// @Param        limit      query     int     false  "Maximum rows" default(10)
// @Success      200        {array}   dto.RankedProduct
// @Failure      400        {object}  dto.ErrorResponse
// @Failure      500        {object}  dto.ErrorResponse
// @Router       /api/analytics/user-activity/most-viewed [get]
func (h *Handler) GetMostViewedProducts(c *gin.Context) {
	start, end, ok := h.window(c)
	if !ok {
		return
	}
	limit, ok := positiveInt(c, "limit", h.defaults.Limit)
	if !ok {
		return
	}
	out, err := h.svc.MostViewedProducts(c.Request.Context(), start, end, limit)
	respond(c, "most viewed products", out, err)
}

// GetUniqueUsers godoc
// @Summary      Unique users
// @Description  Number of distinct users with any activity in the window, as a bare JSON number
// @Tags         user-activity
// @Produce      json
// @Param        startDate  query     string  false  "Start date (YYYY-MM-DD)" example(2024-01-01)
// @Param        endDate    query     string  false  "End date, inclusive (YYYY-MM-DD)" example(2024-01-31)
// @Success      200        {integer} integer
// @Failure      400        {object}  dto.ErrorResponse
// @Failure      500        {object}  dto.ErrorResponse
// @Router       /api/analytics/user-activity/unique-users [get]
func (h *Handler) GetUniqueUsers(c *gin.Context) {
	start, end, ok := h.window(c)
	if !ok {
		return
	}
	out, err := h.svc.UniqueUsers(c.Request.Context(), start, end)
	respond(c, "unique users", out, err)
}
