package api

import "github.com/gin-gonic/gin"

// GetSalesByCategory godoc
// @Summary      Sales by category
// @Description  Revenue per product category in the window, highest first
// @Tags         sales
// @Produce      json
// @Param        startDate  query     string  false  "Start date (YYYY-MM-DD)" example(2024-01-01)
// @Param        endDate    query     string  false  "End date, inclusive (YYYY-MM-DD)" example(2024-01-31)
// @Success      200        {array}   dto.CategorySales
// @Failure      400        {object}  dto.ErrorResponse
// @Failure      500        {object}  dto.ErrorResponse
// @Router       /api/analytics/sales/by-category [get]
func (h *Handler) GetSalesByCategory(c *gin.Context) {
	start, end, ok := h.window(c)
	if !ok {
		return
	}
	out, err := h.svc.SalesByCategory(c.Request.Context(), start, end)
	respond(c, "sales by category", out, err)
}

// GetTopSellingProducts godoc
// @Summary      Top selling products
// @Description  Products ranked by quantity sold; percentages are over all products sold in the window
// @Tags         sales
// @Produce      json
// @Param        startDate  query     string  false  "Start date (YYYY-MM-DD)" example(2024-01-01)
// @Param        endDate    query     string  false  "End date, inclusive (YYYY-MM-DD)" example(2024-01-31)
// @Param        limit      query     int     false  "Maximum rows" default(10)
// @Success      200        {array}   dto.RankedProduct
// @Failure      400        {object}  dto.ErrorResponse
// @Failure      500        {object}  dto.ErrorResponse
// @Router       /api/analytics/sales/top-products [get]
func (h *Handler) GetTopSellingProducts(c *gin.Context) {
	start, end, ok := h.window(c)
	if !ok {
		return
	}
	limit, ok := positiveInt(c, "limit", h.defaults.Limit)
	if !ok {
		return
	}
	out, err := h.svc.TopSellingProducts(c.Request.Context(), start, end, limit)
	respond(c, "top selling products", out, err)
}

// GetDailySales godoc
// @Summary      Daily sales
// @Description  Revenue and transaction count per calendar day, oldest first
// @Tags         sales
// @Produce      json
// @Param        startDate  query     string  false  "Start date (YYYY-MM-DD)" example(2024-01-01)
// @Param        endDate    query     string  false  "End date, inclusive (YYYY-MM-DD)" example(2024-01-31)
// @Success      200        {array}   dto.DailySales
// @Failure      400        {object}  dto.ErrorResponse
// @Failure      500        {object}  dto.ErrorResponse
// @Router       /api/analytics/sales/daily [get]
func (h *Handler) GetDailySales(c *gin.Context) {
	start, end, ok := h.window(c)
	if !ok {
		return
	}
	out, err := h.svc.DailySales(c.Request.Context(), start, end)
	respond(c, "daily sales", out, err)
}

// GetTotalSales godoc
// @Summary      Total sales
// @Description  Sum of all sale amounts in the window, as a bare JSON number
// @Tags         sales
// @Produce      json
// @Param        startDate  query     string  false  "Start date (YYYY-MM-DD)" example(2024-01-01)
// @Param        endDate    query     string  false  "End date, inclusive (YYYY-MM-DD)" example(2024-01-31)
// @Success      200        {number}  number
// @Failure      400        {object}  dto.ErrorResponse
// @Failure      500        {object}  dto.ErrorResponse
// @Router       /api/analytics/sales/total [get]
func (h *Handler) GetTotalSales(c *gin.Context) {
	start, end, ok := h.window(c)
	if !ok {
		return
	}
	out, err := h.svc.TotalSales(c.Request.Context(), start, end)
	respond(c, "total sales", out, err)
}
