package api

import "github.com/gin-gonic/gin"

// GetInventoryStatus godoc
// @Summary      Inventory status
// @Description  Every product with its stock band (LOW < 20, MEDIUM < 50, ADEQUATE otherwise)
// @Tags         inventory
// @Produce      json
// @Success      200  {array}   dto.InventoryStatus
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/inventory/status [get]
func (h *Handler) GetInventoryStatus(c *gin.Context) {
	out, err := h.svc.InventoryStatus(c.Request.Context())
	respond(c, "inventory status", out, err)
}

// GetLowStockProducts godoc
// @Summary      Low stock products
// @Description  Products with stock below the threshold, lowest first. Every row is reported as LOW.
// @Tags         inventory
// @Produce      json
// @Param        threshold  query     int  false  "Exclusive stock threshold" default(50)
// @Success      200        {array}   dto.InventoryStatus
// @Failure      400        {object}  dto.ErrorResponse
// @Failure      500        {object}  dto.ErrorResponse
// @Router       /api/analytics/inventory/low-stock [get]
func (h *Handler) GetLowStockProducts(c *gin.Context) {
	threshold, ok := positiveInt(c, "threshold", h.defaults.Threshold)
	if !ok {
		return
	}
	out, err := h.svc.LowStockProducts(c.Request.Context(), threshold)
	respond(c, "low stock products", out, err)
}
