package analytics

import (
	"sort"

	"github.com/guttosm/shoppulse/internal/domain/dto"
	"github.com/guttosm/shoppulse/internal/domain/models"
)

// Stock classification thresholds (exclusive upper bounds).
const (
	LowStockBelow    = 20
	MediumStockBelow = 50
)

// StockStatusFor classifies a stock quantity.
func StockStatusFor(quantity int) dto.StockStatus {
	switch {
	case quantity < LowStockBelow:
		return dto.StockLow
	case quantity < MediumStockBelow:
		return dto.StockMedium
	default:
		return dto.StockAdequate
	}
}

// ClassifyInventory returns the stock status of every product, in input order.
func ClassifyInventory(products []models.Product) []dto.InventoryStatus {
	out := make([]dto.InventoryStatus, 0, len(products))
	for _, p := range products {
		out = append(out, inventoryRow(p, StockStatusFor(p.StockQuantity)))
	}
	return out
}

// FilterLowStock keeps products with StockQuantity < threshold, ordered by
// stock ascending.
//
// Every returned row is tagged LOW, even when StockStatusFor would say
// MEDIUM (e.g., stock 30 with threshold 50). Dashboards built on this
// endpoint rely on that tag, so it is kept as is.
func FilterLowStock(products []models.Product, threshold int) []dto.InventoryStatus {
	selected := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.StockQuantity < threshold {
			selected = append(selected, p)
		}
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].StockQuantity < selected[j].StockQuantity
	})

	out := make([]dto.InventoryStatus, 0, len(selected))
	for _, p := range selected {
		out = append(out, inventoryRow(p, dto.StockLow))
	}
	return out
}

func inventoryRow(p models.Product, status dto.StockStatus) dto.InventoryStatus {
	return dto.InventoryStatus{
		ProductID:     p.ID,
		ProductName:   p.Name,
		Category:      p.Category,
		StockQuantity: p.StockQuantity,
		Status:        status,
	}
}
