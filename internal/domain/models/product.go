package models

import "github.com/shopspring/decimal"

// Product represents a catalog entry together with its current stock level.
type Product struct {
	ID            int64
	Name          string
	Category      string
	Price         decimal.Decimal
	StockQuantity int
}

// ProductLookup indexes products by id. Aggregations resolve sale and
// activity product references through it.
type ProductLookup map[int64]Product

// NewProductLookup builds a lookup from a product slice. Later duplicates win.
func NewProductLookup(products []Product) ProductLookup {
	lookup := make(ProductLookup, len(products))
	for _, p := range products {
		lookup[p.ID] = p
	}
	return lookup
}
