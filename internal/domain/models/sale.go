package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleStatusCompleted is the status assigned to sales when none is recorded.
const SaleStatusCompleted = "COMPLETED"

// Sale represents a single row of the sales table.
//
// Fields:
//   - ProductID: reference to the product sold (products.id).
//   - Quantity: number of units sold, never negative.
//   - TotalAmount: amount charged for the sale, fixed-point with two decimals.
//   - SaleDate: moment the sale happened; providers only return sales inside the queried window.
//   - CustomerID: buyer reference, zero when unknown.
//   - Status: free-form status tag (e.g., "COMPLETED").
type Sale struct {
	ID          int64
	ProductID   int64
	Quantity    int64
	TotalAmount decimal.Decimal
	SaleDate    time.Time
	CustomerID  int64
	Status      string
}
