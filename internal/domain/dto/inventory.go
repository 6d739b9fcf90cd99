package dto

// StockStatus classifies a product stock level.
type StockStatus string

const (
	StockLow      StockStatus = "LOW"
	StockMedium   StockStatus = "MEDIUM"
	StockAdequate StockStatus = "ADEQUATE"
)

// InventoryStatus is the stock view of a single product.
type InventoryStatus struct {
	ProductID     int64       `json:"productId" example:"1"`
	ProductName   string      `json:"productName" example:"Office Chair"`
	Category      string      `json:"category" example:"Furniture"`
	StockQuantity int         `json:"stockQuantity" example:"15"`
	Status        StockStatus `json:"status" example:"LOW"`
}
