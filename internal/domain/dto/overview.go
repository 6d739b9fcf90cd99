package dto

import "github.com/shopspring/decimal"

// Overview backs the dashboard stat cards for a window.
type Overview struct {
	StartDate     Date            `json:"startDate" swaggertype:"string" example:"2024-01-01"`
	EndDate       Date            `json:"endDate" swaggertype:"string" example:"2024-01-31"`
	TotalSales    decimal.Decimal `json:"totalSales" swaggertype:"number" example:"15000.00"`
	UniqueUsers   int64           `json:"uniqueUsers" example:"250"`
	LowStockCount int             `json:"lowStockCount" example:"4"`
	TopCategory   *CategorySales  `json:"topCategory,omitempty"`
}
