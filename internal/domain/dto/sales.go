package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are rendered as JSON numbers, matching the dashboard contract.
	decimal.MarshalJSONWithoutQuotes = true
}

// DateLayout is the calendar-date format used on the wire.
const DateLayout = "2006-01-02"

// Date is a calendar date encoded as "YYYY-MM-DD".
type Date struct {
	time.Time
}

// NewDate truncates t to its calendar date, keeping t's location.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, t.Location())}
}

// String returns the date in DateLayout.
func (d Date) String() string {
	return d.Format(DateLayout)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// CategorySales is the revenue of one product category in a window.
//
// ProductCount is the number of distinct products sold in the category.
type CategorySales struct {
	Category     string          `json:"category" example:"Electronics"`
	TotalSales   decimal.Decimal `json:"totalSales" swaggertype:"number" example:"2599.98"`
	ProductCount *int64          `json:"productCount,omitempty" example:"3"`
}

// RankedProduct is one entry of a product ranking (by quantity sold or by views).
//
// PercentageOfTotal is the share (0-100) of the whole ranked population,
// not of the returned slice.
type RankedProduct struct {
	ProductName       string  `json:"productName" example:"Laptop"`
	QuantitySold      int64   `json:"quantitySold" example:"100"`
	PercentageOfTotal float64 `json:"percentageOfTotal" example:"55.5"`
}

// DailySales is the revenue of a single calendar day.
type DailySales struct {
	Date             Date            `json:"date" swaggertype:"string" example:"2024-01-31"`
	TotalSales       decimal.Decimal `json:"totalSales" swaggertype:"number" example:"1234.56"`
	TransactionCount *int64          `json:"transactionCount,omitempty" example:"12"`
}
