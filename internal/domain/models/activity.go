package models

import "time"

// Activity types recorded by the storefront. Only ActivityView carries
// special meaning for the analytics (most viewed products).
const (
	ActivityView      = "VIEW"
	ActivityPurchase  = "PURCHASE"
	ActivityAddToCart = "ADD_TO_CART"
	ActivitySearch    = "SEARCH"
)

// UserActivity represents a single tracked user interaction.
//
// ProductID is nil for activities not tied to a product (e.g., searches).
type UserActivity struct {
	ID           int64
	UserID       int64
	ActivityType string
	ProductID    *int64
	Timestamp    time.Time
	IPAddress    string
	UserAgent    string
}
