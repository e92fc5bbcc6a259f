package entities

import "time"

// Product is a professional service offered in the catalog (the business calls
// these "services"; ServiceLine is the practice area, e.g. Audit, Tax,
// Consulting).
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (name-index): name
//
// Monetary representation:
//   - Price is the current list price. Orders copy it into their items at
//     creation time, so changing Price never rewrites sold engagements.
//
// Products are never hard-deleted while order history references them; they are
// deactivated instead (IsActive=false) and stop being orderable.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ServiceLine string    `json:"service_line"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}
