package entities

import "time"

// OrderStatus represents the lifecycle of an order (engagement).
//
// Domain notes:
//   - Transitions are linear and monotonic: draft -> confirmed -> completed.
//   - No skipping and no reverse; completed is terminal.
type OrderStatus string

const (
	OrderStatusDraft     OrderStatus = "draft"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCompleted OrderStatus = "completed"
)

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusDraft, OrderStatusConfirmed, OrderStatusCompleted:
		return true
	}
	return false
}

// CanTransitionTo reports whether moving from s to next is an allowed step.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderStatusDraft:
		return next == OrderStatusConfirmed
	case OrderStatusConfirmed:
		return next == OrderStatusCompleted
	}
	return false
}

// Order is a sales engagement: a set of services sold to one customer.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_id-index): customer_id
//
// TotalAmount always equals the sum of the order's item unit prices; the
// repository writes order and items in one transaction so the invariant never
// observes partial state.
type Order struct {
	ID          string      `json:"id"`
	CustomerID  string      `json:"customer_id"`
	Status      OrderStatus `json:"status"`
	TotalAmount float64     `json:"total_amount"`
	CreatedAt   time.Time   `json:"created_at"`
}

// OrderItem is one engaged service inside an order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
//   - GSI2 (product_id-index): product_id
//
// UnitPrice is frozen from the product at the moment the item is written and
// never tracks later catalog price changes.
type OrderItem struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	ProductID string    `json:"product_id"`
	UnitPrice float64   `json:"unit_price"`
	CreatedAt time.Time `json:"created_at"`
}
