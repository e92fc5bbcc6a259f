package interfaces

import (
	"context"

	"salesdesk/internal/domain/entities"
)

// OrderListFilter narrows and pages order listings. Zero Status means any;
// empty CustomerID means any customer. Limit <= 0 means no cap.
type OrderListFilter struct {
	Status     entities.OrderStatus
	CustomerID string
	Skip       int
	Limit      int
}

// IOrderRepository abstracts DynamoDB persistence for the Order aggregate
// (order header + items).
//
// Write paths that touch both header and items (create, item replacement,
// delete) are transactional so total_amount never disagrees with the item set.
// UpdateStatus is a compare-and-swap on the current status: it returns the
// zero Order when the order is gone or the expected status no longer holds.
type IOrderRepository interface {
	CreateWithItems(ctx context.Context, o entities.Order, items []entities.OrderItem) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context, f OrderListFilter) ([]entities.Order, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Order, error)
	ListItemsByOrderID(ctx context.Context, orderID string) ([]entities.OrderItem, error)
	ListItemsByProductID(ctx context.Context, productID string) ([]entities.OrderItem, error)
	ListAllItems(ctx context.Context) ([]entities.OrderItem, error)
	ReplaceItems(ctx context.Context, orderID string, items []entities.OrderItem, totalAmount float64) (entities.Order, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.OrderStatus) (entities.Order, error)
	DeleteWithItems(ctx context.Context, orderID string) error
}
