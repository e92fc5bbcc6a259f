package request

import "strings"

type OrderItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

type CreateOrderRequest struct {
	CustomerID string             `json:"customer_id" binding:"required"`
	Items      []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (r CreateOrderRequest) ResolveProductIDs() []string {
	return resolveProductIDs(r.Items)
}

// UpdateOrderRequest is a partial update: a nil Status leaves the status
// untouched, absent Items keep the current item set. When Items is present it
// replaces the whole set.
type UpdateOrderRequest struct {
	Status *string            `json:"status" binding:"omitempty,oneof=draft confirmed completed"`
	Items  []OrderItemRequest `json:"items" binding:"omitempty,min=1,dive"`
}

func (r UpdateOrderRequest) ResolveProductIDs() []string {
	return resolveProductIDs(r.Items)
}

func resolveProductIDs(items []OrderItemRequest) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, strings.TrimSpace(item.ProductID))
	}
	return ids
}

type ListOrdersQuery struct {
	Skip       int    `form:"skip,default=0"`
	Limit      int    `form:"limit,default=10"`
	Status     string `form:"status"`
	CustomerID string `form:"customer_id"`
}

func (q ListOrdersQuery) ResolveLimit() int {
	return capLimit(q.Limit)
}
