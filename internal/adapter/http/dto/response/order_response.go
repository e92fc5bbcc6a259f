package response

import (
	"time"

	"salesdesk/internal/domain/entities"
	"salesdesk/internal/usecase"
)

type OrderResponse struct {
	ID          string    `json:"id"`
	CustomerID  string    `json:"customer_id"`
	Status      string    `json:"status"`
	TotalAmount float64   `json:"total_amount"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:          o.ID,
		CustomerID:  o.CustomerID,
		Status:      string(o.Status),
		TotalAmount: o.TotalAmount,
		CreatedAt:   o.CreatedAt,
	}
}

func FromOrders(list []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, FromOrder(o))
	}
	return out
}

// OrderItemResponse embeds the full product so the panel can render an order
// without extra catalog lookups.
type OrderItemResponse struct {
	ID        string          `json:"id"`
	OrderID   string          `json:"order_id"`
	ProductID string          `json:"product_id"`
	UnitPrice float64         `json:"unit_price"`
	CreatedAt time.Time       `json:"created_at"`
	Product   ProductResponse `json:"product"`
}

type OrderDetailsResponse struct {
	OrderResponse
	Customer CustomerResponse    `json:"customer"`
	Items    []OrderItemResponse `json:"items"`
}

func FromOrderDetails(d usecase.OrderDetails) OrderDetailsResponse {
	items := make([]OrderItemResponse, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, OrderItemResponse{
			ID:        it.Item.ID,
			OrderID:   it.Item.OrderID,
			ProductID: it.Item.ProductID,
			UnitPrice: it.Item.UnitPrice,
			CreatedAt: it.Item.CreatedAt,
			Product:   FromProduct(it.Product),
		})
	}
	return OrderDetailsResponse{
		OrderResponse: FromOrder(d.Order),
		Customer:      FromCustomer(d.Customer),
		Items:         items,
	}
}
