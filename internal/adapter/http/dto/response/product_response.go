package response

import (
	"fmt"
	"time"

	"salesdesk/internal/domain/entities"
)

type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ServiceLine string    `json:"service_line"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		ServiceLine: p.ServiceLine,
		Description: p.Description,
		Price:       p.Price,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
	}
}

func FromProducts(list []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromProduct(p))
	}
	return out
}

// ProductDeleteResponse reports which path the delete took: "deleted" for a
// hard delete, "deactivated" when order history forced the soft fallback.
type ProductDeleteResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
	Action  string `json:"action"`
}

func FromProductDelete(p entities.Product, action string) ProductDeleteResponse {
	return ProductDeleteResponse{
		Message: fmt.Sprintf("Product %s %s successfully", p.Name, action),
		ID:      p.ID,
		Action:  action,
	}
}
