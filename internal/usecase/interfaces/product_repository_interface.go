package interfaces

import (
	"context"

	"salesdesk/internal/domain/entities"
)

// ProductListFilter narrows and pages catalog listings. Search matches the
// product name (case-insensitive contains); ServiceLine is an exact match;
// IsActive filters by activation state when non-nil. Limit <= 0 means no cap.
type ProductListFilter struct {
	Search      string
	ServiceLine string
	IsActive    *bool
	Skip        int
	Limit       int
}

// IProductRepository abstracts DynamoDB persistence for Product.
type IProductRepository interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	GetByName(ctx context.Context, name string) (entities.Product, error)
	List(ctx context.Context, f ProductListFilter) ([]entities.Product, error)
	Update(ctx context.Context, p entities.Product) (entities.Product, error)
	Delete(ctx context.Context, id string) error
}
