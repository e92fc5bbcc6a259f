package interfaces

import (
	"context"

	"salesdesk/internal/domain/entities"
)

// CustomerListFilter narrows and pages customer listings. Search matches
// name, last name, company name, or email (case-insensitive contains).
// Limit <= 0 means no cap.
type CustomerListFilter struct {
	Search string
	Skip   int
	Limit  int
}

// ICustomerRepository abstracts DynamoDB persistence for Customer.
//
// The panel must be able to:
//   - create/update customers with a unique-email guard (email-index lookup)
//   - list with search + skip/limit pagination
//   - delete customers that have no orders
type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	GetByEmail(ctx context.Context, email string) (entities.Customer, error)
	List(ctx context.Context, f CustomerListFilter) ([]entities.Customer, error)
	Update(ctx context.Context, c entities.Customer) (entities.Customer, error)
	Delete(ctx context.Context, id string) error
}
