package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"salesdesk/internal/domain/entities"
	"salesdesk/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrCustomerEmailTaken = errors.New("customer email already in use")
	ErrInvalidCustomerID  = errors.New("invalid customer id")
	ErrInvalidCustomer    = errors.New("invalid customer input")
	ErrCustomerHasOrders  = errors.New("customer has associated orders")
)

// UpdateCustomerInput carries a partial customer update; nil fields are left
// untouched.
type UpdateCustomerInput struct {
	Name        *string
	LastName    *string
	Email       *string
	CompanyName *string
	Industry    *string
}

// ICustomerUseCase exposes corporate-client operations.
//
// Deleting is guarded by referential integrity: a customer that owns orders is
// never removed (the caller gets ErrCustomerHasOrders and the panel keeps the
// account).
type ICustomerUseCase interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	List(ctx context.Context, f interfaces.CustomerListFilter) ([]entities.Customer, error)
	GetWithOrders(ctx context.Context, id string) (entities.Customer, []entities.Order, error)
	Update(ctx context.Context, id string, in UpdateCustomerInput) (entities.Customer, error)
	Delete(ctx context.Context, id string) (entities.Customer, error)
}

type CustomerUseCase struct {
	repo      interfaces.ICustomerRepository
	orderRepo interfaces.IOrderRepository
	log       *zap.Logger
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository, orderRepo interfaces.IOrderRepository, log *zap.Logger) *CustomerUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &CustomerUseCase{repo: repo, orderRepo: orderRepo, log: log}
}

func (u *CustomerUseCase) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.LastName = strings.TrimSpace(c.LastName)
	c.Email = strings.TrimSpace(strings.ToLower(c.Email))
	c.CompanyName = strings.TrimSpace(c.CompanyName)
	c.Industry = strings.TrimSpace(c.Industry)
	if c.Name == "" || c.LastName == "" || c.Email == "" || c.CompanyName == "" || c.Industry == "" {
		return entities.Customer{}, ErrInvalidCustomer
	}

	existing, err := u.repo.GetByEmail(ctx, c.Email)
	if err != nil {
		return entities.Customer{}, err
	}
	if existing.ID != "" {
		return entities.Customer{}, ErrCustomerEmailTaken
	}

	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		return entities.Customer{}, err
	}
	u.log.Info("customer created",
		zap.String("customer_id", created.ID),
		zap.String("company", created.CompanyName))
	return created, nil
}

func (u *CustomerUseCase) List(ctx context.Context, f interfaces.CustomerListFilter) ([]entities.Customer, error) {
	if f.Skip < 0 {
		f.Skip = 0
	}
	if f.Limit < 0 {
		f.Limit = 0
	}
	f.Search = strings.TrimSpace(f.Search)
	return u.repo.List(ctx, f)
}

func (u *CustomerUseCase) GetWithOrders(ctx context.Context, id string) (entities.Customer, []entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, nil, ErrInvalidCustomerID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, nil, err
	}
	if c.ID == "" {
		return entities.Customer{}, nil, ErrCustomerNotFound
	}

	orders, err := u.orderRepo.ListByCustomerID(ctx, c.ID)
	if err != nil {
		return entities.Customer{}, nil, err
	}
	return c, orders, nil
}

func (u *CustomerUseCase) Update(ctx context.Context, id string, in UpdateCustomerInput) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}

	if in.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*in.Email))
		if email == "" {
			return entities.Customer{}, ErrInvalidCustomer
		}
		if email != c.Email {
			existing, err := u.repo.GetByEmail(ctx, email)
			if err != nil {
				return entities.Customer{}, err
			}
			if existing.ID != "" && existing.ID != c.ID {
				return entities.Customer{}, ErrCustomerEmailTaken
			}
		}
		c.Email = email
	}
	if err := applyTrimmed(&c.Name, in.Name); err != nil {
		return entities.Customer{}, err
	}
	if err := applyTrimmed(&c.LastName, in.LastName); err != nil {
		return entities.Customer{}, err
	}
	if err := applyTrimmed(&c.CompanyName, in.CompanyName); err != nil {
		return entities.Customer{}, err
	}
	if err := applyTrimmed(&c.Industry, in.Industry); err != nil {
		return entities.Customer{}, err
	}

	updated, err := u.repo.Update(ctx, c)
	if err != nil {
		return entities.Customer{}, err
	}
	if updated.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return updated, nil
}

func (u *CustomerUseCase) Delete(ctx context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}

	orders, err := u.orderRepo.ListByCustomerID(ctx, c.ID)
	if err != nil {
		return entities.Customer{}, err
	}
	if len(orders) > 0 {
		u.log.Info("customer delete rejected",
			zap.String("customer_id", c.ID),
			zap.Int("orders", len(orders)))
		return entities.Customer{}, ErrCustomerHasOrders
	}

	if err := u.repo.Delete(ctx, c.ID); err != nil {
		return entities.Customer{}, err
	}
	u.log.Info("customer deleted", zap.String("customer_id", c.ID))
	return c, nil
}

// applyTrimmed copies a trimmed optional field onto dst, rejecting values that
// trim to empty.
func applyTrimmed(dst *string, src *string) error {
	if src == nil {
		return nil
	}
	v := strings.TrimSpace(*src)
	if v == "" {
		return ErrInvalidCustomer
	}
	*dst = v
	return nil
}
