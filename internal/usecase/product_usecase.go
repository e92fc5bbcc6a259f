package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"salesdesk/internal/domain/entities"
	"salesdesk/internal/infrastructure/metrics"
	"salesdesk/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrProductNotFound     = errors.New("product not found")
	ErrProductNameTaken    = errors.New("product name already in use")
	ErrInvalidProductID    = errors.New("invalid product id")
	ErrInvalidProduct      = errors.New("invalid product input")
	ErrInvalidProductPrice = errors.New("invalid product price")
)

// Outcome of Delete: either the row is gone or it degraded to a deactivation
// because order history references the product.
const (
	ProductDeleteActionDeleted     = "deleted"
	ProductDeleteActionDeactivated = "deactivated"
)

// UpdateProductInput carries a partial catalog update; nil fields are left
// untouched.
type UpdateProductInput struct {
	Name        *string
	ServiceLine *string
	Description *string
	Price       *float64
	IsActive    *bool
}

// IProductUseCase exposes service-catalog operations.
//
// Deactivating a product (via Update or the Delete fallback) also cleans up
// draft orders: items selling the product are removed, totals recomputed, and
// draft orders left empty are deleted. Confirmed and completed engagements keep
// their frozen history.
type IProductUseCase interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	List(ctx context.Context, f interfaces.ProductListFilter) ([]entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	Update(ctx context.Context, id string, in UpdateProductInput) (entities.Product, error)
	Delete(ctx context.Context, id string) (entities.Product, string, error)
}

type ProductUseCase struct {
	repo      interfaces.IProductRepository
	orderRepo interfaces.IOrderRepository
	log       *zap.Logger
	metrics   *metrics.Registry
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(repo interfaces.IProductRepository, orderRepo interfaces.IOrderRepository, log *zap.Logger, m *metrics.Registry) *ProductUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &ProductUseCase{repo: repo, orderRepo: orderRepo, log: log, metrics: m}
}

func (u *ProductUseCase) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.ServiceLine = strings.TrimSpace(p.ServiceLine)
	p.Description = strings.TrimSpace(p.Description)
	if p.Name == "" || p.ServiceLine == "" {
		return entities.Product{}, ErrInvalidProduct
	}
	if p.Price <= 0 {
		return entities.Product{}, ErrInvalidProductPrice
	}

	existing, err := u.repo.GetByName(ctx, p.Name)
	if err != nil {
		return entities.Product{}, err
	}
	if existing.ID != "" {
		return entities.Product{}, ErrProductNameTaken
	}

	p.ID = uuid.NewString()
	p.CreatedAt = time.Now().UTC()

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Product{}, err
	}
	u.log.Info("product created",
		zap.String("product_id", created.ID),
		zap.String("service_line", created.ServiceLine))
	return created, nil
}

func (u *ProductUseCase) List(ctx context.Context, f interfaces.ProductListFilter) ([]entities.Product, error) {
	if f.Skip < 0 {
		f.Skip = 0
	}
	if f.Limit < 0 {
		f.Limit = 0
	}
	f.Search = strings.TrimSpace(f.Search)
	f.ServiceLine = strings.TrimSpace(f.ServiceLine)
	return u.repo.List(ctx, f)
}

func (u *ProductUseCase) GetByID(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *ProductUseCase) Update(ctx context.Context, id string, in UpdateProductInput) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return entities.Product{}, ErrInvalidProduct
		}
		if name != p.Name {
			existing, err := u.repo.GetByName(ctx, name)
			if err != nil {
				return entities.Product{}, err
			}
			if existing.ID != "" && existing.ID != p.ID {
				return entities.Product{}, ErrProductNameTaken
			}
		}
		p.Name = name
	}
	if in.ServiceLine != nil {
		line := strings.TrimSpace(*in.ServiceLine)
		if line == "" {
			return entities.Product{}, ErrInvalidProduct
		}
		p.ServiceLine = line
	}
	if in.Description != nil {
		p.Description = strings.TrimSpace(*in.Description)
	}
	if in.Price != nil {
		if *in.Price <= 0 {
			return entities.Product{}, ErrInvalidProductPrice
		}
		p.Price = *in.Price
	}

	deactivating := in.IsActive != nil && !*in.IsActive && p.IsActive
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}

	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		return entities.Product{}, err
	}
	if updated.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}

	if deactivating {
		if u.metrics != nil {
			u.metrics.ProductsDeactivated.Inc()
		}
		if err := u.cleanupDraftOrders(ctx, updated.ID); err != nil {
			return entities.Product{}, err
		}
	}
	return updated, nil
}

// Delete hard-deletes a product with no order history; otherwise it falls back
// to deactivation so frozen prices on past engagements stay resolvable.
func (u *ProductUseCase) Delete(ctx context.Context, id string) (entities.Product, string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, "", ErrInvalidProductID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, "", err
	}
	if p.ID == "" {
		return entities.Product{}, "", ErrProductNotFound
	}

	items, err := u.orderRepo.ListItemsByProductID(ctx, p.ID)
	if err != nil {
		return entities.Product{}, "", err
	}
	if len(items) == 0 {
		if err := u.repo.Delete(ctx, p.ID); err != nil {
			return entities.Product{}, "", err
		}
		u.log.Info("product deleted", zap.String("product_id", p.ID))
		return p, ProductDeleteActionDeleted, nil
	}

	wasActive := p.IsActive
	p.IsActive = false
	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		return entities.Product{}, "", err
	}
	if updated.ID == "" {
		return entities.Product{}, "", ErrProductNotFound
	}
	if wasActive && u.metrics != nil {
		u.metrics.ProductsDeactivated.Inc()
	}
	u.log.Info("product deactivated instead of deleted",
		zap.String("product_id", p.ID),
		zap.Int("referencing_items", len(items)))

	if err := u.cleanupDraftOrders(ctx, updated.ID); err != nil {
		return entities.Product{}, "", err
	}
	return updated, ProductDeleteActionDeactivated, nil
}

// cleanupDraftOrders removes items selling productID from draft orders,
// recomputing totals, and deletes draft orders emptied by the removal.
func (u *ProductUseCase) cleanupDraftOrders(ctx context.Context, productID string) error {
	items, err := u.orderRepo.ListItemsByProductID(ctx, productID)
	if err != nil {
		return err
	}

	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if seen[it.OrderID] {
			continue
		}
		seen[it.OrderID] = true

		order, err := u.orderRepo.GetByID(ctx, it.OrderID)
		if err != nil {
			return err
		}
		if order.ID == "" || order.Status != entities.OrderStatusDraft {
			continue
		}

		orderItems, err := u.orderRepo.ListItemsByOrderID(ctx, order.ID)
		if err != nil {
			return err
		}
		remaining := make([]entities.OrderItem, 0, len(orderItems))
		total := 0.0
		for _, oi := range orderItems {
			if oi.ProductID == productID {
				continue
			}
			remaining = append(remaining, oi)
			total += oi.UnitPrice
		}

		if len(remaining) == 0 {
			if err := u.orderRepo.DeleteWithItems(ctx, order.ID); err != nil {
				return err
			}
			if u.metrics != nil {
				u.metrics.DraftOrdersCleaned.Inc()
			}
			u.log.Info("draft order removed by product deactivation",
				zap.String("order_id", order.ID),
				zap.String("product_id", productID))
			continue
		}

		if _, err := u.orderRepo.ReplaceItems(ctx, order.ID, remaining, total); err != nil {
			return err
		}
		u.log.Info("draft order trimmed by product deactivation",
			zap.String("order_id", order.ID),
			zap.String("product_id", productID),
			zap.Int("items_left", len(remaining)))
	}
	return nil
}
