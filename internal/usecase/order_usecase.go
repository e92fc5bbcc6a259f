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
	"golang.org/x/sync/errgroup"
)

var (
	ErrOrderNotFound            = errors.New("order not found")
	ErrInvalidOrderID           = errors.New("invalid order id")
	ErrOrderNoItems             = errors.New("order needs at least one item")
	ErrOrderProductInactive     = errors.New("order references an inactive product")
	ErrOrderNotEditable         = errors.New("only draft orders can have items modified")
	ErrOrderNotDeletable        = errors.New("only draft orders can be deleted")
	ErrInvalidOrderStatus       = errors.New("invalid order status")
	ErrInvalidStatusTransition  = errors.New("invalid status transition")
	ErrOrderHasInactiveProducts = errors.New("order holds inactive products")
)

// UpdateOrderInput carries a partial order update. A nil Status leaves the
// lifecycle untouched; an empty ProductIDs slice leaves the item set untouched
// (matching the panel's PATCH contract).
type UpdateOrderInput struct {
	Status     *entities.OrderStatus
	ProductIDs []string
}

// OrderItemDetail pairs a frozen item with the catalog product it sold.
type OrderItemDetail struct {
	Item    entities.OrderItem
	Product entities.Product
}

// OrderDetails is the fully hydrated read model for a single order.
type OrderDetails struct {
	Order    entities.Order
	Customer entities.Customer
	Items    []OrderItemDetail
}

// IOrderUseCase exposes engagement (order) operations.
//
// Lifecycle rules:
//   - orders are born draft; draft -> confirmed -> completed, strictly stepwise
//   - prices are frozen from the catalog when items are written
//   - item edits and deletion are draft-only
//   - confirming is refused while any item's product is inactive
type IOrderUseCase interface {
	Create(ctx context.Context, customerID string, productIDs []string) (entities.Order, error)
	List(ctx context.Context, f interfaces.OrderListFilter) ([]entities.Order, error)
	GetWithDetails(ctx context.Context, id string) (OrderDetails, error)
	Update(ctx context.Context, id string, in UpdateOrderInput) (entities.Order, error)
	Delete(ctx context.Context, id string) error
}

type OrderUseCase struct {
	repo         interfaces.IOrderRepository
	customerRepo interfaces.ICustomerRepository
	productRepo  interfaces.IProductRepository
	log          *zap.Logger
	metrics      *metrics.Registry
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, customerRepo interfaces.ICustomerRepository, productRepo interfaces.IProductRepository, log *zap.Logger, m *metrics.Registry) *OrderUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &OrderUseCase{repo: repo, customerRepo: customerRepo, productRepo: productRepo, log: log, metrics: m}
}

func (u *OrderUseCase) Create(ctx context.Context, customerID string, productIDs []string) (entities.Order, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return entities.Order{}, ErrInvalidCustomerID
	}
	if len(productIDs) == 0 {
		return entities.Order{}, ErrOrderNoItems
	}

	customer, err := u.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return entities.Order{}, err
	}
	if customer.ID == "" {
		return entities.Order{}, ErrCustomerNotFound
	}

	products, total, err := u.resolveOrderProducts(ctx, productIDs)
	if err != nil {
		return entities.Order{}, err
	}

	now := time.Now().UTC()
	order := entities.Order{
		ID:          uuid.NewString(),
		CustomerID:  customer.ID,
		Status:      entities.OrderStatusDraft,
		TotalAmount: total,
		CreatedAt:   now,
	}
	items := make([]entities.OrderItem, 0, len(products))
	for _, p := range products {
		items = append(items, entities.OrderItem{
			ID:        uuid.NewString(),
			OrderID:   order.ID,
			ProductID: p.ID,
			UnitPrice: p.Price,
			CreatedAt: now,
		})
	}

	created, err := u.repo.CreateWithItems(ctx, order, items)
	if err != nil {
		return entities.Order{}, err
	}
	if u.metrics != nil {
		u.metrics.OrdersCreated.Inc()
	}
	u.log.Info("order created",
		zap.String("order_id", created.ID),
		zap.String("customer_id", created.CustomerID),
		zap.Int("items", len(items)),
		zap.Float64("total", created.TotalAmount))
	return created, nil
}

// resolveOrderProducts loads and validates every product an order wants to
// sell, returning them with the summed frozen total. Prices come from the
// catalog rows, never from the caller.
func (u *OrderUseCase) resolveOrderProducts(ctx context.Context, productIDs []string) ([]entities.Product, float64, error) {
	products := make([]entities.Product, 0, len(productIDs))
	total := 0.0
	for _, raw := range productIDs {
		id := strings.TrimSpace(raw)
		if id == "" {
			return nil, 0, ErrInvalidProductID
		}
		p, err := u.productRepo.GetByID(ctx, id)
		if err != nil {
			return nil, 0, err
		}
		if p.ID == "" {
			return nil, 0, ErrProductNotFound
		}
		if !p.IsActive {
			return nil, 0, ErrOrderProductInactive
		}
		products = append(products, p)
		total += p.Price
	}
	return products, total, nil
}

func (u *OrderUseCase) List(ctx context.Context, f interfaces.OrderListFilter) ([]entities.Order, error) {
	if f.Skip < 0 {
		f.Skip = 0
	}
	if f.Limit < 0 {
		f.Limit = 0
	}
	if f.Status != "" && !f.Status.Valid() {
		return nil, ErrInvalidOrderStatus
	}
	f.CustomerID = strings.TrimSpace(f.CustomerID)
	return u.repo.List(ctx, f)
}

func (u *OrderUseCase) GetWithDetails(ctx context.Context, id string) (OrderDetails, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return OrderDetails{}, ErrInvalidOrderID
	}

	order, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return OrderDetails{}, err
	}
	if order.ID == "" {
		return OrderDetails{}, ErrOrderNotFound
	}

	var (
		customer entities.Customer
		items    []entities.OrderItem
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		customer, err = u.customerRepo.GetByID(gctx, order.CustomerID)
		return err
	})
	g.Go(func() error {
		var err error
		items, err = u.repo.ListItemsByOrderID(gctx, order.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return OrderDetails{}, err
	}
	if customer.ID == "" {
		return OrderDetails{}, ErrCustomerNotFound
	}

	productByID := make(map[string]entities.Product, len(items))
	details := make([]OrderItemDetail, 0, len(items))
	for _, it := range items {
		p, ok := productByID[it.ProductID]
		if !ok {
			p, err = u.productRepo.GetByID(ctx, it.ProductID)
			if err != nil {
				return OrderDetails{}, err
			}
			productByID[it.ProductID] = p
		}
		details = append(details, OrderItemDetail{Item: it, Product: p})
	}

	return OrderDetails{Order: order, Customer: customer, Items: details}, nil
}

func (u *OrderUseCase) Update(ctx context.Context, id string, in UpdateOrderInput) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	order, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}

	if len(in.ProductIDs) > 0 {
		if order.Status != entities.OrderStatusDraft {
			return entities.Order{}, ErrOrderNotEditable
		}
		order, err = u.replaceItems(ctx, order, in.ProductIDs)
		if err != nil {
			return entities.Order{}, err
		}
	}

	if in.Status != nil {
		order, err = u.transition(ctx, order, *in.Status)
		if err != nil {
			return entities.Order{}, err
		}
	}
	return order, nil
}

func (u *OrderUseCase) replaceItems(ctx context.Context, order entities.Order, productIDs []string) (entities.Order, error) {
	products, total, err := u.resolveOrderProducts(ctx, productIDs)
	if err != nil {
		return entities.Order{}, err
	}

	now := time.Now().UTC()
	items := make([]entities.OrderItem, 0, len(products))
	for _, p := range products {
		items = append(items, entities.OrderItem{
			ID:        uuid.NewString(),
			OrderID:   order.ID,
			ProductID: p.ID,
			UnitPrice: p.Price,
			CreatedAt: now,
		})
	}

	updated, err := u.repo.ReplaceItems(ctx, order.ID, items, total)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	u.log.Info("order items replaced",
		zap.String("order_id", order.ID),
		zap.Int("items", len(items)),
		zap.Float64("total", total))
	return updated, nil
}

func (u *OrderUseCase) transition(ctx context.Context, order entities.Order, next entities.OrderStatus) (entities.Order, error) {
	if !next.Valid() {
		return entities.Order{}, ErrInvalidOrderStatus
	}
	if !order.Status.CanTransitionTo(next) {
		return entities.Order{}, ErrInvalidStatusTransition
	}

	if order.Status == entities.OrderStatusDraft && next == entities.OrderStatusConfirmed {
		if err := u.ensureItemProductsActive(ctx, order.ID); err != nil {
			return entities.Order{}, err
		}
	}

	updated, err := u.repo.UpdateStatus(ctx, order.ID, order.Status, next)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		// Compare-and-swap failed: the order vanished or raced another
		// transition.
		current, err := u.repo.GetByID(ctx, order.ID)
		if err != nil {
			return entities.Order{}, err
		}
		if current.ID == "" {
			return entities.Order{}, ErrOrderNotFound
		}
		return entities.Order{}, ErrInvalidStatusTransition
	}

	if u.metrics != nil {
		u.metrics.OrderTransitions.WithLabelValues(string(next)).Inc()
	}
	u.log.Info("order status changed",
		zap.String("order_id", updated.ID),
		zap.String("from", string(order.Status)),
		zap.String("to", string(next)))
	return updated, nil
}

func (u *OrderUseCase) ensureItemProductsActive(ctx context.Context, orderID string) error {
	items, err := u.repo.ListItemsByOrderID(ctx, orderID)
	if err != nil {
		return err
	}
	checked := make(map[string]bool, len(items))
	for _, it := range items {
		if checked[it.ProductID] {
			continue
		}
		checked[it.ProductID] = true
		p, err := u.productRepo.GetByID(ctx, it.ProductID)
		if err != nil {
			return err
		}
		if p.ID == "" || !p.IsActive {
			return ErrOrderHasInactiveProducts
		}
	}
	return nil
}

func (u *OrderUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidOrderID
	}

	order, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order.ID == "" {
		return ErrOrderNotFound
	}
	if order.Status != entities.OrderStatusDraft {
		return ErrOrderNotDeletable
	}

	if err := u.repo.DeleteWithItems(ctx, order.ID); err != nil {
		return err
	}
	u.log.Info("draft order deleted", zap.String("order_id", order.ID))
	return nil
}
