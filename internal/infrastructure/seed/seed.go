// Package seed fills the panel with a deterministic year of demo data:
// a service catalog, a customer portfolio, and month-by-month engagement
// history shaped for the dashboard charts.
package seed

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"salesdesk/internal/domain/entities"
	"salesdesk/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type serviceSpec struct {
	name        string
	serviceLine string
	price       float64
}

type companySpec struct {
	company  string
	industry string
	contact  string
}

var serviceCatalog = []serviceSpec{
	{"Financial Statement Audit 2026", "Audit", 15000},
	{"Internal Controls Review (SOX)", "Audit", 8500},
	{"Risk Assurance Audit", "Audit", 12000},
	{"Corporate Tax Compliance", "Tax", 5000},
	{"Transfer Pricing Study", "Tax", 18000},
	{"M&A Tax Due Diligence", "Tax", 25000},
	{"International Tax Structuring", "Tax", 30000},
	{"Cybersecurity Assessment", "Consulting", 22000},
	{"Cloud Migration Strategy", "Consulting", 45000},
	{"Data Analytics Implementation", "Consulting", 35000},
	{"ESG Strategy & Reporting", "Consulting", 15000},
}

var companyPortfolio = []companySpec{
	{"Globant", "Technology", "Martin Migoya"},
	{"MercadoLibre", "Technology", "Marcos Galperin"},
	{"Banco Galicia", "Finance", "Fabian Kon"},
	{"YPF", "Energy", "Horacio Marin"},
	{"Tenaris", "Manufacturing", "Paolo Rocca"},
	{"Farmacity", "Retail", "Sebastian Miranda"},
	{"Toyota Argentina", "Automotive", "Gustavo Salinas"},
	{"JP Morgan", "Finance", "Facundo Gomez"},
}

// PlannedOrder couples an order with the items it is created with.
type PlannedOrder struct {
	Order entities.Order
	Items []entities.OrderItem
}

// Plan is everything a seed run will write, resolved up front. Building it is
// pure: the same seed and year produce the same plan, IDs included.
type Plan struct {
	Customers []entities.Customer
	Products  []entities.Product
	Orders    []PlannedOrder
}

// Summary reports what a seed run wrote.
type Summary struct {
	Customers int
	Products  int
	Orders    int
	Items     int
}

// BuildPlan generates the demo dataset for one calendar year: every month
// gets 3 to 10 engagements, rotating through the customer portfolio, each
// selling 1 to 3 catalog services at frozen prices. Status skews toward
// confirmed (5/3/2 confirmed/completed/draft). Dates spread across each month
// (business hours) so the dashboard trends look lived-in.
func BuildPlan(seed int64, year int) Plan {
	rng := rand.New(rand.NewSource(seed))
	catalogDate := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)

	products := make([]entities.Product, 0, len(serviceCatalog))
	for _, svc := range serviceCatalog {
		products = append(products, entities.Product{
			ID:          newID(rng),
			Name:        svc.name,
			ServiceLine: svc.serviceLine,
			Description: "Professional Service Engagement",
			Price:       svc.price,
			IsActive:    true,
			CreatedAt:   catalogDate,
		})
	}

	customers := make([]entities.Customer, 0, len(companyPortfolio))
	for _, comp := range companyPortfolio {
		first, last := splitContact(comp.contact)
		customers = append(customers, entities.Customer{
			ID:          newID(rng),
			Name:        first,
			LastName:    last,
			Email:       contactEmail(comp.company),
			CompanyName: comp.company,
			Industry:    comp.industry,
			CreatedAt:   catalogDate,
		})
	}

	var orders []PlannedOrder
	counter := 0
	for month := 1; month <= 12; month++ {
		numOrders := rng.Intn(8) + 3
		for idx := 0; idx < numOrders; idx++ {
			customer := customers[counter%len(customers)]
			status := weightedStatus(rng)

			day := 7 + idx*3
			if day > 28 {
				day = 28
			}
			hour := 9 + idx%9
			createdAt := time.Date(year, time.Month(month), day, hour, 0, 0, 0, time.UTC)

			numServices := rng.Intn(3) + 1
			start := (counter * 2) % len(products)

			order := entities.Order{
				ID:         newID(rng),
				CustomerID: customer.ID,
				Status:     status,
				CreatedAt:  createdAt,
			}
			items := make([]entities.OrderItem, 0, numServices)
			for k := 0; k < numServices; k++ {
				svc := products[(start+k)%len(products)]
				items = append(items, entities.OrderItem{
					ID:        newID(rng),
					OrderID:   order.ID,
					ProductID: svc.ID,
					UnitPrice: svc.Price,
					CreatedAt: createdAt,
				})
				order.TotalAmount += svc.Price
			}

			orders = append(orders, PlannedOrder{Order: order, Items: items})
			counter++
		}
	}

	return Plan{Customers: customers, Products: products, Orders: orders}
}

// Seeder wipes the store and applies a plan through the repositories, so the
// writes take the same transactional paths as the API.
type Seeder struct {
	customers interfaces.ICustomerRepository
	products  interfaces.IProductRepository
	orders    interfaces.IOrderRepository
	log       *zap.Logger
}

func NewSeeder(customers interfaces.ICustomerRepository, products interfaces.IProductRepository, orders interfaces.IOrderRepository, log *zap.Logger) *Seeder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Seeder{customers: customers, products: products, orders: orders, log: log}
}

func (s *Seeder) Run(ctx context.Context, seed int64, year int) (Summary, error) {
	plan := BuildPlan(seed, year)
	s.log.Info("seed plan built",
		zap.Int64("seed", seed),
		zap.Int("year", year),
		zap.Int("orders", len(plan.Orders)))

	if err := s.wipe(ctx); err != nil {
		return Summary{}, err
	}
	return s.apply(ctx, plan)
}

func (s *Seeder) wipe(ctx context.Context) error {
	orders, err := s.orders.List(ctx, interfaces.OrderListFilter{})
	if err != nil {
		return err
	}
	for _, o := range orders {
		if err := s.orders.DeleteWithItems(ctx, o.ID); err != nil {
			return err
		}
	}

	customers, err := s.customers.List(ctx, interfaces.CustomerListFilter{})
	if err != nil {
		return err
	}
	for _, c := range customers {
		if err := s.customers.Delete(ctx, c.ID); err != nil {
			return err
		}
	}

	products, err := s.products.List(ctx, interfaces.ProductListFilter{})
	if err != nil {
		return err
	}
	for _, p := range products {
		if err := s.products.Delete(ctx, p.ID); err != nil {
			return err
		}
	}

	s.log.Info("store wiped",
		zap.Int("orders", len(orders)),
		zap.Int("customers", len(customers)),
		zap.Int("products", len(products)))
	return nil
}

func (s *Seeder) apply(ctx context.Context, plan Plan) (Summary, error) {
	for _, p := range plan.Products {
		if _, err := s.products.Create(ctx, p); err != nil {
			return Summary{}, err
		}
	}
	for _, c := range plan.Customers {
		if _, err := s.customers.Create(ctx, c); err != nil {
			return Summary{}, err
		}
	}

	items := 0
	for _, po := range plan.Orders {
		if _, err := s.orders.CreateWithItems(ctx, po.Order, po.Items); err != nil {
			return Summary{}, err
		}
		items += len(po.Items)
	}

	sum := Summary{
		Customers: len(plan.Customers),
		Products:  len(plan.Products),
		Orders:    len(plan.Orders),
		Items:     items,
	}
	s.log.Info("seed applied",
		zap.Int("customers", sum.Customers),
		zap.Int("products", sum.Products),
		zap.Int("orders", sum.Orders),
		zap.Int("items", sum.Items))
	return sum, nil
}

func weightedStatus(rng *rand.Rand) entities.OrderStatus {
	switch n := rng.Intn(10); {
	case n < 5:
		return entities.OrderStatusConfirmed
	case n < 8:
		return entities.OrderStatusCompleted
	default:
		return entities.OrderStatusDraft
	}
}

func newID(rng *rand.Rand) string {
	return uuid.Must(uuid.NewRandomFromReader(rng)).String()
}

func splitContact(contact string) (string, string) {
	parts := strings.Fields(contact)
	if len(parts) < 2 {
		return contact, ""
	}
	return parts[0], parts[1]
}

func contactEmail(company string) string {
	return "contact@" + strings.ToLower(strings.ReplaceAll(company, " ", "")) + ".com"
}
