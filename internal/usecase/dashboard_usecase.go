package usecase

import (
	"context"
	"sort"
	"time"

	"salesdesk/internal/domain/entities"
	"salesdesk/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// IDashboardUseCase computes the analytics payload behind the dashboard.
//
// Month is optional: zero means the whole year. Out-of-range months are not an
// error, they just match no rows. The annual trend series always covers
// Jan..Dec of the requested year and ignores the month filter.
type IDashboardUseCase interface {
	Stats(ctx context.Context, month, year int) (entities.DashboardStats, error)
}

type DashboardUseCase struct {
	orderRepo    interfaces.IOrderRepository
	customerRepo interfaces.ICustomerRepository
	productRepo  interfaces.IProductRepository
	log          *zap.Logger
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(orderRepo interfaces.IOrderRepository, customerRepo interfaces.ICustomerRepository, productRepo interfaces.IProductRepository, log *zap.Logger) *DashboardUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &DashboardUseCase{orderRepo: orderRepo, customerRepo: customerRepo, productRepo: productRepo, log: log}
}

func (u *DashboardUseCase) Stats(ctx context.Context, month, year int) (entities.DashboardStats, error) {
	if year == 0 {
		year = time.Now().UTC().Year()
	}

	var (
		customers []entities.Customer
		products  []entities.Product
		orders    []entities.Order
		items     []entities.OrderItem
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		customers, err = u.customerRepo.List(gctx, interfaces.CustomerListFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		products, err = u.productRepo.List(gctx, interfaces.ProductListFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		orders, err = u.orderRepo.List(gctx, interfaces.OrderListFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		items, err = u.orderRepo.ListAllItems(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return entities.DashboardStats{}, err
	}

	industryByCustomer := make(map[string]string, len(customers))
	for _, c := range customers {
		industryByCustomer[c.ID] = c.Industry
	}
	lineByProduct := make(map[string]string, len(products))
	for _, p := range products {
		lineByProduct[p.ID] = p.ServiceLine
	}

	inWindow := func(t time.Time) bool {
		return t.Year() == year && (month == 0 || int(t.Month()) == month)
	}

	stats := entities.DashboardStats{}
	revenueByIndustry := map[string]float64{}
	shareByIndustry := map[string]int{}
	for _, o := range orders {
		if !inWindow(o.CreatedAt) {
			continue
		}
		stats.KPICards.TotalContractValue += o.TotalAmount
		switch o.Status {
		case entities.OrderStatusConfirmed, entities.OrderStatusCompleted:
			stats.KPICards.ActiveEngagements++
		case entities.OrderStatusDraft:
			stats.KPICards.InactiveEngagements++
		}
		industry, ok := industryByCustomer[o.CustomerID]
		if !ok {
			continue
		}
		revenueByIndustry[industry] += o.TotalAmount
		shareByIndustry[industry]++
	}

	revenueByLine := map[string]float64{}
	shareByLine := map[string]int{}
	trendByLine := make(map[string][12]float64)
	for _, p := range products {
		if _, ok := trendByLine[p.ServiceLine]; !ok {
			trendByLine[p.ServiceLine] = [12]float64{}
		}
	}
	for _, it := range items {
		line, ok := lineByProduct[it.ProductID]
		if !ok {
			continue
		}
		if it.CreatedAt.Year() == year {
			months := trendByLine[line]
			months[int(it.CreatedAt.Month())-1] += it.UnitPrice
			trendByLine[line] = months
		}
		if !inWindow(it.CreatedAt) {
			continue
		}
		revenueByLine[line] += it.UnitPrice
		shareByLine[line]++
	}

	stats.RevenueByIndustry = revenueSeries(revenueByIndustry)
	stats.ShareByIndustry = shareSeries(shareByIndustry)
	stats.RevenueByServiceLine = revenueSeries(revenueByLine)
	stats.ShareByServiceLine = shareSeries(shareByLine)
	stats.AnnualTrends = trendSeries(trendByLine)

	u.log.Debug("dashboard stats computed",
		zap.Int("year", year),
		zap.Int("month", month),
		zap.Int("orders", len(orders)),
		zap.Int("items", len(items)))
	return stats, nil
}

func revenueSeries(byName map[string]float64) []entities.RevenuePoint {
	out := make([]entities.RevenuePoint, 0, len(byName))
	for name, value := range byName {
		out = append(out, entities.RevenuePoint{Name: name, Value: value})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func shareSeries(byName map[string]int) []entities.SharePoint {
	out := make([]entities.SharePoint, 0, len(byName))
	for name, value := range byName {
		out = append(out, entities.SharePoint{Name: name, Value: value})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// trendSeries flattens per-line monthly sums into twelve Jan..Dec rows, every
// known service line present in every row.
func trendSeries(trendByLine map[string][12]float64) []entities.MonthlyTrend {
	lines := make([]string, 0, len(trendByLine))
	for line := range trendByLine {
		lines = append(lines, line)
	}
	sort.Strings(lines)

	out := make([]entities.MonthlyTrend, 0, 12)
	for m := 1; m <= 12; m++ {
		trend := entities.MonthlyTrend{
			Month:         time.Month(m).String()[:3],
			ByServiceLine: make(map[string]float64, len(lines)),
		}
		for _, line := range lines {
			trend.ByServiceLine[line] = trendByLine[line][m-1]
		}
		out = append(out, trend)
	}
	return out
}
