package seed

import (
	"testing"
	"time"

	"salesdesk/internal/domain/entities"

	"github.com/google/go-cmp/cmp"
)

func TestBuildPlan_Deterministic(t *testing.T) {
	a := BuildPlan(7, 2026)
	b := BuildPlan(7, 2026)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("same seed produced different plans (-a +b):\n%s", diff)
	}

	c := BuildPlan(8, 2026)
	if diff := cmp.Diff(a, c); diff == "" {
		t.Fatalf("different seeds produced identical plans")
	}
}

func TestBuildPlan_Shape(t *testing.T) {
	plan := BuildPlan(42, 2026)

	if len(plan.Customers) != 8 {
		t.Fatalf("expected 8 customers, got %d", len(plan.Customers))
	}
	if len(plan.Products) != 11 {
		t.Fatalf("expected 11 products, got %d", len(plan.Products))
	}
	if len(plan.Orders) < 36 || len(plan.Orders) > 120 {
		t.Fatalf("expected 3..10 orders for each of 12 months, got %d total", len(plan.Orders))
	}

	perMonth := map[time.Month]int{}
	for _, po := range plan.Orders {
		perMonth[po.Order.CreatedAt.Month()]++
	}
	for m := time.January; m <= time.December; m++ {
		if perMonth[m] < 3 || perMonth[m] > 10 {
			t.Fatalf("month %s has %d orders, want 3..10", m, perMonth[m])
		}
	}
}

func TestBuildPlan_Invariants(t *testing.T) {
	plan := BuildPlan(42, 2026)

	customerIDs := map[string]bool{}
	for _, c := range plan.Customers {
		customerIDs[c.ID] = true
		if c.Email == "" || c.Industry == "" || c.CompanyName == "" {
			t.Fatalf("incomplete customer: %+v", c)
		}
	}
	productPrices := map[string]float64{}
	for _, p := range plan.Products {
		productPrices[p.ID] = p.Price
		if !p.IsActive {
			t.Fatalf("seeded product should be active: %+v", p)
		}
	}

	for _, po := range plan.Orders {
		o := po.Order
		if !o.Status.Valid() {
			t.Fatalf("invalid status: %+v", o)
		}
		if !customerIDs[o.CustomerID] {
			t.Fatalf("order references unknown customer: %+v", o)
		}
		if o.CreatedAt.Year() != 2026 {
			t.Fatalf("order outside seed year: %+v", o)
		}
		if h := o.CreatedAt.Hour(); h < 9 || h > 17 {
			t.Fatalf("order outside business hours: %+v", o)
		}
		if len(po.Items) < 1 || len(po.Items) > 3 {
			t.Fatalf("expected 1..3 items, got %d", len(po.Items))
		}

		total := 0.0
		for _, it := range po.Items {
			if it.OrderID != o.ID {
				t.Fatalf("item not linked to order: %+v", it)
			}
			if !it.CreatedAt.Equal(o.CreatedAt) {
				t.Fatalf("item timestamp differs from order: %+v", it)
			}
			price, ok := productPrices[it.ProductID]
			if !ok {
				t.Fatalf("item references unknown product: %+v", it)
			}
			if it.UnitPrice != price {
				t.Fatalf("item price not frozen from catalog: %+v", it)
			}
			total += it.UnitPrice
		}
		if o.TotalAmount != total {
			t.Fatalf("total %v != item sum %v for order %s", o.TotalAmount, total, o.ID)
		}
	}
}

func TestBuildPlan_StatusMix(t *testing.T) {
	plan := BuildPlan(42, 2026)

	counts := map[entities.OrderStatus]int{}
	for _, po := range plan.Orders {
		counts[po.Order.Status]++
	}
	// 5/3/2 weighting over at least 36 orders leaves every status populated.
	for _, s := range []entities.OrderStatus{entities.OrderStatusDraft, entities.OrderStatusConfirmed, entities.OrderStatusCompleted} {
		if counts[s] == 0 {
			t.Fatalf("status %s never generated: %+v", s, counts)
		}
	}
	if counts[entities.OrderStatusConfirmed] <= counts[entities.OrderStatusDraft] {
		t.Fatalf("expected confirmed to outnumber draft: %+v", counts)
	}
}
