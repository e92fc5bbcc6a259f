package response

import (
	"encoding/json"
	"testing"
	"time"

	"salesdesk/internal/domain/entities"
	"salesdesk/internal/usecase"
)

func TestFromOrder(t *testing.T) {
	now := time.Now().UTC()
	o := entities.Order{
		ID:          "ord-1",
		CustomerID:  "cus-1",
		Status:      entities.OrderStatusConfirmed,
		TotalAmount: 33000,
		CreatedAt:   now,
	}

	res := FromOrder(o)
	if res.ID != "ord-1" || res.CustomerID != "cus-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Status != "confirmed" || res.TotalAmount != 33000 || !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
}

func TestFromOrderDetails(t *testing.T) {
	now := time.Now().UTC()
	d := usecase.OrderDetails{
		Order: entities.Order{
			ID:          "ord-1",
			CustomerID:  "cus-1",
			Status:      entities.OrderStatusDraft,
			TotalAmount: 18000,
			CreatedAt:   now,
		},
		Customer: entities.Customer{ID: "cus-1", Name: "Marina", CompanyName: "Acme Corp"},
		Items: []usecase.OrderItemDetail{
			{
				Item:    entities.OrderItem{ID: "itm-1", OrderID: "ord-1", ProductID: "prd-1", UnitPrice: 18000, CreatedAt: now},
				Product: entities.Product{ID: "prd-1", Name: "Internal Audit Services", ServiceLine: "Audit", Price: 19000},
			},
		},
	}

	res := FromOrderDetails(d)
	if res.ID != "ord-1" || res.Status != "draft" || res.TotalAmount != 18000 {
		t.Fatalf("unexpected order fields: %+v", res)
	}
	if res.Customer.ID != "cus-1" || res.Customer.CompanyName != "Acme Corp" {
		t.Fatalf("unexpected customer: %+v", res.Customer)
	}
	if len(res.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(res.Items))
	}
	item := res.Items[0]
	if item.ID != "itm-1" || item.ProductID != "prd-1" {
		t.Fatalf("unexpected item ids: %+v", item)
	}
	// The item keeps its frozen price even when the catalog price moved on.
	if item.UnitPrice != 18000 || item.Product.Price != 19000 {
		t.Fatalf("unexpected prices: %+v", item)
	}
	if item.Product.Name != "Internal Audit Services" {
		t.Fatalf("unexpected embedded product: %+v", item.Product)
	}
}

func TestOrderDetailsResponse_FlatJSON(t *testing.T) {
	d := usecase.OrderDetails{
		Order:    entities.Order{ID: "ord-1", CustomerID: "cus-1", Status: entities.OrderStatusDraft},
		Customer: entities.Customer{ID: "cus-1"},
	}

	raw, err := json.Marshal(FromOrderDetails(d))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Embedded order fields must sit at the top level, not under a nested key.
	if decoded["id"] != "ord-1" || decoded["status"] != "draft" {
		t.Fatalf("expected flattened order fields, got %v", decoded)
	}
	if _, ok := decoded["customer"]; !ok {
		t.Fatalf("expected customer key, got %v", decoded)
	}
	if items, ok := decoded["items"].([]interface{}); !ok || len(items) != 0 {
		t.Fatalf("expected empty items array, got %v", decoded["items"])
	}
}
