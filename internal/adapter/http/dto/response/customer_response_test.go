package response

import (
	"testing"
	"time"

	"salesdesk/internal/domain/entities"
)

func TestFromCustomer(t *testing.T) {
	now := time.Now().UTC()
	c := entities.Customer{
		ID:          "cus-1",
		Name:        "Marina",
		LastName:    "Souza",
		Email:       "marina.souza@acme.com",
		CompanyName: "Acme Corp",
		Industry:    "Technology",
		CreatedAt:   now,
	}

	res := FromCustomer(c)
	if res.ID != "cus-1" || res.Name != "Marina" || res.LastName != "Souza" {
		t.Fatalf("unexpected identity fields: %+v", res)
	}
	if res.Email != "marina.souza@acme.com" || res.CompanyName != "Acme Corp" || res.Industry != "Technology" {
		t.Fatalf("unexpected company fields: %+v", res)
	}
	if !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected created_at: %+v", res)
	}
}

func TestFromCustomerWithOrders(t *testing.T) {
	c := entities.Customer{ID: "cus-1", Name: "Marina"}
	orders := []entities.Order{
		{ID: "ord-1", CustomerID: "cus-1", Status: entities.OrderStatusDraft, TotalAmount: 100},
		{ID: "ord-2", CustomerID: "cus-1", Status: entities.OrderStatusConfirmed, TotalAmount: 250},
	}

	res := FromCustomerWithOrders(c, orders)
	if res.ID != "cus-1" {
		t.Fatalf("unexpected customer: %+v", res)
	}
	if len(res.Orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(res.Orders))
	}
	if res.Orders[1].Status != "confirmed" || res.Orders[1].TotalAmount != 250 {
		t.Fatalf("unexpected order mapping: %+v", res.Orders[1])
	}

	empty := FromCustomerWithOrders(c, nil)
	if empty.Orders == nil || len(empty.Orders) != 0 {
		t.Fatalf("expected empty non-nil orders, got %+v", empty.Orders)
	}
}

func TestFromCustomerDelete(t *testing.T) {
	c := entities.Customer{ID: "cus-1", Name: "Marina", LastName: "Souza"}

	res := FromCustomerDelete(c)
	if res.ID != "cus-1" {
		t.Fatalf("unexpected id: %+v", res)
	}
	if res.Message != "Customer Marina Souza deleted successfully" {
		t.Fatalf("unexpected message: %q", res.Message)
	}
}
