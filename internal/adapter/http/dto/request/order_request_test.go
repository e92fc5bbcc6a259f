package request

import (
	"reflect"
	"testing"
)

func TestCreateOrderRequest_ResolveProductIDs(t *testing.T) {
	r := CreateOrderRequest{
		CustomerID: "cus-1",
		Items: []OrderItemRequest{
			{ProductID: " prd-1 "},
			{ProductID: "prd-2"},
		},
	}
	got := r.ResolveProductIDs()
	want := []string{"prd-1", "prd-2"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	r2 := CreateOrderRequest{CustomerID: "cus-1"}
	if got := r2.ResolveProductIDs(); len(got) != 0 {
		t.Fatalf("expected empty, got %v", got)
	}
}

func TestUpdateOrderRequest_ResolveProductIDs(t *testing.T) {
	r := UpdateOrderRequest{
		Items: []OrderItemRequest{{ProductID: "prd-9 "}},
	}
	got := r.ResolveProductIDs()
	if len(got) != 1 || got[0] != "prd-9" {
		t.Fatalf("expected [prd-9], got %v", got)
	}
}
