package request

import "testing"

func TestCreateProductRequest_ResolveIsActive(t *testing.T) {
	r := CreateProductRequest{Name: "Internal Audit", ServiceLine: "Audit", Price: 100}
	if !r.ResolveIsActive() {
		t.Fatalf("expected default active")
	}

	inactive := false
	r.IsActive = &inactive
	if r.ResolveIsActive() {
		t.Fatalf("expected inactive when payload says so")
	}
}
