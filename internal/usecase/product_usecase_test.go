package usecase

import (
	"context"
	"errors"
	"testing"

	"salesdesk/internal/domain/entities"
	"salesdesk/internal/usecase/interfaces"
	mock_interfaces "salesdesk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestProductUseCase_Create(t *testing.T) {
	valid := entities.Product{
		Name:        "Tax Compliance Review",
		ServiceLine: "Tax",
		Description: "Quarterly compliance review",
		Price:       12500,
		IsActive:    true,
	}

	t.Run("missing name", func(t *testing.T) {
		uc := NewProductUseCase(nil, nil, nil, nil)
		in := valid
		in.Name = "  "
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrInvalidProduct) {
			t.Fatalf("expected ErrInvalidProduct, got %v", err)
		}
	})

	t.Run("missing service line", func(t *testing.T) {
		uc := NewProductUseCase(nil, nil, nil, nil)
		in := valid
		in.ServiceLine = ""
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrInvalidProduct) {
			t.Fatalf("expected ErrInvalidProduct, got %v", err)
		}
	})

	t.Run("non-positive price", func(t *testing.T) {
		uc := NewProductUseCase(nil, nil, nil, nil)
		in := valid
		in.Price = 0
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrInvalidProductPrice) {
			t.Fatalf("expected ErrInvalidProductPrice, got %v", err)
		}
	})

	t.Run("name taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByName(gomock.Any(), "Tax Compliance Review").Return(entities.Product{ID: "other"}, nil)

		_, err := uc.Create(context.Background(), valid)
		if !errors.Is(err, ErrProductNameTaken) {
			t.Fatalf("expected ErrProductNameTaken, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByName(gomock.Any(), "Tax Compliance Review").Return(entities.Product{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Product{})).DoAndReturn(
			func(_ context.Context, p entities.Product) (entities.Product, error) {
				if p.ID == "" || p.CreatedAt.IsZero() {
					t.Fatalf("expected id and created_at, got %+v", p)
				}
				if !p.IsActive {
					t.Fatalf("expected active product")
				}
				return p, nil
			},
		)

		res, err := uc.Create(context.Background(), valid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Name != "Tax Compliance Review" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestProductUseCase_List(t *testing.T) {
	t.Run("normalizes filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo, nil, nil, nil)

		active := true
		repo.EXPECT().List(gomock.Any(), interfaces.ProductListFilter{Search: "tax", ServiceLine: "Tax", IsActive: &active, Skip: 0, Limit: 25}).
			Return([]entities.Product{{ID: "p1"}}, nil)

		res, err := uc.List(context.Background(), interfaces.ProductListFilter{Search: " tax ", ServiceLine: " Tax ", IsActive: &active, Skip: -1, Limit: 25})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestProductUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewProductUseCase(nil, nil, nil, nil)
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidProductID) {
			t.Fatalf("expected ErrInvalidProductID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{}, nil)

		_, err := uc.GetByID(context.Background(), "p1")
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{ID: "p1"}, nil)

		res, err := uc.GetByID(context.Background(), " p1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "p1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestProductUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{}, nil)

		_, err := uc.Update(context.Background(), "p1", UpdateProductInput{})
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("name collides", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{ID: "p1", Name: "Old"}, nil)
		repo.EXPECT().GetByName(gomock.Any(), "New").Return(entities.Product{ID: "p2"}, nil)

		name := "New"
		_, err := uc.Update(context.Background(), "p1", UpdateProductInput{Name: &name})
		if !errors.Is(err, ErrProductNameTaken) {
			t.Fatalf("expected ErrProductNameTaken, got %v", err)
		}
	})

	t.Run("non-positive price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{ID: "p1"}, nil)

		price := -10.0
		_, err := uc.Update(context.Background(), "p1", UpdateProductInput{Price: &price})
		if !errors.Is(err, ErrInvalidProductPrice) {
			t.Fatalf("expected ErrInvalidProductPrice, got %v", err)
		}
	})

	t.Run("plain update keeps activity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo, nil, nil, nil)

		existing := entities.Product{ID: "p1", Name: "Audit", ServiceLine: "Audit", Price: 100, IsActive: true}
		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Product{})).DoAndReturn(
			func(_ context.Context, p entities.Product) (entities.Product, error) {
				if p.Price != 150 || !p.IsActive {
					t.Fatalf("unexpected product: %+v", p)
				}
				return p, nil
			},
		)

		price := 150.0
		res, err := uc.Update(context.Background(), "p1", UpdateProductInput{Price: &price})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Price != 150 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("deactivation cleans draft orders", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewProductUseCase(repo, orderRepo, nil, nil)

		existing := entities.Product{ID: "p1", Name: "Audit", ServiceLine: "Audit", Price: 100, IsActive: true}
		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Product{})).DoAndReturn(
			func(_ context.Context, p entities.Product) (entities.Product, error) {
				if p.IsActive {
					t.Fatalf("expected deactivated product")
				}
				return p, nil
			},
		)

		// p1 sits on a draft order next to another product: the item is
		// dropped and the total recomputed.
		orderRepo.EXPECT().ListItemsByProductID(gomock.Any(), "p1").Return([]entities.OrderItem{
			{ID: "i1", OrderID: "o1", ProductID: "p1", UnitPrice: 100},
		}, nil)
		orderRepo.EXPECT().GetByID(gomock.Any(), "o1").Return(entities.Order{ID: "o1", Status: entities.OrderStatusDraft, TotalAmount: 150}, nil)
		orderRepo.EXPECT().ListItemsByOrderID(gomock.Any(), "o1").Return([]entities.OrderItem{
			{ID: "i1", OrderID: "o1", ProductID: "p1", UnitPrice: 100},
			{ID: "i2", OrderID: "o1", ProductID: "p2", UnitPrice: 50},
		}, nil)
		orderRepo.EXPECT().ReplaceItems(gomock.Any(), "o1", gomock.AssignableToTypeOf([]entities.OrderItem{}), 50.0).DoAndReturn(
			func(_ context.Context, _ string, items []entities.OrderItem, _ float64) (entities.Order, error) {
				if len(items) != 1 || items[0].ProductID != "p2" {
					t.Fatalf("unexpected remaining items: %+v", items)
				}
				return entities.Order{ID: "o1"}, nil
			},
		)

		inactive := false
		res, err := uc.Update(context.Background(), "p1", UpdateProductInput{IsActive: &inactive})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.IsActive {
			t.Fatalf("expected inactive product: %+v", res)
		}
	})

	t.Run("deactivation skips confirmed orders", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewProductUseCase(repo, orderRepo, nil, nil)

		existing := entities.Product{ID: "p1", IsActive: true, Name: "Audit", ServiceLine: "Audit", Price: 100}
		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Product) (entities.Product, error) { return p, nil },
		)
		orderRepo.EXPECT().ListItemsByProductID(gomock.Any(), "p1").Return([]entities.OrderItem{
			{ID: "i1", OrderID: "o1", ProductID: "p1", UnitPrice: 100},
		}, nil)
		orderRepo.EXPECT().GetByID(gomock.Any(), "o1").Return(entities.Order{ID: "o1", Status: entities.OrderStatusConfirmed}, nil)

		inactive := false
		if _, err := uc.Update(context.Background(), "p1", UpdateProductInput{IsActive: &inactive}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestProductUseCase_Delete(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewProductUseCase(nil, nil, nil, nil)
		_, _, err := uc.Delete(context.Background(), "")
		if !errors.Is(err, ErrInvalidProductID) {
			t.Fatalf("expected ErrInvalidProductID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{}, nil)

		_, _, err := uc.Delete(context.Background(), "p1")
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("no history hard deletes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewProductUseCase(repo, orderRepo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{ID: "p1", IsActive: true}, nil)
		orderRepo.EXPECT().ListItemsByProductID(gomock.Any(), "p1").Return(nil, nil)
		repo.EXPECT().Delete(gomock.Any(), "p1").Return(nil)

		_, action, err := uc.Delete(context.Background(), "p1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if action != ProductDeleteActionDeleted {
			t.Fatalf("expected %q, got %q", ProductDeleteActionDeleted, action)
		}
	})

	t.Run("history degrades to deactivation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewProductUseCase(repo, orderRepo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{ID: "p1", IsActive: true}, nil)
		items := []entities.OrderItem{{ID: "i1", OrderID: "o1", ProductID: "p1", UnitPrice: 100}}
		orderRepo.EXPECT().ListItemsByProductID(gomock.Any(), "p1").Return(items, nil).Times(2)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Product{})).DoAndReturn(
			func(_ context.Context, p entities.Product) (entities.Product, error) {
				if p.IsActive {
					t.Fatalf("expected deactivation")
				}
				return p, nil
			},
		)
		// The only draft order holding p1 becomes empty and is removed.
		orderRepo.EXPECT().GetByID(gomock.Any(), "o1").Return(entities.Order{ID: "o1", Status: entities.OrderStatusDraft}, nil)
		orderRepo.EXPECT().ListItemsByOrderID(gomock.Any(), "o1").Return(items, nil)
		orderRepo.EXPECT().DeleteWithItems(gomock.Any(), "o1").Return(nil)

		res, action, err := uc.Delete(context.Background(), "p1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if action != ProductDeleteActionDeactivated {
			t.Fatalf("expected %q, got %q", ProductDeleteActionDeactivated, action)
		}
		if res.IsActive {
			t.Fatalf("expected inactive product: %+v", res)
		}
	})
}
