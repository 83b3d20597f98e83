package memory_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/storage/memory"
)

func newCatalogProduct(name, category string) *domain.Product {
	return domain.NewProduct(name, "", decimal.NewFromInt(10), 5, category)
}

func TestProductRepository_AddGet(t *testing.T) {
	repo := memory.NewProductRepository()
	product := newCatalogProduct("Keyboard", "electronics")

	if err := repo.Add(product); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	stored, err := repo.Get(product.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored != product {
		t.Fatal("expected the same product instance")
	}

	if _, err := repo.Get("missing"); !domain.IsNotFound(err) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProductRepository_AddDuplicate(t *testing.T) {
	repo := memory.NewProductRepository()
	product := newCatalogProduct("Keyboard", "electronics")

	if err := repo.Add(product); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := repo.Add(product); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestProductRepository_ListByCategory(t *testing.T) {
	repo := memory.NewProductRepository()
	mouse := newCatalogProduct("Mouse", "electronics")
	keyboard := newCatalogProduct("Keyboard", "electronics")
	beans := newCatalogProduct("Beans", "grocery")
	for _, product := range []*domain.Product{mouse, keyboard, beans} {
		if err := repo.Add(product); err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}

	all := repo.List()
	if len(all) != 3 {
		t.Fatalf("expected 3 products, got %d", len(all))
	}
	if all[0] != beans || all[1] != keyboard || all[2] != mouse {
		t.Fatal("expected products sorted by name")
	}

	electronics := repo.ListByCategory("electronics")
	if len(electronics) != 2 {
		t.Fatalf("expected 2 electronics, got %d", len(electronics))
	}
	if electronics[0] != keyboard || electronics[1] != mouse {
		t.Fatal("expected category listing sorted by name")
	}

	if got := repo.ListByCategory("missing"); len(got) != 0 {
		t.Fatalf("expected empty category, got %d", len(got))
	}
}

func TestProductRepository_SharedInstance(t *testing.T) {
	repo := memory.NewProductRepository()
	product := newCatalogProduct("Keyboard", "electronics")
	if err := repo.Add(product); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	// Хранилище отдаёт живую ссылку: списание видно всем держателям.
	stored, err := repo.Get(product.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if err := stored.AdjustStock(-2); err != nil {
		t.Fatalf("adjust failed: %v", err)
	}
	if product.Stock != 3 {
		t.Fatalf("expected shared stock 3, got %d", product.Stock)
	}
}
