package cart_test

import (
	"errors"
	"io"
	"testing"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/service/cart"
	"github.com/vladislavdragonenkov/storefront/internal/storage/memory"
)

func testLogger() *log.Entry {
	logger := log.New()
	logger.SetOutput(io.Discard)
	return logger.WithField("component", "test")
}

func newFixture() (*cart.Service, domain.OrderRepository, *domain.User, *domain.Product) {
	orders := memory.NewOrderRepository()
	svc := cart.NewServiceWithoutMetrics(orders, testLogger())
	user := domain.NewUser("ivan", "ivan@example.com", "secret", "Main st. 1", "")
	product := domain.NewProduct("Keyboard", "", decimal.NewFromInt(100), 10, "electronics")
	return svc, orders, user, product
}

func TestCart_GetOrCreate(t *testing.T) {
	svc, _, user, _ := newFixture()

	first := svc.Cart(user)
	second := svc.Cart(user)
	if first != second {
		t.Fatal("expected the same cart for the same user")
	}

	other := domain.NewUser("olga", "olga@example.com", "secret", "", "")
	if svc.Cart(other) == first {
		t.Fatal("expected a separate cart per user")
	}
}

func TestCheckout_PersistsOrder(t *testing.T) {
	svc, orders, user, product := newFixture()

	if err := svc.AddItem(user, product, 3); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if !svc.Total(user).Equal(decimal.NewFromInt(300)) {
		t.Fatalf("expected total 300, got %s", svc.Total(user))
	}

	order, err := svc.Checkout(user, "card")
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	stored, err := orders.Get(order.ID)
	if err != nil {
		t.Fatalf("order not persisted: %v", err)
	}
	if stored != order {
		t.Fatal("expected the same order instance")
	}
	if product.Stock != 7 {
		t.Fatalf("expected stock 7, got %d", product.Stock)
	}
	if len(svc.Cart(user).Items()) != 0 {
		t.Fatal("expected cart cleared after checkout")
	}
}

func TestCheckout_EmptyCart(t *testing.T) {
	svc, _, user, _ := newFixture()

	if _, err := svc.Checkout(user, ""); !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestCheckout_UnavailableLeavesEverythingIntact(t *testing.T) {
	svc, _, user, product := newFixture()

	if err := svc.AddItem(user, product, 6); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := product.AdjustStock(-5); err != nil {
		t.Fatalf("adjust failed: %v", err)
	}

	if _, err := svc.Checkout(user, ""); !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if product.Stock != 5 {
		t.Fatalf("expected stock untouched at 5, got %d", product.Stock)
	}
	if len(svc.Cart(user).Items()) != 1 {
		t.Fatal("expected cart untouched")
	}
	if len(user.Orders()) != 0 {
		t.Fatal("expected no order in history")
	}
}

func TestCancelOrder(t *testing.T) {
	svc, _, user, product := newFixture()

	if err := svc.AddItem(user, product, 4); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	order, err := svc.Checkout(user, "")
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if err := svc.CancelOrder(order.ID); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if product.Stock != 10 {
		t.Fatalf("expected stock restored to 10, got %d", product.Stock)
	}

	if err := svc.CancelOrder(order.ID); !errors.Is(err, domain.ErrIllegalTransition) {
		t.Fatalf("expected ErrIllegalTransition, got %v", err)
	}
	if err := svc.CancelOrder("missing"); !domain.IsNotFound(err) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRemoveAndSetQuantity(t *testing.T) {
	svc, _, user, product := newFixture()

	if err := svc.AddItem(user, product, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.SetQuantity(user, product.ID, 5); err != nil {
		t.Fatalf("set quantity failed: %v", err)
	}
	if svc.Cart(user).Items()[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", svc.Cart(user).Items()[0].Quantity)
	}
	if err := svc.RemoveItem(user, product.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if err := svc.RemoveItem(user, product.ID); !domain.IsNotFound(err) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
