package memory_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/storage/memory"
)

func newReviewFixture() (*domain.User, *domain.Product) {
	user := domain.NewUser("ivan", "ivan@example.com", "secret", "", "")
	product := domain.NewProduct("Keyboard", "", decimal.NewFromInt(10), 5, "electronics")
	return user, product
}

func TestReviewRepository_AddGetRemove(t *testing.T) {
	repo := memory.NewReviewRepository()
	user, product := newReviewFixture()
	review := domain.NewReview(user, product, 4, "good")

	if err := repo.Add(review); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	stored, err := repo.Get(review.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored != review {
		t.Fatal("expected the same review instance")
	}

	if err := repo.Remove(review.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if err := repo.Remove(review.ID); !domain.IsNotFound(err) {
		t.Fatalf("expected ErrNotFound on second remove, got %v", err)
	}
	if _, err := repo.Get(review.ID); !domain.IsNotFound(err) {
		t.Fatalf("expected ErrNotFound after remove, got %v", err)
	}
}

func TestReviewRepository_ListByProduct(t *testing.T) {
	repo := memory.NewReviewRepository()
	user, product := newReviewFixture()
	_, other := newReviewFixture()

	first := domain.NewReview(user, product, 5, "great")
	second := domain.NewReview(user, product, 2, "meh")
	foreign := domain.NewReview(user, other, 3, "ok")
	for _, review := range []*domain.Review{first, second, foreign} {
		if err := repo.Add(review); err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}

	reviews := repo.ListByProduct(product.ID)
	if len(reviews) != 2 {
		t.Fatalf("expected 2 reviews, got %d", len(reviews))
	}
	for _, review := range reviews {
		if review.Product != product {
			t.Fatal("expected only reviews of the requested product")
		}
	}
}
