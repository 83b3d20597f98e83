package memory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// reviewRepositoryInMemory — in-memory реализация ReviewRepository.
type reviewRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[string]*domain.Review
}

// NewReviewRepository возвращает in-memory хранилище отзывов.
func NewReviewRepository() domain.ReviewRepository {
	return &reviewRepositoryInMemory{
		items: make(map[string]*domain.Review),
	}
}

// Add сохраняет новый отзыв, если ID ещё не занят.
func (r *reviewRepositoryInMemory) Add(review *domain.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[review.ID]; exists {
		return fmt.Errorf("%w: review %s", domain.ErrAlreadyExists, review.ID)
	}
	r.items[review.ID] = review
	return nil
}

// Get возвращает отзыв или ErrNotFound.
func (r *reviewRepositoryInMemory) Get(id string) (*domain.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	review, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: review %s", domain.ErrNotFound, id)
	}
	return review, nil
}

// Remove удаляет отзыв из хранилища; повторное удаление — ErrNotFound.
func (r *reviewRepositoryInMemory) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return fmt.Errorf("%w: review %s", domain.ErrNotFound, id)
	}
	delete(r.items, id)
	return nil
}

// ListByProduct возвращает отзывы о товаре, старые первыми.
func (r *reviewRepositoryInMemory) ListByProduct(productID string) []*domain.Review {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Review, 0, len(r.items))
	for _, review := range r.items {
		if review.Product == nil || review.Product.ID != productID {
			continue
		}
		result = append(result, review)
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		}
		return result[i].ID < result[j].ID
	})

	return result
}

var _ domain.ReviewRepository = (*reviewRepositoryInMemory)(nil)
