package memory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// orderRepositoryInMemory — in-memory реализация OrderRepository.
type orderRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[string]*domain.Order
}

// NewOrderRepository возвращает in-memory хранилище заказов.
func NewOrderRepository() domain.OrderRepository {
	return &orderRepositoryInMemory{
		items: make(map[string]*domain.Order),
	}
}

// Add сохраняет новый заказ, если ID ещё не занят.
func (r *orderRepositoryInMemory) Add(order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[order.ID]; exists {
		return fmt.Errorf("%w: order %s", domain.ErrAlreadyExists, order.ID)
	}
	r.items[order.ID] = order
	return nil
}

// Get возвращает заказ или ErrNotFound.
func (r *orderRepositoryInMemory) Get(id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: order %s", domain.ErrNotFound, id)
	}
	return order, nil
}

// ListByUser возвращает заказы пользователя, свежие первыми.
func (r *orderRepositoryInMemory) ListByUser(userID string) []*domain.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Order, 0, len(r.items))
	for _, order := range r.items {
		if order.User == nil || order.User.ID != userID {
			continue
		}
		result = append(result, order)
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})

	return result
}

var _ domain.OrderRepository = (*orderRepositoryInMemory)(nil)
