package memory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// productRepositoryInMemory — in-memory реализация ProductRepository.
// Хранятся указатели: позиции корзин и заказов разделяют товар со складом.
type productRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[string]*domain.Product
}

// NewProductRepository возвращает in-memory хранилище каталога.
func NewProductRepository() domain.ProductRepository {
	return &productRepositoryInMemory{
		items: make(map[string]*domain.Product),
	}
}

// Add сохраняет новый товар, если ID ещё не занят.
func (r *productRepositoryInMemory) Add(product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[product.ID]; exists {
		return fmt.Errorf("%w: product %s", domain.ErrAlreadyExists, product.ID)
	}
	r.items[product.ID] = product
	return nil
}

// Get возвращает товар или ErrNotFound.
func (r *productRepositoryInMemory) Get(id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: product %s", domain.ErrNotFound, id)
	}
	return product, nil
}

// List возвращает весь каталог, отсортированный по названию и ID.
func (r *productRepositoryInMemory) List() []*domain.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Product, 0, len(r.items))
	for _, product := range r.items {
		result = append(result, product)
	}
	sortProducts(result)
	return result
}

// ListByCategory возвращает товары категории в том же порядке, что и List.
func (r *productRepositoryInMemory) ListByCategory(category string) []*domain.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Product, 0, len(r.items))
	for _, product := range r.items {
		if product.Category == category {
			result = append(result, product)
		}
	}
	sortProducts(result)
	return result
}

func sortProducts(products []*domain.Product) {
	sort.Slice(products, func(i, j int) bool {
		if products[i].Name != products[j].Name {
			return products[i].Name < products[j].Name
		}
		return products[i].ID < products[j].ID
	})
}

var _ domain.ProductRepository = (*productRepositoryInMemory)(nil)
