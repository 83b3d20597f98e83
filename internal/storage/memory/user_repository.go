package memory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// userRepositoryInMemory — in-memory реализация UserRepository. Хранилище
// держит указатели: корзины и заказы ссылаются на те же живые сущности.
type userRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[string]*domain.User
}

// NewUserRepository возвращает in-memory хранилище учётных записей.
func NewUserRepository() domain.UserRepository {
	return &userRepositoryInMemory{
		items: make(map[string]*domain.User),
	}
}

// Add сохраняет нового пользователя, если ID ещё не занят.
func (r *userRepositoryInMemory) Add(user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[user.ID]; exists {
		return fmt.Errorf("%w: user %s", domain.ErrAlreadyExists, user.ID)
	}
	r.items[user.ID] = user
	return nil
}

// Get возвращает пользователя или ErrNotFound.
func (r *userRepositoryInMemory) Get(id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: user %s", domain.ErrNotFound, id)
	}
	return user, nil
}

// GetByEmail ищет пользователя по адресу почты.
func (r *userRepositoryInMemory) GetByEmail(email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.items {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, fmt.Errorf("%w: user with email %s", domain.ErrNotFound, email)
}

// List возвращает всех пользователей, отсортированных по имени и ID.
func (r *userRepositoryInMemory) List() []*domain.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.User, 0, len(r.items))
	for _, user := range r.items {
		result = append(result, user)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Username != result[j].Username {
			return result[i].Username < result[j].Username
		}
		return result[i].ID < result[j].ID
	})

	return result
}

var _ domain.UserRepository = (*userRepositoryInMemory)(nil)
