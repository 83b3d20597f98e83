package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	minRating = 1
	maxRating = 5
)

func clampRating(rating int) int {
	if rating < minRating {
		return minRating
	}
	if rating > maxRating {
		return maxRating
	}
	return rating
}

// Review — отзыв пользователя о товаре. Отзыв держит обратную ссылку на
// товар и числится в его списке отзывов, пока не будет отвязан.
type Review struct {
	ID        string
	User      *User
	Product   *Product
	Rating    int
	Comment   string
	CreatedAt time.Time
}

// NewReview создаёт отзыв и регистрирует его в списке отзывов товара.
// Рейтинг вне диапазона [1, 5] молча приводится к ближайшей границе.
func NewReview(user *User, product *Product, rating int, comment string) *Review {
	review := &Review{
		ID:        uuid.NewString(),
		User:      user,
		Product:   product,
		Rating:    clampRating(rating),
		Comment:   comment,
		CreatedAt: time.Now().UTC(),
	}
	product.attachReview(review)
	return review
}

// Update меняет только переданные поля: nil означает «оставить как есть».
// Новый рейтинг также приводится к диапазону [1, 5].
func (r *Review) Update(rating *int, comment *string) {
	if rating != nil {
		r.Rating = clampRating(*rating)
	}
	if comment != nil {
		r.Comment = *comment
	}
}

// Detach убирает отзыв из списка отзывов товара. Повторная попытка
// возвращает ErrNotFound.
func (r *Review) Detach() error {
	if !r.Product.detachReview(r.ID) {
		return fmt.Errorf("%w: review %s is not attached to product %s", ErrNotFound, r.ID, r.Product.ID)
	}
	return nil
}
