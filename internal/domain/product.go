package domain

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product описывает товар каталога: цену, складской остаток и метаданные.
// Остаток никогда не фиксируется отрицательным.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	Category    string

	reviews []*Review
}

// NewProduct создаёт товар с новым идентификатором.
func NewProduct(name, description string, price decimal.Decimal, stock int, category string) *Product {
	return &Product{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
		Category:    category,
	}
}

// AdjustStock пытается изменить остаток на delta: отрицательная дельта —
// списание при размещении заказа, положительная — возврат при отмене.
// Изменение фиксируется, только если результат неотрицателен; иначе остаток
// остаётся прежним.
func (p *Product) AdjustStock(delta int) error {
	next := p.Stock + delta
	if next < 0 {
		return fmt.Errorf("%w: product %s, stock %d, delta %d", ErrInsufficientStock, p.ID, p.Stock, delta)
	}
	p.Stock = next
	return nil
}

// IsAvailable сообщает, покрывает ли текущий остаток запрошенное количество.
func (p *Product) IsAvailable(quantity int) bool {
	return p.Stock >= quantity
}

// Reviews возвращает копию списка отзывов о товаре.
func (p *Product) Reviews() []*Review {
	out := make([]*Review, len(p.reviews))
	copy(out, p.reviews)
	return out
}

func (p *Product) attachReview(review *Review) {
	p.reviews = append(p.reviews, review)
}

func (p *Product) detachReview(id string) bool {
	for i, review := range p.reviews {
		if review.ID == id {
			p.reviews = append(p.reviews[:i], p.reviews[i+1:]...)
			return true
		}
	}
	return false
}
