package domain

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem связывает товар каталога с выбранным количеством. Позиция держит
// живую ссылку на товар, поэтому остаток на момент оформления может
// отличаться от остатка на момент добавления.
type CartItem struct {
	Product  *Product
	Quantity int
}

// Subtotal возвращает стоимость позиции по текущей цене товара.
func (ci *CartItem) Subtotal() decimal.Decimal {
	return ci.Product.Price.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}

// Cart — корзина покупателя: упорядоченный список позиций, не более одной
// позиции на товар. Корзина переживает оформление и используется повторно.
type Cart struct {
	ID   string
	User *User

	items []*CartItem
}

// NewCart создаёт пустую корзину пользователя.
func NewCart(user *User) *Cart {
	return &Cart{
		ID:   uuid.NewString(),
		User: user,
	}
}

// AddItem добавляет товар в корзину. Если позиция уже есть, количество
// увеличивается; при нехватке остатка корзина остаётся без изменений.
// Количество должно быть положительным.
func (c *Cart) AddItem(product *Product, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: product %s, quantity %d", ErrInvalidQuantity, product.ID, quantity)
	}

	for _, item := range c.items {
		if item.Product.ID == product.ID {
			next := item.Quantity + quantity
			if !product.IsAvailable(next) {
				return fmt.Errorf("%w: product %s, requested %d, stock %d", ErrUnavailable, product.ID, next, product.Stock)
			}
			item.Quantity = next
			return nil
		}
	}

	if !product.IsAvailable(quantity) {
		return fmt.Errorf("%w: product %s, requested %d, stock %d", ErrUnavailable, product.ID, quantity, product.Stock)
	}
	c.items = append(c.items, &CartItem{Product: product, Quantity: quantity})
	return nil
}

// RemoveItem удаляет позицию по идентификатору товара.
func (c *Cart) RemoveItem(productID string) error {
	for i, item := range c.items {
		if item.Product.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: product %s is not in the cart", ErrNotFound, productID)
}

// SetQuantity выставляет количество позиции. Допустимый диапазон —
// [1, текущий остаток]; вне его позиция не меняется.
func (c *Cart) SetQuantity(productID string, quantity int) error {
	for _, item := range c.items {
		if item.Product.ID == productID {
			if quantity < 1 || quantity > item.Product.Stock {
				return fmt.Errorf("%w: product %s, quantity %d, stock %d", ErrInvalidQuantity, productID, quantity, item.Product.Stock)
			}
			item.Quantity = quantity
			return nil
		}
	}
	return fmt.Errorf("%w: product %s is not in the cart", ErrNotFound, productID)
}

// Items возвращает копию списка позиций корзины.
func (c *Cart) Items() []*CartItem {
	out := make([]*CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Total считает стоимость корзины заново при каждом вызове, без кеширования.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Clear опустошает корзину.
func (c *Cart) Clear() {
	c.items = nil
}

// Checkout атомарно превращает корзину в заказ: либо создаётся полный заказ
// со списанием остатков по всем позициям, либо ни одна сущность не меняется.
// Успешное оформление очищает корзину и добавляет заказ в историю пользователя.
func (c *Cart) Checkout(paymentMethod string) (*Order, error) {
	if len(c.items) == 0 {
		return nil, ErrEmptyCart
	}

	// Остатки могли измениться после добавления позиций, поэтому каждая
	// позиция проверяется повторно до первого списания.
	for _, item := range c.items {
		if !item.Product.IsAvailable(item.Quantity) {
			return nil, fmt.Errorf("%w: product %s, requested %d, stock %d", ErrUnavailable, item.Product.ID, item.Quantity, item.Product.Stock)
		}
	}

	order := NewOrder(c.User, c.User.Address, paymentMethod)
	for _, item := range c.items {
		order.appendItem(item.Product, item.Quantity)
		if err := item.Product.AdjustStock(-item.Quantity); err != nil {
			// Доступность всех позиций проверена выше; в однопоточной модели
			// списание здесь провалиться не может.
			panic(fmt.Sprintf("stock debit failed after validation: product %s: %v", item.Product.ID, err))
		}
	}

	c.Clear()
	c.User.AppendOrder(order)
	return order, nil
}
