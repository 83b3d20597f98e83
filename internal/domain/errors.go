package domain

import "errors"

var (
	// ErrInsufficientStock возвращается, когда списание сделало бы остаток отрицательным.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrUnavailable возвращается, когда запрошенное количество превышает текущий остаток.
	ErrUnavailable = errors.New("product unavailable in requested quantity")
	// ErrNotFound возвращается, когда сущность или позиция не найдена.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists возвращается при попытке сохранить сущность с занятым идентификатором.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidQuantity возвращается при количестве вне допустимого диапазона.
	ErrInvalidQuantity = errors.New("invalid quantity")
	// ErrEmptyCart возвращается при оформлении пустой корзины.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrEmptyOrder возвращается при размещении заказа без позиций.
	ErrEmptyOrder = errors.New("order has no items")
	// ErrIllegalTransition возвращается при недопустимом переходе статуса заказа.
	ErrIllegalTransition = errors.New("illegal status transition")
)

// IsNotFound проверяет, является ли ошибка отсутствием сущности.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
