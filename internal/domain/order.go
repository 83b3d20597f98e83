package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus описывает жизненный цикл заказа.
type OrderStatus string

const (
	// OrderStatusNew — заказ только что создан оформлением корзины.
	OrderStatusNew OrderStatus = "new"
	// OrderStatusProcessing — заказ размещён и взят в обработку.
	OrderStatusProcessing OrderStatus = "processing"
	// OrderStatusShipped — заказ передан в доставку.
	OrderStatusShipped OrderStatus = "shipped"
	// OrderStatusDelivered — заказ получен покупателем.
	OrderStatusDelivered OrderStatus = "delivered"
	// OrderStatusCancelled — заказ отменён до отправки; остатки возвращены на склад.
	OrderStatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) String() string {
	return string(s)
}

// allowedTransitions задаёт статусную машину заказа: статус движется только
// вперёд, отмена возможна лишь до отправки. Delivered и Cancelled терминальны.
var allowedTransitions = map[OrderStatus]map[OrderStatus]bool{
	OrderStatusNew: {
		OrderStatusProcessing: true,
		OrderStatusCancelled:  true,
	},
	OrderStatusProcessing: {
		OrderStatusShipped:   true,
		OrderStatusCancelled: true,
	},
	OrderStatusShipped: {
		OrderStatusDelivered: true,
	},
	OrderStatusDelivered: {},
	OrderStatusCancelled: {},
}

// DefaultPaymentMethod подставляется, когда способ оплаты не указан.
const DefaultPaymentMethod = "cash on delivery"

// OrderItem — позиция заказа. Price — снимок цены за единицу в момент
// оформления; последующие изменения каталога на него не влияют.
type OrderItem struct {
	Product  *Product
	Quantity int
	Price    decimal.Decimal
}

// Subtotal возвращает стоимость позиции по зафиксированной цене.
func (oi *OrderItem) Subtotal() decimal.Decimal {
	return oi.Price.Mul(decimal.NewFromInt(int64(oi.Quantity)))
}

// Order — заказ с зафиксированными ценами позиций и статусной машиной.
// Адрес доставки копируется из профиля в момент создания и дальше живёт
// своей жизнью.
type Order struct {
	ID              string
	User            *User
	CreatedAt       time.Time
	Status          OrderStatus
	ShippingAddress string
	PaymentMethod   string

	items []*OrderItem
	total decimal.Decimal
}

// NewOrder создаёт пустой заказ в статусе New.
func NewOrder(user *User, shippingAddress, paymentMethod string) *Order {
	if paymentMethod == "" {
		paymentMethod = DefaultPaymentMethod
	}
	return &Order{
		ID:              uuid.NewString(),
		User:            user,
		CreatedAt:       time.Now().UTC(),
		Status:          OrderStatusNew,
		ShippingAddress: shippingAddress,
		PaymentMethod:   paymentMethod,
		total:           decimal.Zero,
	}
}

func (o *Order) transition(next OrderStatus) error {
	if !allowedTransitions[o.Status][next] {
		return fmt.Errorf("%w: order %s, %s -> %s", ErrIllegalTransition, o.ID, o.Status, next)
	}
	o.Status = next
	return nil
}

func (o *Order) appendItem(product *Product, quantity int) {
	o.items = append(o.items, &OrderItem{
		Product:  product,
		Quantity: quantity,
		Price:    product.Price,
	})
	o.recalcTotal()
}

func (o *Order) recalcTotal() {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	o.total = total
}

// AddProduct добавляет позицию в заказ (административная правка) со снимком
// текущей цены товара и пересчитывает сумму.
func (o *Order) AddProduct(product *Product, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: product %s, quantity %d", ErrInvalidQuantity, product.ID, quantity)
	}
	o.appendItem(product, quantity)
	return nil
}

// RemoveProduct удаляет позицию из заказа и пересчитывает сумму.
func (o *Order) RemoveProduct(productID string) error {
	for i, item := range o.items {
		if item.Product.ID == productID {
			o.items = append(o.items[:i], o.items[i+1:]...)
			o.recalcTotal()
			return nil
		}
	}
	return fmt.Errorf("%w: product %s is not in order %s", ErrNotFound, productID, o.ID)
}

// Items возвращает копию списка позиций заказа.
func (o *Order) Items() []*OrderItem {
	out := make([]*OrderItem, len(o.items))
	copy(out, o.items)
	return out
}

// Total возвращает сумму заказа; она пересчитывается после каждой правки позиций.
func (o *Order) Total() decimal.Decimal {
	return o.total
}

// Place переводит заказ из New в Processing. Заказ без позиций разместить нельзя.
func (o *Order) Place() error {
	if len(o.items) == 0 {
		return fmt.Errorf("%w: order %s", ErrEmptyOrder, o.ID)
	}
	return o.transition(OrderStatusProcessing)
}

// Ship переводит заказ из Processing в Shipped.
func (o *Order) Ship() error {
	return o.transition(OrderStatusShipped)
}

// Deliver переводит заказ из Shipped в Delivered.
func (o *Order) Deliver() error {
	return o.transition(OrderStatusDelivered)
}

// Cancel отменяет заказ и возвращает все позиции на склад. Из Shipped,
// Delivered и Cancelled отмена запрещена, поэтому повторный вызов не приводит
// к двойному возврату остатков.
func (o *Order) Cancel() error {
	if !allowedTransitions[o.Status][OrderStatusCancelled] {
		return fmt.Errorf("%w: order %s, %s -> %s", ErrIllegalTransition, o.ID, o.Status, OrderStatusCancelled)
	}
	for _, item := range o.items {
		if err := item.Product.AdjustStock(item.Quantity); err != nil {
			// Возврат положительного количества не может опустить остаток ниже нуля.
			panic(fmt.Sprintf("stock credit failed: product %s: %v", item.Product.ID, err))
		}
	}
	o.Status = OrderStatusCancelled
	return nil
}
