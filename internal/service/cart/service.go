package cart

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/metrics"
)

// Service владеет корзинами покупателей и оркестрирует оформление: доменная
// корзина отвечает за атомарность, сервис — за сохранение заказа и метрики.
type Service struct {
	orders  domain.OrderRepository
	logger  *log.Entry
	metrics *metrics.StoreMetrics

	mu    sync.Mutex
	carts map[string]*domain.Cart
}

// NewService создаёт сервис корзин с метриками.
func NewService(orders domain.OrderRepository, logger *log.Entry) *Service {
	svc := NewServiceWithoutMetrics(orders, logger)
	svc.metrics = metrics.NewStoreMetrics()
	return svc
}

// NewServiceWithoutMetrics создаёт сервис корзин без метрик (для тестов).
func NewServiceWithoutMetrics(orders domain.OrderRepository, logger *log.Entry) *Service {
	if logger == nil {
		logger = log.New().WithField("component", "cart")
	}
	return &Service{
		orders: orders,
		logger: logger,
		carts:  make(map[string]*domain.Cart),
	}
}

// Cart возвращает корзину пользователя, создавая её при первом обращении.
// Корзина переживает оформление и используется повторно.
func (s *Service) Cart(user *domain.User) *domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cart, ok := s.carts[user.ID]; ok {
		return cart
	}
	cart := domain.NewCart(user)
	s.carts[user.ID] = cart
	if s.metrics != nil {
		s.metrics.RecordCartOpened()
	}
	return cart
}

// AddItem добавляет товар в корзину пользователя.
func (s *Service) AddItem(user *domain.User, product *domain.Product, quantity int) error {
	if err := s.Cart(user).AddItem(product, quantity); err != nil {
		s.logger.WithError(err).WithFields(log.Fields{
			"user_id":    user.ID,
			"product_id": product.ID,
		}).Warn("add to cart rejected")
		return err
	}
	return nil
}

// RemoveItem удаляет позицию из корзины пользователя.
func (s *Service) RemoveItem(user *domain.User, productID string) error {
	return s.Cart(user).RemoveItem(productID)
}

// SetQuantity выставляет количество позиции в корзине пользователя.
func (s *Service) SetQuantity(user *domain.User, productID string, quantity int) error {
	return s.Cart(user).SetQuantity(productID, quantity)
}

// Total возвращает текущую стоимость корзины пользователя.
func (s *Service) Total(user *domain.User) decimal.Decimal {
	return s.Cart(user).Total()
}

// Checkout оформляет корзину пользователя в заказ и сохраняет его.
func (s *Service) Checkout(user *domain.User, paymentMethod string) (*domain.Order, error) {
	start := time.Now()

	order, err := s.Cart(user).Checkout(paymentMethod)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordCheckoutFailed()
		}
		s.logger.WithError(err).WithField("user_id", user.ID).Warn("checkout rejected")
		return nil, err
	}

	if err := s.orders.Add(order); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.RecordCheckoutCompleted()
		s.metrics.RecordCheckoutDuration(time.Since(start))
	}
	s.logger.WithFields(log.Fields{
		"user_id":  user.ID,
		"order_id": order.ID,
		"total":    order.Total().String(),
	}).Info("checkout completed")
	return order, nil
}

// Order возвращает сохранённый заказ по идентификатору.
func (s *Service) Order(orderID string) (*domain.Order, error) {
	return s.orders.Get(orderID)
}

// CancelOrder отменяет заказ с возвратом остатков на склад.
func (s *Service) CancelOrder(orderID string) error {
	order, err := s.orders.Get(orderID)
	if err != nil {
		return err
	}

	if err := order.Cancel(); err != nil {
		s.logger.WithError(err).WithField("order_id", orderID).Warn("cancel rejected")
		return err
	}

	if s.metrics != nil {
		s.metrics.RecordOrderCanceled()
	}
	s.logger.WithField("order_id", orderID).Info("order canceled, stock credited")
	return nil
}
