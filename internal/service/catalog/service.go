package catalog

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/metrics"
)

// ErrInvalidProduct возвращается при недопустимых атрибутах товара.
var ErrInvalidProduct = errors.New("invalid product attributes")

// Service управляет каталогом: карточки товаров, цены и складские остатки.
type Service struct {
	products domain.ProductRepository
	logger   *log.Entry
	metrics  *metrics.StoreMetrics
}

// NewService создаёт сервис каталога с метриками склада.
func NewService(products domain.ProductRepository, logger *log.Entry) *Service {
	svc := NewServiceWithoutMetrics(products, logger)
	svc.metrics = metrics.NewStoreMetrics()
	return svc
}

// NewServiceWithoutMetrics создаёт сервис каталога без метрик (для тестов).
func NewServiceWithoutMetrics(products domain.ProductRepository, logger *log.Entry) *Service {
	if logger == nil {
		logger = log.New().WithField("component", "catalog")
	}
	return &Service{
		products: products,
		logger:   logger,
	}
}

// CreateProduct добавляет товар в каталог. Цена и начальный остаток
// должны быть неотрицательными.
func (s *Service) CreateProduct(name, description string, price decimal.Decimal, stock int, category string) (*domain.Product, error) {
	if price.IsNegative() {
		return nil, fmt.Errorf("%w: price %s is negative", ErrInvalidProduct, price)
	}
	if stock < 0 {
		return nil, fmt.Errorf("%w: stock %d is negative", ErrInvalidProduct, stock)
	}

	product := domain.NewProduct(name, description, price, stock, category)
	if err := s.products.Add(product); err != nil {
		return nil, err
	}

	s.logger.WithFields(log.Fields{
		"product_id": product.ID,
		"name":       product.Name,
		"stock":      product.Stock,
	}).Info("product created")
	return product, nil
}

// Product возвращает товар по идентификатору.
func (s *Service) Product(id string) (*domain.Product, error) {
	return s.products.Get(id)
}

// List возвращает весь каталог.
func (s *Service) List() []*domain.Product {
	return s.products.List()
}

// ListByCategory возвращает товары одной категории.
func (s *Service) ListByCategory(category string) []*domain.Product {
	return s.products.ListByCategory(category)
}

// SetPrice меняет цену товара. Исторические заказы хранят снимки цен и
// этой правкой не затрагиваются.
func (s *Service) SetPrice(id string, price decimal.Decimal) error {
	if price.IsNegative() {
		return fmt.Errorf("%w: price %s is negative", ErrInvalidProduct, price)
	}
	product, err := s.products.Get(id)
	if err != nil {
		return err
	}

	product.Price = price
	s.logger.WithFields(log.Fields{
		"product_id": product.ID,
		"price":      price.String(),
	}).Info("price updated")
	return nil
}

// Restock изменяет остаток товара на delta; списание, которое опустило бы
// остаток ниже нуля, отклоняется целиком.
func (s *Service) Restock(id string, delta int) error {
	product, err := s.products.Get(id)
	if err != nil {
		return err
	}

	if err := product.AdjustStock(delta); err != nil {
		if s.metrics != nil {
			s.metrics.RecordStockRejection()
		}
		s.logger.WithError(err).WithField("product_id", product.ID).Warn("stock adjustment rejected")
		return err
	}

	s.logger.WithFields(log.Fields{
		"product_id": product.ID,
		"delta":      delta,
		"stock":      product.Stock,
	}).Info("stock adjusted")
	return nil
}
