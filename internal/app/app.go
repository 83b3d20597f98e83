package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	healthcheck "github.com/vladislavdragonenkov/storefront/internal/health"
	"github.com/vladislavdragonenkov/storefront/internal/service/account"
	"github.com/vladislavdragonenkov/storefront/internal/service/cart"
	"github.com/vladislavdragonenkov/storefront/internal/service/catalog"
	"github.com/vladislavdragonenkov/storefront/internal/service/review"
	"github.com/vladislavdragonenkov/storefront/internal/storage/memory"
	"github.com/vladislavdragonenkov/storefront/internal/version"
)

// Config описывает минимальные настройки запуска приложения.
type Config struct {
	// MetricsAddr — адрес HTTP-сервера наблюдаемости (/metrics, /healthz).
	MetricsAddr string
	// SeedCatalog включает наполнение каталога демо-товарами на старте.
	SeedCatalog bool
}

// DefaultConfig возвращает базовые настройки.
func DefaultConfig() Config {
	return Config{
		MetricsAddr: ":9090",
		SeedCatalog: true,
	}
}

// Storefront — композиция торгового ядра: хранилища и сервисы поверх них.
// Это программный интерфейс, который потребляет внешний слой представления.
type Storefront struct {
	Users    domain.UserRepository
	Products domain.ProductRepository
	Orders   domain.OrderRepository
	Reviews  domain.ReviewRepository

	Accounts *account.Service
	Catalog  *catalog.Service
	Carts    *cart.Service
	Feedback *review.Service
}

// NewStorefront собирает все хранилища и сервисы торгового ядра.
func NewStorefront(logger *log.Entry) *Storefront {
	if logger == nil {
		logger = log.New().WithField("component", "app")
	}

	users := memory.NewUserRepository()
	products := memory.NewProductRepository()
	orders := memory.NewOrderRepository()
	reviews := memory.NewReviewRepository()

	return &Storefront{
		Users:    users,
		Products: products,
		Orders:   orders,
		Reviews:  reviews,
		Accounts: account.NewService(users, logger.WithField("component", "account")),
		Catalog:  catalog.NewService(products, logger.WithField("component", "catalog")),
		Carts:    cart.NewService(orders, logger.WithField("component", "cart")),
		Feedback: review.NewService(reviews, products, users, logger.WithField("component", "review")),
	}
}

// Run собирает торговое ядро и поднимает HTTP-сервер наблюдаемости.
// Блокируется до отмены контекста.
func Run(ctx context.Context, cfg Config) error {
	logger := log.WithField("component", "app")

	store := NewStorefront(logger)
	if cfg.SeedCatalog {
		seedCatalog(store, logger)
	}

	healthHandler := healthcheck.NewHandler(version.String())
	healthHandler.RegisterCheck("user-store", func() error {
		store.Users.List()
		return nil
	})
	healthHandler.RegisterCheck("catalog-store", func() error {
		store.Products.List()
		return nil
	})

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/healthz", healthHandler)
	mux.HandleFunc("/readyz", healthHandler.ReadinessHandler)
	mux.HandleFunc("/livez", healthcheck.LivenessHandler)

	listener, err := net.Listen("tcp", cfg.MetricsAddr)
	if err != nil {
		return err
	}

	server := &http.Server{Handler: mux}
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve(listener)
	}()
	logger.WithField("addr", listener.Addr().String()).Info("observability server started")

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Warn("observability server shutdown failed")
	}
	logger.Info("observability server stopped")
	return ctx.Err()
}

// seedCatalog наполняет каталог небольшим демо-набором товаров.
func seedCatalog(store *Storefront, logger *log.Entry) {
	seed := []struct {
		name        string
		description string
		price       decimal.Decimal
		stock       int
		category    string
	}{
		{"Laptop Pro 14", "14-inch laptop, 16 GB RAM", decimal.NewFromInt(1499), 10, "electronics"},
		{"Wireless Mouse", "Silent wireless mouse", decimal.NewFromFloat(29.90), 120, "electronics"},
		{"Espresso Beans 1kg", "Medium roast arabica", decimal.NewFromFloat(18.50), 45, "grocery"},
	}

	for _, item := range seed {
		if _, err := store.Catalog.CreateProduct(item.name, item.description, item.price, item.stock, item.category); err != nil {
			logger.WithError(err).WithField("name", item.name).Warn("seed product skipped")
		}
	}
	logger.WithField("count", len(seed)).Info("catalog seeded")
}
