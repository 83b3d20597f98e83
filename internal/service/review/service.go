package review

import (
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// Service управляет отзывами: создание, частичная правка и удаление с
// отвязкой от товара.
type Service struct {
	reviews  domain.ReviewRepository
	products domain.ProductRepository
	users    domain.UserRepository
	logger   *log.Entry
}

// NewService создаёт сервис отзывов.
func NewService(reviews domain.ReviewRepository, products domain.ProductRepository, users domain.UserRepository, logger *log.Entry) *Service {
	if logger == nil {
		logger = log.New().WithField("component", "review")
	}
	return &Service{
		reviews:  reviews,
		products: products,
		users:    users,
		logger:   logger,
	}
}

// Add создаёт отзыв о товаре. Рейтинг молча приводится к диапазону [1, 5],
// отзыв сразу появляется в списке отзывов товара.
func (s *Service) Add(userID, productID string, rating int, comment string) (*domain.Review, error) {
	user, err := s.users.Get(userID)
	if err != nil {
		return nil, err
	}
	product, err := s.products.Get(productID)
	if err != nil {
		return nil, err
	}

	review := domain.NewReview(user, product, rating, comment)
	if err := s.reviews.Add(review); err != nil {
		return nil, err
	}

	s.logger.WithFields(log.Fields{
		"review_id":  review.ID,
		"product_id": product.ID,
		"rating":     review.Rating,
	}).Info("review added")
	return review, nil
}

// Update частично правит отзыв: nil-поля остаются без изменений.
func (s *Service) Update(reviewID string, rating *int, comment *string) (*domain.Review, error) {
	review, err := s.reviews.Get(reviewID)
	if err != nil {
		return nil, err
	}

	review.Update(rating, comment)
	s.logger.WithField("review_id", review.ID).Info("review updated")
	return review, nil
}

// Delete удаляет отзыв из хранилища и отвязывает его от товара.
func (s *Service) Delete(reviewID string) error {
	review, err := s.reviews.Get(reviewID)
	if err != nil {
		return err
	}

	if err := review.Detach(); err != nil {
		return err
	}
	if err := s.reviews.Remove(reviewID); err != nil {
		return err
	}

	s.logger.WithFields(log.Fields{
		"review_id":  review.ID,
		"product_id": review.Product.ID,
	}).Info("review deleted")
	return nil
}

// ListForProduct возвращает отзывы о товаре, старые первыми.
func (s *Service) ListForProduct(productID string) ([]*domain.Review, error) {
	if _, err := s.products.Get(productID); err != nil {
		return nil, err
	}
	return s.reviews.ListByProduct(productID), nil
}
