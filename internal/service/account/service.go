package account

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

var (
	// ErrEmailTaken возвращается при регистрации на уже занятый адрес почты.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials возвращается при неверной паре email/пароль.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Service управляет учётными записями: регистрация, вход и правка профиля.
// Пароль никогда не пишется в логи.
type Service struct {
	users  domain.UserRepository
	logger *log.Entry
}

// NewService создаёт сервис учётных записей.
func NewService(users domain.UserRepository, logger *log.Entry) *Service {
	if logger == nil {
		logger = log.New().WithField("component", "account")
	}
	return &Service{
		users:  users,
		logger: logger,
	}
}

// Register создаёт учётную запись; адрес почты должен быть свободен.
func (s *Service) Register(username, email, password, address, phone string) (*domain.User, error) {
	if _, err := s.users.GetByEmail(email); err == nil {
		s.logger.WithField("email", email).Warn("registration rejected: email taken")
		return nil, fmt.Errorf("%w: %s", ErrEmailTaken, email)
	} else if !domain.IsNotFound(err) {
		return nil, err
	}

	user := domain.NewUser(username, email, password, address, phone)
	if err := s.users.Add(user); err != nil {
		return nil, err
	}

	s.logger.WithFields(log.Fields{
		"user_id":  user.ID,
		"username": user.Username,
	}).Info("user registered")
	return user, nil
}

// Login проверяет учётные данные и возвращает пользователя.
func (s *Service) Login(email, password string) (*domain.User, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.Login(email, password) {
		s.logger.WithField("user_id", user.ID).Warn("login rejected: credentials mismatch")
		return nil, ErrInvalidCredentials
	}

	s.logger.WithField("user_id", user.ID).Info("user logged in")
	return user, nil
}

// Logout фиксирует выход пользователя. Сессии не моделируются, поэтому
// операция сводится к проверке существования и записи в лог.
func (s *Service) Logout(userID string) error {
	user, err := s.users.Get(userID)
	if err != nil {
		return err
	}
	s.logger.WithField("user_id", user.ID).Info("user logged out")
	return nil
}

// UpdateProfile частично обновляет профиль: пустые поля не трогаются.
func (s *Service) UpdateProfile(userID, username, address, phone string) (*domain.User, error) {
	user, err := s.users.Get(userID)
	if err != nil {
		return nil, err
	}

	user.UpdateProfile(username, address, phone)
	s.logger.WithField("user_id", user.ID).Info("profile updated")
	return user, nil
}

// Orders возвращает историю заказов пользователя в порядке размещения.
func (s *Service) Orders(userID string) ([]*domain.Order, error) {
	user, err := s.users.Get(userID)
	if err != nil {
		return nil, err
	}
	return user.Orders(), nil
}
