package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/m04kA/VenueBookingService/internal/domain"
	userRepo "github.com/m04kA/VenueBookingService/internal/infra/storage/user"
	"github.com/m04kA/VenueBookingService/internal/service/auth/models"
)

// Service сервис регистрации, входа и проверки токенов сессии
type Service struct {
	userRepo     UserRepository
	tokens       *TokenIssuer
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса авторизации
func NewService(userRepo UserRepository, tokens *TokenIssuer, logger Logger) *Service {
	return &Service{
		userRepo:     userRepo,
		tokens:       tokens,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Signup регистрирует пользователя и сразу открывает сессию
func (s *Service) Signup(ctx context.Context, req *models.CredentialsRequest) (*models.SessionResponse, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		s.logger.Warn("Signup: %v", err)
		return nil, err
	}

	s.logger.Info("Signup: registering email=%s", email)

	if err := validatePassword(req.Password); err != nil {
		s.logger.Warn("Signup: weak password for email=%s", email)
		return nil, err
	}

	hash, salt, err := hashPassword(req.Password)
	if err != nil {
		s.logger.Error("Signup: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Signup - hash password: %v", ErrInternal, err)
	}

	user, err := s.userRepo.Create(ctx, &domain.User{
		Email:        email,
		PasswordHash: hash,
		PasswordSalt: salt,
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrUserAlreadyExists) {
			s.logger.Warn("Signup: email=%s already registered", email)
			return nil, ErrUserAlreadyExists
		}
		s.logger.Error("Signup: repository error: %v", err)
		return nil, fmt.Errorf("%w: Signup - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Signup: created user id=%s", user.ID)
	return s.openSession(user)
}

// Login проверяет пароль и выпускает токен сессии
// Неизвестный email и неверный пароль неразличимы для клиента
func (s *Service) Login(ctx context.Context, req *models.CredentialsRequest) (*models.SessionResponse, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	s.logger.Info("Login: email=%s", email)

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown email=%s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error: %v", err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if !verifyPassword(req.Password, user.PasswordSalt, user.PasswordHash) {
		s.logger.Warn("Login: wrong password for user id=%s", user.ID)
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("Login: user id=%s logged in", user.ID)
	return s.openSession(user)
}

// ValidateToken возвращает пользователя, которому выпущен токен
func (s *Service) ValidateToken(token string) (*Principal, error) {
	return s.tokens.Parse(token, s.timeProvider.Now())
}

func (s *Service) openSession(user *domain.User) (*models.SessionResponse, error) {
	token, expiresAt, err := s.tokens.Issue(user, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("openSession: failed to sign token for user id=%s: %v", user.ID, err)
		return nil, fmt.Errorf("%w: sign token: %v", ErrInternal, err)
	}

	return &models.SessionResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: expiresAt,
		User:      models.FromDomainUser(user),
	}, nil
}

// normalizeEmail проверяет адрес и приводит его к нижнему регистру
func normalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", fmt.Errorf("%w: email is not a valid address", ErrInvalidInput)
	}
	return strings.ToLower(email), nil
}
