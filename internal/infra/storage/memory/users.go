package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/VenueBookingService/internal/domain"
	userRepo "github.com/m04kA/VenueBookingService/internal/infra/storage/user"
)

// Users пользователи в памяти; email уникален без учета регистра
type Users struct {
	mu      sync.RWMutex
	byEmail map[string]domain.User
}

func NewUsers() *Users {
	return &Users{byEmail: make(map[string]domain.User)}
}

func (s *Users) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	key := strings.ToLower(user.Email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[key]; ok {
		return nil, userRepo.ErrUserAlreadyExists
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()

	s.byEmail[key] = *user
	return user, nil
}

func (s *Users) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return &u, nil
}
