package domain

import (
	"time"

	"github.com/google/uuid"
)

// User зарегистрированный пользователь
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash []byte
	PasswordSalt []byte
	CreatedAt    time.Time
}
