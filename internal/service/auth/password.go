package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"unicode/utf8"

	"golang.org/x/crypto/argon2"

	"github.com/m04kA/VenueBookingService/internal/domain"
)

// Параметры Argon2id
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
	saltLen      = 16
)

// hashPassword генерирует соль и Argon2id-хеш пароля
func hashPassword(password string) (hash []byte, salt []byte, err error) {
	salt = make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, nil, err
	}

	hash = argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
	return hash, salt, nil
}

// verifyPassword сравнивает пароль с сохраненным хешем за постоянное время
func verifyPassword(password string, salt, hash []byte) bool {
	comparison := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
	return subtle.ConstantTimeCompare(hash, comparison) == 1
}

// validatePassword проверяет политику: длина, заглавная, строчная буква, цифра и спецсимвол
func validatePassword(password string) error {
	if utf8.RuneCountInString(password) < domain.MinPasswordLength {
		return fmt.Errorf("%w: must be at least %d characters", ErrWeakPassword, domain.MinPasswordLength)
	}

	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			special = true
		}
	}

	switch {
	case !upper:
		return fmt.Errorf("%w: must contain an uppercase letter", ErrWeakPassword)
	case !lower:
		return fmt.Errorf("%w: must contain a lowercase letter", ErrWeakPassword)
	case !digit:
		return fmt.Errorf("%w: must contain a number", ErrWeakPassword)
	case !special:
		return fmt.Errorf("%w: must contain a special character", ErrWeakPassword)
	}

	return nil
}
