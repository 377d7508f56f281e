package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/m04kA/VenueBookingService/internal/domain"
)

// Principal пользователь, от имени которого выполняется запрос
type Principal struct {
	UserID uuid.UUID
	Email  string
}

// claims полезная нагрузка токена сессии; subject содержит ID пользователя
type claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenIssuer выпускает и проверяет HS256-токены сессии
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

func NewTokenIssuer(secret string, ttl time.Duration, issuer string) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: issuer,
	}
}

// Issue подписывает токен для пользователя, возвращает токен и время истечения
func (t *TokenIssuer) Issue(user *domain.User, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(t.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			Issuer:    t.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Parse проверяет подпись, срок действия и издателя токена
func (t *TokenIssuer) Parse(tokenString string, now time.Time) (*Principal, error) {
	var c claims
	_, err := jwt.ParseWithClaims(tokenString, &c,
		func(token *jwt.Token) (interface{}, error) {
			return t.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(t.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: token expired", ErrInvalidToken)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	userID, err := uuid.Parse(c.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}

	return &Principal{UserID: userID, Email: c.Email}, nil
}
