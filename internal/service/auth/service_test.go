package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/VenueBookingService/internal/domain"
	"github.com/m04kA/VenueBookingService/internal/infra/storage/memory"
	"github.com/m04kA/VenueBookingService/internal/service/auth/models"
)

const testSecret = "test-secret-key-12345"

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestService() *Service {
	svc := NewService(memory.NewUsers(), NewTokenIssuer(testSecret, 24*time.Hour, "venue-test"), nopLogger{})
	svc.timeProvider = fixedTime{now: testNow}
	return svc
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "Secur3!pass", false},
		{"space counts as special", "Secur3 pass", false},
		{"too short", "Se3!a", true},
		{"no uppercase", "secur3!pass", true},
		{"no lowercase", "SECUR3!PASS", true},
		{"no digit", "Secure!pass", true},
		{"no special", "Secur3pass", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePassword(tt.password)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrWeakPassword)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHashPassword(t *testing.T) {
	hash, salt, err := hashPassword("Secur3!pass")
	require.NoError(t, err)
	assert.Len(t, hash, argonKeyLen)
	assert.Len(t, salt, saltLen)

	assert.True(t, verifyPassword("Secur3!pass", salt, hash))
	assert.False(t, verifyPassword("Secur3!pasS", salt, hash))

	hash2, salt2, err := hashPassword("Secur3!pass")
	require.NoError(t, err)
	assert.NotEqual(t, salt, salt2)
	assert.NotEqual(t, hash, hash2)
}

func TestTokenIssuer(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, time.Hour, "venue-test")
	user := &domain.User{ID: uuid.New(), Email: "guest@example.com"}

	token, expiresAt, err := issuer.Issue(user, testNow)
	require.NoError(t, err)
	assert.Equal(t, testNow.Add(time.Hour), expiresAt)

	p, err := issuer.Parse(token, testNow.Add(30*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, user.ID, p.UserID)
	assert.Equal(t, "guest@example.com", p.Email)

	_, err = issuer.Parse(token, testNow.Add(2*time.Hour))
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = NewTokenIssuer("other-secret", time.Hour, "venue-test").Parse(token, testNow)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = NewTokenIssuer(testSecret, time.Hour, "someone-else").Parse(token, testNow)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = issuer.Parse("not-a-token", testNow)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_RejectsUnsignedToken(t *testing.T) {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			Issuer:    "venue-test",
			ExpiresAt: jwt.NewNumericDate(testNow.Add(time.Hour)),
		},
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenIssuer(testSecret, time.Hour, "venue-test").Parse(token, testNow)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_SignupAndLogin(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	session, err := svc.Signup(ctx, &models.CredentialsRequest{Email: " Guest@Example.com ", Password: "Secur3!pass"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", session.TokenType)
	assert.Equal(t, "guest@example.com", session.User.Email)
	assert.Equal(t, testNow.Add(24*time.Hour), session.ExpiresAt)

	p, err := svc.ValidateToken(session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, p.UserID)

	_, err = svc.Signup(ctx, &models.CredentialsRequest{Email: "guest@example.com", Password: "Secur3!pass"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	login, err := svc.Login(ctx, &models.CredentialsRequest{Email: "GUEST@example.com", Password: "Secur3!pass"})
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, login.User.ID)

	_, err = svc.Login(ctx, &models.CredentialsRequest{Email: "guest@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, &models.CredentialsRequest{Email: "nobody@example.com", Password: "Secur3!pass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_SignupValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     *models.CredentialsRequest
		wantErr error
	}{
		{"bad email", &models.CredentialsRequest{Email: "guest", Password: "Secur3!pass"}, ErrInvalidInput},
		{"display name", &models.CredentialsRequest{Email: "Guest <guest@example.com>", Password: "Secur3!pass"}, ErrInvalidInput},
		{"weak password", &models.CredentialsRequest{Email: "guest@example.com", Password: "password"}, ErrWeakPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestService().Signup(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_LoginRequiresFields(t *testing.T) {
	_, err := newTestService().Login(context.Background(), &models.CredentialsRequest{Email: "guest@example.com"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
