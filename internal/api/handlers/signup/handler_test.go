package signup

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/VenueBookingService/internal/service/auth"
	"github.com/m04kA/VenueBookingService/internal/service/auth/models"
)

type fakeService struct {
	err error
}

func (f *fakeService) Signup(_ context.Context, req *models.CredentialsRequest) (*models.SessionResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.SessionResponse{
		Token:     "signed.jwt.token",
		TokenType: "Bearer",
		ExpiresAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		User:      models.UserResponse{ID: uuid.New(), Email: req.Email},
	}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	const body = `{"email":"guest@example.com","password":"Secur3!pass"}`

	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{"created", body, nil, http.StatusCreated},
		{"broken body", `{"email":`, nil, http.StatusBadRequest},
		{"invalid email", body, auth.ErrInvalidInput, http.StatusBadRequest},
		{"weak password", body, auth.ErrWeakPassword, http.StatusBadRequest},
		{"email taken", body, auth.ErrUserAlreadyExists, http.StatusConflict},
		{"internal", body, errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewHandler(&fakeService{err: tt.err}, nopLogger{}).Handle(rec,
				httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", strings.NewReader(tt.body)))

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusCreated {
				assert.Contains(t, rec.Body.String(), `"token":"signed.jwt.token"`)
				assert.Contains(t, rec.Body.String(), `"tokenType":"Bearer"`)
			}
		})
	}
}
