package login

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/VenueBookingService/internal/service/auth"
	"github.com/m04kA/VenueBookingService/internal/service/auth/models"
)

type fakeService struct {
	err error
}

func (f *fakeService) Login(_ context.Context, req *models.CredentialsRequest) (*models.SessionResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.SessionResponse{Token: "t", TokenType: "Bearer", User: models.UserResponse{ID: uuid.New(), Email: req.Email}}, nil
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
		{"ok", body, nil, http.StatusOK},
		{"empty body", "", nil, http.StatusBadRequest},
		{"wrong password", body, auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"missing fields", body, auth.ErrInvalidInput, http.StatusUnauthorized},
		{"internal", body, errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewHandler(&fakeService{err: tt.err}, nopLogger{}).Handle(rec,
				httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
