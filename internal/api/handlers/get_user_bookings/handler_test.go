package get_user_bookings

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/VenueBookingService/internal/api/middleware"
	"github.com/m04kA/VenueBookingService/internal/service/auth"
	"github.com/m04kA/VenueBookingService/internal/service/bookings"
	"github.com/m04kA/VenueBookingService/internal/service/bookings/models"
)

type fakeService struct {
	err error
	got *models.GetUserBookingsRequest
}

func (f *fakeService) GetUserBookings(_ context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.BookingListResponse{Bookings: []models.BookingResponse{}}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle_PassesStatusFilter(t *testing.T) {
	principal := &auth.Principal{UserID: uuid.New()}
	svc := &fakeService{}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings?status=confirmed", nil)
	req = req.WithContext(middleware.WithPrincipal(req.Context(), principal))
	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"bookings":[]}`, rec.Body.String())
	require.NotNil(t, svc.got.Status)
	assert.Equal(t, "confirmed", *svc.got.Status)
	assert.Equal(t, principal.UserID, svc.got.UserID)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		principal  *auth.Principal
		err        error
		wantStatus int
	}{
		{"no principal", nil, nil, http.StatusUnauthorized},
		{"bad status", &auth.Principal{UserID: uuid.New()}, fmt.Errorf("%w: invalid status", bookings.ErrInvalidInput), http.StatusBadRequest},
		{"internal", &auth.Principal{UserID: uuid.New()}, errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings?status=archived", nil)
			if tt.principal != nil {
				req = req.WithContext(middleware.WithPrincipal(req.Context(), tt.principal))
			}
			rec := httptest.NewRecorder()
			NewHandler(&fakeService{err: tt.err}, nopLogger{}).Handle(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
