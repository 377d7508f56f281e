package cancel_booking

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/VenueBookingService/internal/api/middleware"
	"github.com/m04kA/VenueBookingService/internal/service/auth"
	"github.com/m04kA/VenueBookingService/internal/service/bookings"
	"github.com/m04kA/VenueBookingService/internal/service/bookings/models"
)

type fakeService struct {
	err error
	got *models.CancelBookingRequest
}

func (f *fakeService) Cancel(_ context.Context, _ uuid.UUID, req *models.CancelBookingRequest) error {
	f.got = req
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testPrincipal = &auth.Principal{UserID: uuid.New(), Email: "guest@example.com"}

func serve(h *Handler, bookingID, body string, principal *auth.Principal) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/"+bookingID+"/cancel", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"bookingId": bookingID})
	if principal != nil {
		req = req.WithContext(middleware.WithPrincipal(req.Context(), principal))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Cancelled(t *testing.T) {
	svc := &fakeService{}
	rec := serve(NewHandler(svc, nopLogger{}), uuid.NewString(), `{"cancellationReason":"plans changed"}`, testPrincipal)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, testPrincipal.UserID, svc.got.UserID)
	assert.Equal(t, "plans changed", svc.got.CancellationReason)
}

func TestHandle_EmptyBody(t *testing.T) {
	svc := &fakeService{}
	rec := serve(NewHandler(svc, nopLogger{}), uuid.NewString(), "", testPrincipal)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, svc.got.CancellationReason)
}

func TestHandle_Errors(t *testing.T) {
	id := uuid.NewString()

	tests := []struct {
		name       string
		bookingID  string
		body       string
		principal  *auth.Principal
		err        error
		wantStatus int
	}{
		{"bad id", "17", "", testPrincipal, nil, http.StatusBadRequest},
		{"no principal", id, "", nil, nil, http.StatusUnauthorized},
		{"broken body", id, `{"cancellationReason":`, testPrincipal, nil, http.StatusBadRequest},
		{"not found", id, "", testPrincipal, bookings.ErrBookingNotFound, http.StatusNotFound},
		{"foreign booking", id, "", testPrincipal, bookings.ErrAccessDenied, http.StatusForbidden},
		{"window closed", id, "", testPrincipal, bookings.ErrCancellationWindowClosed, http.StatusUnprocessableEntity},
		{"already cancelled", id, "", testPrincipal, bookings.ErrCannotCancel, http.StatusConflict},
		{"reason too long", id, "", testPrincipal, bookings.ErrInvalidInput, http.StatusBadRequest},
		{"internal", id, "", testPrincipal, errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(NewHandler(&fakeService{err: tt.err}, nopLogger{}), tt.bookingID, tt.body, tt.principal)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
