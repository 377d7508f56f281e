package book_concert_tickets

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
	"github.com/m04kA/VenueBookingService/internal/service/catalog"
	"github.com/m04kA/VenueBookingService/internal/service/catalog/models"
)

type fakeService struct {
	err error
	got *models.BookTicketsRequest
}

func (f *fakeService) BookConcertTickets(_ context.Context, req *models.BookTicketsRequest) (*models.TicketOrderResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.TicketOrderResponse{ID: uuid.New(), ConcertID: req.ConcertID, Quantity: req.Quantity}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const validBody = `{"seatType":"vip","quantity":1,"attendees":[{"name":"Asha Rao","email":"asha@example.com"}]}`

var testPrincipal = &auth.Principal{UserID: uuid.New(), Email: "asha@example.com"}

func serve(h *Handler, body string, principal *auth.Principal) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/concerts/concert-01/tickets", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"concertId": "concert-01"})
	if principal != nil {
		req = req.WithContext(middleware.WithPrincipal(req.Context(), principal))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	svc := &fakeService{}
	rec := serve(NewHandler(svc, nopLogger{}), validBody, testPrincipal)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "concert-01", svc.got.ConcertID)
	assert.Equal(t, testPrincipal.UserID, svc.got.UserID)
	assert.Equal(t, "vip", svc.got.SeatType)
	require.Len(t, svc.got.Attendees, 1)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		principal  *auth.Principal
		err        error
		wantStatus int
	}{
		{"no principal", validBody, nil, nil, http.StatusUnauthorized},
		{"broken body", `[]`, testPrincipal, nil, http.StatusBadRequest},
		{"invalid order", validBody, testPrincipal, catalog.ErrInvalidInput, http.StatusBadRequest},
		{"unknown concert", validBody, testPrincipal, catalog.ErrConcertNotFound, http.StatusNotFound},
		{"internal", validBody, testPrincipal, errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(NewHandler(&fakeService{err: tt.err}, nopLogger{}), tt.body, tt.principal)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
