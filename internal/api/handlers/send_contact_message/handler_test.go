package send_contact_message

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/VenueBookingService/internal/service/inquiries"
	"github.com/m04kA/VenueBookingService/internal/service/inquiries/models"
)

type fakeService struct {
	err error
	got *models.ContactMessageRequest
}

func (f *fakeService) SendContactMessage(_ context.Context, req *models.ContactMessageRequest) (*models.ContactMessageResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.ContactMessageResponse{ID: uuid.New(), Name: req.Name, Subject: req.Subject}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	const body = `{"name":"Asha","email":"asha@example.com","subject":"Wedding venue","message":"Looking for a hall."}`

	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{"created", body, nil, http.StatusCreated},
		{"empty body", "", nil, http.StatusBadRequest},
		{"malformed json", `{"name":`, nil, http.StatusBadRequest},
		{"invalid", body, inquiries.ErrInvalidInput, http.StatusBadRequest},
		{"internal", body, errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.err}
			rec := httptest.NewRecorder()
			NewHandler(svc, nopLogger{}).Handle(rec,
				httptest.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, "Wedding venue", svc.got.Subject)
				assert.Contains(t, rec.Body.String(), `"subject":"Wedding venue"`)
			}
		})
	}
}
