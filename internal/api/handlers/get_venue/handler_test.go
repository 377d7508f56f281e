package get_venue

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/VenueBookingService/internal/service/catalog"
	"github.com/m04kA/VenueBookingService/internal/service/catalog/models"
	"github.com/m04kA/VenueBookingService/pkg/types"
)

type fakeService struct {
	err error
}

func (f *fakeService) GetVenue(_ context.Context, id string) (*models.VenueResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.VenueResponse{ID: id, Name: "Grand Hall", BaseCost: types.NewMoney(decimal.NewFromInt(100000))}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"ok", nil, http.StatusOK},
		{"not found", catalog.ErrVenueNotFound, http.StatusNotFound},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/venues/venue-01", nil)
			req = mux.SetURLVars(req, map[string]string{"venueId": "venue-01"})
			rec := httptest.NewRecorder()

			NewHandler(&fakeService{err: tt.err}, nopLogger{}).Handle(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, rec.Body.String(), `"baseCost":100000.00`)
			}
		})
	}
}
