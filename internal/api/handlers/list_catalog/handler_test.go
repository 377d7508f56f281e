package list_catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/VenueBookingService/internal/service/catalog/models"
)

type fakeService struct {
	err error
}

func (f *fakeService) ListLocations(context.Context) (*models.LocationListResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.LocationListResponse{Locations: []string{"All", "Hyderabad (West)"}}, nil
}

func (f *fakeService) ListConcerts(context.Context) (*models.ConcertListResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.ConcertListResponse{Concerts: []models.ConcertResponse{}}, nil
}

func (f *fakeService) ListWorkshops(context.Context) (*models.WorkshopListResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.WorkshopListResponse{Workshops: []models.WorkshopResponse{}}, nil
}

func (f *fakeService) ListEventManagers(context.Context) (*models.EventManagerListResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.EventManagerListResponse{EventManagers: []models.EventManagerResponse{}}, nil
}

func (f *fakeService) ListJobOpenings(context.Context) (*models.JobOpeningListResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.JobOpeningListResponse{JobOpenings: []models.JobOpeningResponse{{ID: "job-01", Title: "Engineer"}}}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandler_Lists(t *testing.T) {
	h := NewHandler(&fakeService{}, nopLogger{})

	tests := []struct {
		name   string
		handle http.HandlerFunc
		want   string
	}{
		{"locations", h.Locations, `{"locations":["All","Hyderabad (West)"]}`},
		{"concerts", h.Concerts, `{"concerts":[]}`},
		{"workshops", h.Workshops, `{"workshops":[]}`},
		{"event managers", h.EventManagers, `{"eventManagers":[]}`},
		{"job openings", h.JobOpenings,
			`{"jobOpenings":[{"id":"job-01","title":"Engineer","location":"","package":"","description":""}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.handle(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}

func TestHandler_Error(t *testing.T) {
	h := NewHandler(&fakeService{err: errors.New("boom")}, nopLogger{})

	rec := httptest.NewRecorder()
	h.Concerts(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
