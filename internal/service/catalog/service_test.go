package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogRepo "github.com/m04kA/VenueBookingService/internal/infra/storage/catalog"
	"github.com/m04kA/VenueBookingService/internal/infra/storage/memory"
	"github.com/m04kA/VenueBookingService/internal/service/catalog/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(t *testing.T) *Service {
	t.Helper()

	repo, err := catalogRepo.NewDefaultRepository()
	require.NoError(t, err)
	return NewService(repo, memory.NewOrders(), nopLogger{})
}

func attendees(n int) []models.AttendeeRequest {
	out := make([]models.AttendeeRequest, n)
	for i := range out {
		out[i] = models.AttendeeRequest{Name: "Asha Rao", Email: "asha@example.com"}
	}
	return out
}

func TestService_ListVenues(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		location string
		want     int
	}{
		{"no filter", "", 10},
		{"all", "All", 10},
		{"west", "Hyderabad (West)", 2},
		{"unknown", "Mumbai", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.ListVenues(ctx, tt.location)
			require.NoError(t, err)
			assert.Len(t, resp.Venues, tt.want)
			assert.NotNil(t, resp.Venues)
		})
	}
}

func TestService_GetVenue(t *testing.T) {
	svc := newTestService(t)

	v, err := svc.GetVenue(context.Background(), "venue-10")
	require.NoError(t, err)
	assert.Equal(t, "Hi-Tech Convention", v.Name)

	_, err = svc.GetVenue(context.Background(), "venue-404")
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestService_ListLocations(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.ListLocations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"All",
		"Hyderabad (Central)",
		"Hyderabad (East)",
		"Hyderabad (North)",
		"Hyderabad (South)",
		"Hyderabad (West)",
	}, resp.Locations)
}

func TestService_Listings(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	concerts, err := svc.ListConcerts(ctx)
	require.NoError(t, err)
	require.Len(t, concerts.Concerts, 3)
	assert.True(t, concerts.Concerts[0].VIPPrice.Equal(decimal.NewFromInt(2250)))

	workshops, err := svc.ListWorkshops(ctx)
	require.NoError(t, err)
	assert.Len(t, workshops.Workshops, 8)

	managers, err := svc.ListEventManagers(ctx)
	require.NoError(t, err)
	assert.Len(t, managers.EventManagers, 8)

	jobs, err := svc.ListJobOpenings(ctx)
	require.NoError(t, err)
	require.Len(t, jobs.JobOpenings, 3)
	assert.Equal(t, "job-01", jobs.JobOpenings[0].ID)
}

func TestService_BookConcertTickets(t *testing.T) {
	svc := newTestService(t)
	userID := uuid.New()

	resp, err := svc.BookConcertTickets(context.Background(), &models.BookTicketsRequest{
		UserID:    userID,
		ConcertID: "concert-01",
		SeatType:  "vip",
		Quantity:  2,
		Attendees: attendees(2),
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, "Indie Fusion Night", resp.ConcertName)
	assert.True(t, resp.UnitPrice.Equal(decimal.NewFromInt(2250)))
	assert.True(t, resp.TotalPrice.Equal(decimal.NewFromInt(4500)))
	assert.Len(t, resp.Attendees, 2)
}

func TestService_BookConcertTickets_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     *models.BookTicketsRequest
		wantErr error
	}{
		{
			name:    "unknown seat type",
			req:     &models.BookTicketsRequest{ConcertID: "concert-01", SeatType: "balcony", Quantity: 1, Attendees: attendees(1)},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "zero tickets",
			req:     &models.BookTicketsRequest{ConcertID: "concert-01", SeatType: "general", Quantity: 0},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "eleven tickets",
			req:     &models.BookTicketsRequest{ConcertID: "concert-01", SeatType: "general", Quantity: 11, Attendees: attendees(11)},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "attendee count mismatch",
			req:     &models.BookTicketsRequest{ConcertID: "concert-01", SeatType: "general", Quantity: 3, Attendees: attendees(2)},
			wantErr: ErrInvalidInput,
		},
		{
			name: "short attendee name",
			req: &models.BookTicketsRequest{ConcertID: "concert-01", SeatType: "general", Quantity: 1,
				Attendees: []models.AttendeeRequest{{Name: "A", Email: "a@example.com"}}},
			wantErr: ErrInvalidInput,
		},
		{
			name: "bad attendee email",
			req: &models.BookTicketsRequest{ConcertID: "concert-01", SeatType: "general", Quantity: 1,
				Attendees: []models.AttendeeRequest{{Name: "Asha", Email: "asha-at-example"}}},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "unknown concert",
			req:     &models.BookTicketsRequest{ConcertID: "concert-404", SeatType: "general", Quantity: 1, Attendees: attendees(1)},
			wantErr: ErrConcertNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t)

			resp, err := svc.BookConcertTickets(context.Background(), tt.req)

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_RegisterWorkshop(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.RegisterWorkshop(context.Background(), &models.RegisterWorkshopRequest{
		WorkshopID: "workshop-01",
		Name:       " Ravi ",
		Email:      "ravi@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ravi", resp.Name)
	assert.NotEmpty(t, resp.WorkshopTitle)

	_, err = svc.RegisterWorkshop(context.Background(), &models.RegisterWorkshopRequest{
		WorkshopID: "workshop-01", Name: "Ravi", Email: "Ravi <ravi@example.com>",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.RegisterWorkshop(context.Background(), &models.RegisterWorkshopRequest{
		WorkshopID: "workshop-404", Name: "Ravi", Email: "ravi@example.com",
	})
	assert.ErrorIs(t, err, ErrWorkshopNotFound)
}
