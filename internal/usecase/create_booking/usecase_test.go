package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/VenueBookingService/internal/domain"
	bookingRepo "github.com/m04kA/VenueBookingService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/VenueBookingService/internal/infra/storage/catalog"
	"github.com/m04kA/VenueBookingService/internal/infra/storage/memory"
	"github.com/m04kA/VenueBookingService/pkg/ptr"
	"github.com/m04kA/VenueBookingService/pkg/types"
)

type fakeVenues struct {
	venues map[string]*domain.Venue
}

func (f *fakeVenues) GetVenue(_ context.Context, id string) (*domain.Venue, error) {
	v, ok := f.venues[id]
	if !ok {
		return nil, catalogRepo.ErrVenueNotFound
	}
	return v, nil
}

type fakeMetrics struct {
	events []string
}

func (f *fakeMetrics) IncBooking(event string) { f.events = append(f.events, event) }

type fixedInvoice int

func (f fixedInvoice) Next() int { return int(f) }

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// failingBookings подменяет ответы хранилища
type failingBookings struct {
	reservedErr error
	createErr   error
}

func (f *failingBookings) Create(context.Context, *domain.Booking) (*domain.Booking, error) {
	return nil, f.createErr
}

func (f *failingBookings) GetReservedDates(context.Context, string) ([]types.Date, error) {
	return nil, f.reservedErr
}

func testVenues() *fakeVenues {
	return &fakeVenues{venues: map[string]*domain.Venue{
		"venue-05": {
			ID:          "venue-05",
			Name:        "Nizami Palace",
			BaseCost:    decimal.NewFromInt(220000),
			BookedDates: []types.Date{types.MustParseDate("2024-04-10")},
		},
	}}
}

func newTestUseCase(bookings BookingRepository, m *fakeMetrics) *UseCase {
	uc := NewUseCase(bookings, testVenues(), memory.NewTxManager(), domain.DefaultBookingPolicy(), m, nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	uc.invoices = fixedInvoice(4242)
	return uc
}

func validRequest() *Request {
	return &Request{
		UserID:        uuid.New(),
		UserEmail:     "guest@example.com",
		VenueID:       "venue-05",
		Date:          types.MustParseDate("2024-03-01"),
		PaymentMethod: domain.PaymentCard,
	}
}

func TestExecute_Success(t *testing.T) {
	m := &fakeMetrics{}
	store := memory.NewBookings()
	uc := newTestUseCase(store, m)

	req := validRequest()
	req.ExpectedFinalCost = ptr.Ptr(decimal.RequireFromString("181720.00"))

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	b := resp.Booking
	assert.NotEqual(t, uuid.Nil, b.ID)
	assert.Equal(t, domain.StatusConfirmed, b.Status)
	assert.Equal(t, 4242, b.InvoiceNumber)
	assert.Equal(t, "Nizami Palace", b.VenueName)
	assert.Equal(t, "guest@example.com", b.UserEmail)
	assert.Equal(t, "Super Early Bird", b.DiscountName)
	assert.True(t, b.Tax.Equal(decimal.NewFromInt(39600)))
	assert.True(t, b.DiscountAmount.Equal(decimal.NewFromInt(77880)))
	assert.True(t, b.FinalCost.Equal(decimal.NewFromInt(181720)))
	assert.Equal(t, []string{"confirmed"}, m.events)

	reserved, err := store.GetReservedDates(context.Background(), "venue-05")
	require.NoError(t, err)
	assert.Equal(t, []types.Date{req.Date}, reserved)
}

func TestExecute_DateTakenBySecondBooking(t *testing.T) {
	store := memory.NewBookings()
	uc := newTestUseCase(store, &fakeMetrics{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDateNotSelectable)
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name     string
		bookings BookingRepository
		mutate   func(r *Request)
		wantErr  error
	}{
		{
			name:     "missing user",
			bookings: memory.NewBookings(),
			mutate:   func(r *Request) { r.UserID = uuid.Nil },
			wantErr:  ErrInvalidInput,
		},
		{
			name:     "missing date",
			bookings: memory.NewBookings(),
			mutate:   func(r *Request) { r.Date = types.Date{} },
			wantErr:  ErrInvalidInput,
		},
		{
			name:     "missing payment method",
			bookings: memory.NewBookings(),
			mutate:   func(r *Request) { r.PaymentMethod = "" },
			wantErr:  ErrPaymentMethodRequired,
		},
		{
			name:     "unknown payment method",
			bookings: memory.NewBookings(),
			mutate:   func(r *Request) { r.PaymentMethod = "cash" },
			wantErr:  ErrPaymentMethodRequired,
		},
		{
			name:     "unknown venue",
			bookings: memory.NewBookings(),
			mutate:   func(r *Request) { r.VenueID = "venue-404" },
			wantErr:  ErrVenueNotFound,
		},
		{
			name:     "statically booked date",
			bookings: memory.NewBookings(),
			mutate:   func(r *Request) { r.Date = types.MustParseDate("2024-04-10") },
			wantErr:  ErrDateNotSelectable,
		},
		{
			name:     "past date",
			bookings: memory.NewBookings(),
			mutate:   func(r *Request) { r.Date = types.MustParseDate("2023-12-31") },
			wantErr:  ErrDateNotSelectable,
		},
		{
			name:     "outdated quote",
			bookings: memory.NewBookings(),
			mutate:   func(r *Request) { r.ExpectedFinalCost = ptr.Ptr(decimal.NewFromInt(187000)) },
			wantErr:  ErrQuoteMismatch,
		},
		{
			name:     "reserved dates failure",
			bookings: &failingBookings{reservedErr: errors.New("connection reset")},
			mutate:   func(*Request) {},
			wantErr:  ErrInternal,
		},
		{
			name:     "concurrent insert lost the race",
			bookings: &failingBookings{createErr: bookingRepo.ErrDateAlreadyBooked},
			mutate:   func(*Request) {},
			wantErr:  ErrDateNotSelectable,
		},
		{
			name:     "insert failure",
			bookings: &failingBookings{createErr: errors.New("disk full")},
			mutate:   func(*Request) {},
			wantErr:  ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &fakeMetrics{}
			uc := newTestUseCase(tt.bookings, m)
			req := validRequest()
			tt.mutate(req)

			resp, err := uc.Execute(context.Background(), req)

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, m.events)
		})
	}
}

func TestRandomInvoiceGenerator_Range(t *testing.T) {
	var g RandomInvoiceGenerator
	for i := 0; i < 1000; i++ {
		n := g.Next()
		assert.GreaterOrEqual(t, n, domain.InvoiceNumberMin)
		assert.LessOrEqual(t, n, domain.InvoiceNumberMax)
	}
}
