package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/VenueBookingService/internal/domain"
	bookingRepo "github.com/m04kA/VenueBookingService/internal/infra/storage/booking"
	"github.com/m04kA/VenueBookingService/pkg/types"
)

// Bookings хранилище бронирований в памяти процесса
// Ошибки совпадают с PostgreSQL-репозиторием, чтобы сервисы не зависели от драйвера
type Bookings struct {
	mu    sync.RWMutex
	items map[uuid.UUID]domain.Booking
	now   func() time.Time
}

func NewBookings() *Bookings {
	return &Bookings{
		items: make(map[uuid.UUID]domain.Booking),
		now:   time.Now,
	}
}

func (s *Bookings) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if booking.IsActive() {
		for _, b := range s.items {
			if b.IsActive() && b.VenueID == booking.VenueID && b.Date == booking.Date {
				return nil, bookingRepo.ErrDateAlreadyBooked
			}
		}
	}

	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	now := s.now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	s.items[booking.ID] = *booking
	return booking, nil
}

func (s *Bookings) GetByID(_ context.Context, id uuid.UUID) (*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.items[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return &b, nil
}

// GetByUserID бронирования пользователя, новые даты первыми
func (s *Bookings) GetByUserID(_ context.Context, userID uuid.UUID, status *domain.BookingStatus) ([]*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Booking, 0)
	for _, b := range s.items {
		if b.UserID != userID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		b := b
		out = append(out, &b)
	}

	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Date.Compare(out[j].Date); c != 0 {
			return c > 0
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// GetReservedDates даты активных бронирований площадки по возрастанию
func (s *Bookings) GetReservedDates(_ context.Context, venueID string) ([]types.Date, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dates := make([]types.Date, 0)
	for _, b := range s.items {
		if b.VenueID == venueID && b.IsActive() {
			dates = append(dates, b.Date)
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates, nil
}

func (s *Bookings) Cancel(_ context.Context, id uuid.UUID, reason string, cancelledAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.items[id]
	if !ok || !b.IsActive() {
		return bookingRepo.ErrBookingNotFound
	}

	b.Status = domain.StatusCancelledByUser
	b.CancellationReason = &reason
	b.CancelledAt = &cancelledAt
	b.UpdatedAt = cancelledAt
	s.items[id] = b
	return nil
}
