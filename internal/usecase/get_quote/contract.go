package get_quote

import (
	"context"
	"time"

	"github.com/m04kA/VenueBookingService/internal/domain"
	"github.com/m04kA/VenueBookingService/pkg/types"
)

// VenueRepository интерфейс каталога площадок
type VenueRepository interface {
	GetVenue(ctx context.Context, id string) (*domain.Venue, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetReservedDates(ctx context.Context, venueID string) ([]types.Date, error)
}

// Metrics учет рассчитанных смет по уровням скидки
type Metrics interface {
	IncQuote(tier string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
