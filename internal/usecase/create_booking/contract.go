package create_booking

import (
	"context"
	"math/rand"
	"time"

	"github.com/m04kA/VenueBookingService/internal/domain"
	"github.com/m04kA/VenueBookingService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetReservedDates(ctx context.Context, venueID string) ([]types.Date, error)
}

// VenueRepository интерфейс каталога площадок
type VenueRepository interface {
	GetVenue(ctx context.Context, id string) (*domain.Venue, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics бизнес-метрики бронирований
type Metrics interface {
	IncBooking(event string)
}

// InvoiceGenerator источник номеров счетов
type InvoiceGenerator interface {
	Next() int
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

// RandomInvoiceGenerator случайный номер счета в диапазоне [InvoiceNumberMin, InvoiceNumberMax]
type RandomInvoiceGenerator struct{}

func (RandomInvoiceGenerator) Next() int {
	return domain.InvoiceNumberMin + rand.Intn(domain.InvoiceNumberMax-domain.InvoiceNumberMin+1)
}
