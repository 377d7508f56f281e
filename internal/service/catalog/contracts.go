package catalog

import (
	"context"

	"github.com/m04kA/VenueBookingService/internal/domain"
)

// CatalogRepository интерфейс статического каталога
type CatalogRepository interface {
	ListVenues(ctx context.Context) ([]*domain.Venue, error)
	GetVenue(ctx context.Context, id string) (*domain.Venue, error)
	ListConcerts(ctx context.Context) ([]*domain.Concert, error)
	GetConcert(ctx context.Context, id string) (*domain.Concert, error)
	ListWorkshops(ctx context.Context) ([]*domain.Workshop, error)
	GetWorkshop(ctx context.Context, id string) (*domain.Workshop, error)
	ListEventManagers(ctx context.Context) ([]*domain.EventManager, error)
	ListJobOpenings(ctx context.Context) ([]*domain.JobOpening, error)
}

// OrderRepository интерфейс репозитория заказов билетов и регистраций
type OrderRepository interface {
	CreateTicketOrder(ctx context.Context, order *domain.TicketOrder) (*domain.TicketOrder, error)
	CreateWorkshopRegistration(ctx context.Context, reg *domain.WorkshopRegistration) (*domain.WorkshopRegistration, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
