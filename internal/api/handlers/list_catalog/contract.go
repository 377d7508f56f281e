package list_catalog

import (
	"context"

	"github.com/m04kA/VenueBookingService/internal/service/catalog/models"
)

type CatalogService interface {
	ListLocations(ctx context.Context) (*models.LocationListResponse, error)
	ListConcerts(ctx context.Context) (*models.ConcertListResponse, error)
	ListWorkshops(ctx context.Context) (*models.WorkshopListResponse, error)
	ListEventManagers(ctx context.Context) (*models.EventManagerListResponse, error)
	ListJobOpenings(ctx context.Context) (*models.JobOpeningListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
