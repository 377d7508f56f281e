package register_workshop

import (
	"context"

	"github.com/m04kA/VenueBookingService/internal/service/catalog/models"
)

type CatalogService interface {
	RegisterWorkshop(ctx context.Context, req *models.RegisterWorkshopRequest) (*models.WorkshopRegistrationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
