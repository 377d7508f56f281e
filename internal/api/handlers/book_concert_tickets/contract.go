package book_concert_tickets

import (
	"context"

	"github.com/m04kA/VenueBookingService/internal/service/catalog/models"
)

type CatalogService interface {
	BookConcertTickets(ctx context.Context, req *models.BookTicketsRequest) (*models.TicketOrderResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
