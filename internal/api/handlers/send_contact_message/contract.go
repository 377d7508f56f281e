package send_contact_message

import (
	"context"

	"github.com/m04kA/VenueBookingService/internal/service/inquiries/models"
)

type InquiryService interface {
	SendContactMessage(ctx context.Context, req *models.ContactMessageRequest) (*models.ContactMessageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
