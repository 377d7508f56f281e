package create_booking

import (
	"github.com/m04kA/VenueBookingService/internal/domain"
	"github.com/m04kA/VenueBookingService/internal/service/auth"
	"github.com/m04kA/VenueBookingService/internal/service/bookings/models"
	createBooking "github.com/m04kA/VenueBookingService/internal/usecase/create_booking"
	"github.com/m04kA/VenueBookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	VenueID           string       `json:"venueId"`
	Date              string       `json:"date"` // "2025-10-15"
	PaymentMethod     string       `json:"paymentMethod"`
	ExpectedFinalCost *types.Money `json:"expectedFinalCost,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(principal *auth.Principal) (*createBooking.Request, error) {
	date, err := types.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	req := &createBooking.Request{
		UserID:        principal.UserID,
		UserEmail:     principal.Email,
		VenueID:       r.VenueID,
		Date:          date,
		PaymentMethod: domain.PaymentMethod(r.PaymentMethod),
	}
	if r.ExpectedFinalCost != nil {
		expected := r.ExpectedFinalCost.Decimal
		req.ExpectedFinalCost = &expected
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *models.BookingResponse {
	return models.FromDomainBooking(resp.Booking)
}
