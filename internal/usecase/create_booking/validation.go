package create_booking

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID == uuid.Nil {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.VenueID) == "" {
		return fmt.Errorf("%w: venueID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !req.PaymentMethod.IsValid() {
		return fmt.Errorf("%w: %q", ErrPaymentMethodRequired, req.PaymentMethod)
	}

	if req.ExpectedFinalCost != nil && req.ExpectedFinalCost.IsNegative() {
		return fmt.Errorf("%w: expected final cost must not be negative", ErrInvalidInput)
	}

	return nil
}
