package get_quote

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.VenueID) == "" {
		return fmt.Errorf("%w: venueID is required", ErrInvalidInput)
	}

	if req.Date != nil && req.Date.IsZero() {
		return fmt.Errorf("%w: date must be a valid calendar day", ErrInvalidInput)
	}

	return nil
}
