package get_availability

import (
	"fmt"
	"strings"

	"github.com/m04kA/VenueBookingService/internal/domain"
	"github.com/m04kA/VenueBookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.VenueID) == "" {
		return fmt.Errorf("%w: venueID is required", ErrInvalidInput)
	}
	return nil
}

// resolveRange подставляет период по умолчанию и проверяет его границы
func resolveRange(req *Request, today types.Date) (types.Date, types.Date, error) {
	from := today
	if req.From != nil {
		from = *req.From
	}

	to := from.AddMonths(domain.DefaultAvailabilityMonths)
	if req.To != nil {
		to = *req.To
	}

	if to.Before(from) {
		return from, to, fmt.Errorf("%w: from %s is after to %s", ErrInvalidRange, from, to)
	}

	if days := from.DaysUntil(to) + 1; days > domain.MaxAvailabilityRangeDays {
		return from, to, fmt.Errorf("%w: %d days requested, max %d", ErrInvalidRange, days, domain.MaxAvailabilityRangeDays)
	}

	return from, to, nil
}
