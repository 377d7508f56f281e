package catalog

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/VenueBookingService/internal/domain"
	"github.com/m04kA/VenueBookingService/internal/service/catalog/models"
)

// validateName проверяет имя посетителя
func validateName(field, name string) error {
	if utf8.RuneCountInString(strings.TrimSpace(name)) < domain.MinNameLength {
		return fmt.Errorf("%w: %s must be at least %d characters", ErrInvalidInput, field, domain.MinNameLength)
	}
	return nil
}

// validateEmail проверяет адрес почты; допускается только голый адрес без имени
func validateEmail(field, email string) error {
	email = strings.TrimSpace(email)
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("%w: %s is not a valid email address", ErrInvalidInput, field)
	}
	return nil
}

// validateTicketRequest валидирует заказ билетов
func validateTicketRequest(req *models.BookTicketsRequest) error {
	if !domain.SeatType(req.SeatType).IsValid() {
		return fmt.Errorf("%w: seatType must be %q or %q", ErrInvalidInput, domain.SeatGeneral, domain.SeatVIP)
	}

	if req.Quantity < domain.MinTicketsPerOrder || req.Quantity > domain.MaxTicketsPerOrder {
		return fmt.Errorf("%w: quantity must be between %d and %d",
			ErrInvalidInput, domain.MinTicketsPerOrder, domain.MaxTicketsPerOrder)
	}

	if len(req.Attendees) != req.Quantity {
		return fmt.Errorf("%w: %d attendees given for %d tickets", ErrInvalidInput, len(req.Attendees), req.Quantity)
	}

	for i, a := range req.Attendees {
		if err := validateName(fmt.Sprintf("attendees[%d].name", i), a.Name); err != nil {
			return err
		}
		if err := validateEmail(fmt.Sprintf("attendees[%d].email", i), a.Email); err != nil {
			return err
		}
	}

	return nil
}

// validateRegistrationRequest валидирует регистрацию на мастер-класс
func validateRegistrationRequest(req *models.RegisterWorkshopRequest) error {
	if err := validateName("name", req.Name); err != nil {
		return err
	}
	return validateEmail("email", req.Email)
}
