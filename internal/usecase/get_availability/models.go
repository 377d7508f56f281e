package get_availability

import (
	"github.com/m04kA/VenueBookingService/internal/domain"
	"github.com/m04kA/VenueBookingService/pkg/types"
)

// Request модель запроса календаря доступности
type Request struct {
	VenueID string
	From    *types.Date // по умолчанию сегодня
	To      *types.Date // по умолчанию from + 1 месяц
}

// Response модель ответа с календарем
type Response struct {
	VenueName string
	Today     types.Date
	Calendar  domain.Calendar
}
