package get_quote

import (
	"github.com/m04kA/VenueBookingService/internal/domain"
	"github.com/m04kA/VenueBookingService/pkg/types"
)

// Request модель запроса сметы
type Request struct {
	VenueID string
	Date    *types.Date // nil - дата еще не выбрана, смета только по базовой стоимости
}

// Response модель ответа со сметой
type Response struct {
	VenueID   string
	VenueName string
	Today     types.Date
	Quote     domain.PriceQuote
}
