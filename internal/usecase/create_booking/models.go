package create_booking

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/VenueBookingService/internal/domain"
	"github.com/m04kA/VenueBookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID            uuid.UUID            // ID пользователя из токена
	UserEmail         string               // Email пользователя (денормализуется в бронирование)
	VenueID           string               // ID площадки
	Date              types.Date           // Дата мероприятия
	PaymentMethod     domain.PaymentMethod // card | upi | netbanking
	ExpectedFinalCost *decimal.Decimal     // Итог, показанный клиенту (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking *domain.Booking
}
