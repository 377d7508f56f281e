package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/VenueBookingService/internal/api/handlers"
	"github.com/m04kA/VenueBookingService/internal/api/middleware"
	createBooking "github.com/m04kA/VenueBookingService/internal/usecase/create_booking"
)

const (
	msgUnauthorized          = "требуется авторизация"
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidDate           = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgInvalidRequest        = "некорректные данные бронирования"
	msgPaymentMethodRequired = "выберите способ оплаты: card, upi или netbanking"
	msgVenueNotFound         = "площадка не найдена"
	msgDateNotSelectable     = "выбранная дата недоступна для бронирования"
	msgQuoteMismatch         = "стоимость изменилась, запросите расчет заново"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - No principal in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(principal)
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrVenueNotFound):
			h.logger.Warn("POST /bookings - Venue not found: venue_id=%s", req.VenueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, createBooking.ErrDateNotSelectable):
			h.logger.Warn("POST /bookings - Date not selectable: user_id=%s, venue_id=%s, date=%s",
				principal.UserID, req.VenueID, req.Date)
			handlers.RespondConflict(w, msgDateNotSelectable)

		case errors.Is(err, createBooking.ErrQuoteMismatch):
			h.logger.Warn("POST /bookings - Quote mismatch: user_id=%s, venue_id=%s, error=%v",
				principal.UserID, req.VenueID, err)
			handlers.RespondConflict(w, msgQuoteMismatch)

		case errors.Is(err, createBooking.ErrPaymentMethodRequired):
			h.logger.Warn("POST /bookings - Payment method missing: user_id=%s", principal.UserID)
			handlers.RespondBadRequest(w, msgPaymentMethodRequired)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%s, venue_id=%s, error=%v",
				principal.UserID, req.VenueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, user_id=%s, venue_id=%s",
		result.Booking.ID, principal.UserID, req.VenueID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
