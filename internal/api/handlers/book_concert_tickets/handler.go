package book_concert_tickets

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/VenueBookingService/internal/api/handlers"
	"github.com/m04kA/VenueBookingService/internal/api/middleware"
	"github.com/m04kA/VenueBookingService/internal/service/catalog"
	"github.com/m04kA/VenueBookingService/internal/service/catalog/models"
)

const (
	msgMissingUser        = "требуется авторизация"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidOrder       = "некорректные данные заказа: тип места general или vip, от 1 до 10 билетов, имя и email для каждого посетителя"
	msgConcertNotFound    = "концерт не найден"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/concerts/{concertId}/tickets
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	concertID := mux.Vars(r)["concertId"]

	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /concerts/{id}/tickets - Missing principal")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req models.BookTicketsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /concerts/{id}/tickets - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = principal.UserID
	req.ConcertID = concertID

	order, err := h.service.BookConcertTickets(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrConcertNotFound):
			h.logger.Warn("POST /concerts/{id}/tickets - Concert not found: concert_id=%s", concertID)
			handlers.RespondNotFound(w, msgConcertNotFound)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /concerts/{id}/tickets - Invalid order: %v", err)
			handlers.RespondBadRequest(w, msgInvalidOrder)

		default:
			h.logger.Error("POST /concerts/{id}/tickets - Failed to book tickets: concert_id=%s, error=%v", concertID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /concerts/{id}/tickets - Tickets booked: order_id=%s, concert_id=%s, quantity=%d",
		order.ID, concertID, order.Quantity)
	handlers.RespondJSON(w, http.StatusCreated, order)
}
