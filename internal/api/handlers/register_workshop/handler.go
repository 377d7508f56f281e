package register_workshop

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/VenueBookingService/internal/api/handlers"
	"github.com/m04kA/VenueBookingService/internal/service/catalog"
	"github.com/m04kA/VenueBookingService/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRequest     = "укажите имя (не короче 2 символов) и корректный email"
	msgWorkshopNotFound   = "мастер-класс не найден"
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

// Handle POST /api/v1/workshops/{workshopId}/registrations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	workshopID := mux.Vars(r)["workshopId"]

	var req models.RegisterWorkshopRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /workshops/{id}/registrations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.WorkshopID = workshopID

	registration, err := h.service.RegisterWorkshop(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrWorkshopNotFound):
			h.logger.Warn("POST /workshops/{id}/registrations - Workshop not found: workshop_id=%s", workshopID)
			handlers.RespondNotFound(w, msgWorkshopNotFound)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /workshops/{id}/registrations - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("POST /workshops/{id}/registrations - Failed to register: workshop_id=%s, error=%v", workshopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /workshops/{id}/registrations - Registered: registration_id=%s, workshop_id=%s",
		registration.ID, workshopID)
	handlers.RespondJSON(w, http.StatusCreated, registration)
}
