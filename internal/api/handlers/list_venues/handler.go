package list_venues

import (
	"net/http"

	"github.com/m04kA/VenueBookingService/internal/api/handlers"
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

// Handle GET /api/v1/venues?location=Hyderabad%20(West)
// Пустой location или "All" возвращают все площадки
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	location := r.URL.Query().Get("location")

	result, err := h.service.ListVenues(r.Context(), location)
	if err != nil {
		h.logger.Error("GET /venues - Failed to list venues: location=%q, error=%v", location, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /venues - Venues listed: location=%q, count=%d", location, len(result.Venues))
	handlers.RespondJSON(w, http.StatusOK, result)
}
