package get_venue

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/VenueBookingService/internal/api/handlers"
	"github.com/m04kA/VenueBookingService/internal/service/catalog"
)

const (
	msgVenueNotFound = "площадка не найдена"
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

// Handle GET /api/v1/venues/{venueId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venueID := mux.Vars(r)["venueId"]

	venue, err := h.service.GetVenue(r.Context(), venueID)
	if err != nil {
		if errors.Is(err, catalog.ErrVenueNotFound) {
			h.logger.Warn("GET /venues/{id} - Venue not found: venue_id=%s", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)
			return
		}
		h.logger.Error("GET /venues/{id} - Failed to get venue: venue_id=%s, error=%v", venueID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /venues/{id} - Venue retrieved: venue_id=%s", venueID)
	handlers.RespondJSON(w, http.StatusOK, venue)
}
