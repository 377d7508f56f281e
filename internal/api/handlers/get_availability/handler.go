package get_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/VenueBookingService/internal/api/handlers"
	getAvailability "github.com/m04kA/VenueBookingService/internal/usecase/get_availability"
	"github.com/m04kA/VenueBookingService/pkg/types"
)

const (
	msgInvalidFrom    = "некорректный параметр from, ожидается YYYY-MM-DD"
	msgInvalidTo      = "некорректный параметр to, ожидается YYYY-MM-DD"
	msgInvalidRange   = "некорректный период: from должен быть не позже to, не более 366 дней"
	msgInvalidRequest = "некорректный запрос"
	msgVenueNotFound  = "площадка не найдена"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/availability?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venueID := mux.Vars(r)["venueId"]
	query := r.URL.Query()

	req := &getAvailability.Request{VenueID: venueID}

	if raw := query.Get("from"); raw != "" {
		from, err := types.ParseDate(raw)
		if err != nil {
			h.logger.Warn("GET /venues/{id}/availability - Invalid from: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidFrom)
			return
		}
		req.From = &from
	}

	if raw := query.Get("to"); raw != "" {
		to, err := types.ParseDate(raw)
		if err != nil {
			h.logger.Warn("GET /venues/{id}/availability - Invalid to: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidTo)
			return
		}
		req.To = &to
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrVenueNotFound):
			h.logger.Warn("GET /venues/{id}/availability - Venue not found: venue_id=%s", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, getAvailability.ErrInvalidRange):
			h.logger.Warn("GET /venues/{id}/availability - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /venues/{id}/availability - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /venues/{id}/availability - Failed to build calendar: venue_id=%s, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /venues/{id}/availability - Calendar built: venue_id=%s, days=%d",
		venueID, len(result.Calendar.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
