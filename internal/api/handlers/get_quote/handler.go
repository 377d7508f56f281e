package get_quote

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/VenueBookingService/internal/api/handlers"
	getQuote "github.com/m04kA/VenueBookingService/internal/usecase/get_quote"
	"github.com/m04kA/VenueBookingService/pkg/types"
)

const (
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRequest    = "некорректный запрос"
	msgVenueNotFound     = "площадка не найдена"
	msgDateNotSelectable = "дата недоступна для бронирования"
)

type Handler struct {
	useCase GetQuoteUseCase
	logger  Logger
}

func NewHandler(useCase GetQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/quote?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venueID := mux.Vars(r)["venueId"]

	req := &getQuote.Request{VenueID: venueID}

	// Дата опциональна: без нее возвращается базовая стоимость
	if raw := r.URL.Query().Get("date"); raw != "" {
		date, err := types.ParseDate(raw)
		if err != nil {
			h.logger.Warn("GET /venues/{id}/quote - Invalid date: venue_id=%s, date=%q", venueID, raw)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getQuote.ErrVenueNotFound):
			h.logger.Warn("GET /venues/{id}/quote - Venue not found: venue_id=%s", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, getQuote.ErrDateNotSelectable):
			h.logger.Warn("GET /venues/{id}/quote - Date not selectable: venue_id=%s, error=%v", venueID, err)
			handlers.RespondUnprocessable(w, msgDateNotSelectable)

		case errors.Is(err, getQuote.ErrInvalidInput):
			h.logger.Warn("GET /venues/{id}/quote - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /venues/{id}/quote - Failed to compute quote: venue_id=%s, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /venues/{id}/quote - Quote computed: venue_id=%s, final=%s",
		venueID, result.Quote.FinalCost.StringFixed(2))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
