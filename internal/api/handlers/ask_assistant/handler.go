package ask_assistant

import (
	"errors"
	"net/http"

	"github.com/m04kA/VenueBookingService/internal/api/handlers"
	askAssistant "github.com/m04kA/VenueBookingService/internal/usecase/ask_assistant"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidQuery       = "вопрос должен содержать от 1 до 1000 символов"
	msgUnavailable        = "ассистент временно недоступен, попробуйте позже"
)

type Handler struct {
	useCase AskAssistantUseCase
	logger  Logger
}

func NewHandler(useCase AskAssistantUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/assistant/ask
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AskRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /assistant/ask - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &askAssistant.Request{Query: req.Query})
	if err != nil {
		switch {
		case errors.Is(err, askAssistant.ErrInvalidInput):
			h.logger.Warn("POST /assistant/ask - Invalid query: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		case errors.Is(err, askAssistant.ErrAssistantUnavailable):
			h.logger.Warn("POST /assistant/ask - Assistant unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgUnavailable)

		default:
			h.logger.Error("POST /assistant/ask - Failed to answer: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /assistant/ask - Answered: answer_len=%d", len(result.Answer))
	handlers.RespondJSON(w, http.StatusOK, &AskResponse{Answer: result.Answer})
}
