package send_contact_message

import (
	"errors"
	"net/http"

	"github.com/m04kA/VenueBookingService/internal/api/handlers"
	"github.com/m04kA/VenueBookingService/internal/service/inquiries"
	"github.com/m04kA/VenueBookingService/internal/service/inquiries/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRequest     = "проверьте имя, email, тему (не короче 5 символов) и сообщение (не короче 10 символов)"
)

type Handler struct {
	service InquiryService
	logger  Logger
}

func NewHandler(service InquiryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/contact
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.ContactMessageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /contact - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	msg, err := h.service.SendContactMessage(r.Context(), &req)
	if err != nil {
		if errors.Is(err, inquiries.ErrInvalidInput) {
			h.logger.Warn("POST /contact - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)
			return
		}
		h.logger.Error("POST /contact - Failed to save message: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /contact - Message accepted: message_id=%s", msg.ID)
	handlers.RespondJSON(w, http.StatusCreated, msg)
}
