package submit_job_application

import (
	"errors"
	"net/http"

	"github.com/m04kA/VenueBookingService/internal/api/handlers"
	"github.com/m04kA/VenueBookingService/internal/service/inquiries"
	"github.com/m04kA/VenueBookingService/internal/service/inquiries/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRequest     = "анкета заполнена некорректно"
	msgJobNotFound        = "вакансия не найдена"
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

// Handle POST /api/v1/careers/applications
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.JobApplicationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /careers/applications - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	app, err := h.service.SubmitJobApplication(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, inquiries.ErrJobOpeningNotFound):
			h.logger.Warn("POST /careers/applications - Job not found: job_id=%s", req.JobID)
			handlers.RespondNotFound(w, msgJobNotFound)

		case errors.Is(err, inquiries.ErrInvalidInput):
			h.logger.Warn("POST /careers/applications - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("POST /careers/applications - Failed to submit: job_id=%s, error=%v", req.JobID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /careers/applications - Submitted: application_id=%s, job_id=%s", app.ID, app.JobID)
	handlers.RespondJSON(w, http.StatusCreated, app)
}
