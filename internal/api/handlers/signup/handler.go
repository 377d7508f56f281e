package signup

import (
	"errors"
	"net/http"

	"github.com/m04kA/VenueBookingService/internal/api/handlers"
	"github.com/m04kA/VenueBookingService/internal/service/auth"
	"github.com/m04kA/VenueBookingService/internal/service/auth/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidEmail       = "некорректный email"
	msgWeakPassword       = "пароль должен быть не короче 8 символов и содержать строчные и заглавные буквы, цифру и спецсимвол"
	msgUserExists         = "пользователь с таким email уже зарегистрирован"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/signup
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CredentialsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/signup - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.service.Signup(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidInput):
			h.logger.Warn("POST /auth/signup - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidEmail)

		case errors.Is(err, auth.ErrWeakPassword):
			h.logger.Warn("POST /auth/signup - Weak password")
			handlers.RespondBadRequest(w, msgWeakPassword)

		case errors.Is(err, auth.ErrUserAlreadyExists):
			h.logger.Warn("POST /auth/signup - User already exists")
			handlers.RespondConflict(w, msgUserExists)

		default:
			h.logger.Error("POST /auth/signup - Failed to sign up: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/signup - User registered: user_id=%s", session.User.ID)
	handlers.RespondJSON(w, http.StatusCreated, session)
}
