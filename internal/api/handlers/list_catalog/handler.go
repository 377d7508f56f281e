package list_catalog

import (
	"context"
	"net/http"

	"github.com/m04kA/VenueBookingService/internal/api/handlers"
)

// Handler справочные списки каталога, только чтение
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

// Locations GET /api/v1/locations
func (h *Handler) Locations(w http.ResponseWriter, r *http.Request) {
	respond(w, r, h.logger, "GET /locations", func(ctx context.Context) (interface{}, int, error) {
		resp, err := h.service.ListLocations(ctx)
		if err != nil {
			return nil, 0, err
		}
		return resp, len(resp.Locations), nil
	})
}

// Concerts GET /api/v1/concerts
func (h *Handler) Concerts(w http.ResponseWriter, r *http.Request) {
	respond(w, r, h.logger, "GET /concerts", func(ctx context.Context) (interface{}, int, error) {
		resp, err := h.service.ListConcerts(ctx)
		if err != nil {
			return nil, 0, err
		}
		return resp, len(resp.Concerts), nil
	})
}

// Workshops GET /api/v1/workshops
func (h *Handler) Workshops(w http.ResponseWriter, r *http.Request) {
	respond(w, r, h.logger, "GET /workshops", func(ctx context.Context) (interface{}, int, error) {
		resp, err := h.service.ListWorkshops(ctx)
		if err != nil {
			return nil, 0, err
		}
		return resp, len(resp.Workshops), nil
	})
}

// EventManagers GET /api/v1/event-managers
func (h *Handler) EventManagers(w http.ResponseWriter, r *http.Request) {
	respond(w, r, h.logger, "GET /event-managers", func(ctx context.Context) (interface{}, int, error) {
		resp, err := h.service.ListEventManagers(ctx)
		if err != nil {
			return nil, 0, err
		}
		return resp, len(resp.EventManagers), nil
	})
}

// JobOpenings GET /api/v1/careers
func (h *Handler) JobOpenings(w http.ResponseWriter, r *http.Request) {
	respond(w, r, h.logger, "GET /careers", func(ctx context.Context) (interface{}, int, error) {
		resp, err := h.service.ListJobOpenings(ctx)
		if err != nil {
			return nil, 0, err
		}
		return resp, len(resp.JobOpenings), nil
	})
}

func respond(w http.ResponseWriter, r *http.Request, logger Logger, route string,
	list func(ctx context.Context) (interface{}, int, error)) {
	result, count, err := list(r.Context())
	if err != nil {
		logger.Error("%s - Failed to list: %v", route, err)
		handlers.RespondInternalError(w)
		return
	}

	logger.Info("%s - Listed: count=%d", route, count)
	handlers.RespondJSON(w, http.StatusOK, result)
}
