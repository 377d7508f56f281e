package catalog

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/m04kA/VenueBookingService/internal/domain"
	catalogRepo "github.com/m04kA/VenueBookingService/internal/infra/storage/catalog"
	"github.com/m04kA/VenueBookingService/internal/service/catalog/models"
)

// Service сервис каталога: площадки, концерты, мастер-классы и организаторы
type Service struct {
	catalogRepo CatalogRepository
	orderRepo   OrderRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalogRepo CatalogRepository, orderRepo OrderRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		orderRepo:   orderRepo,
		logger:      logger,
	}
}

// ListVenues возвращает площадки, отфильтрованные по локации
// Пустая локация и "All" означают все площадки
func (s *Service) ListVenues(ctx context.Context, location string) (*models.VenueListResponse, error) {
	location = strings.TrimSpace(location)
	s.logger.Info("ListVenues: location=%q", location)

	venues, err := s.catalogRepo.ListVenues(ctx)
	if err != nil {
		s.logger.Error("ListVenues: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListVenues - repository error: %v", ErrInternal, err)
	}

	resp := &models.VenueListResponse{Venues: make([]models.VenueResponse, 0, len(venues))}
	for _, v := range venues {
		if v.MatchesLocation(location) {
			resp.Venues = append(resp.Venues, models.FromDomainVenue(v))
		}
	}

	s.logger.Info("ListVenues: %d of %d venues match", len(resp.Venues), len(venues))
	return resp, nil
}

func (s *Service) GetVenue(ctx context.Context, id string) (*models.VenueResponse, error) {
	venue, err := s.catalogRepo.GetVenue(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrVenueNotFound) {
			s.logger.Warn("GetVenue: venue id=%s not found", id)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("GetVenue: repository error for venue id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetVenue - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainVenue(venue)
	return &resp, nil
}

// ListLocations значения фильтра локаций: "All" и все локации каталога по алфавиту
func (s *Service) ListLocations(ctx context.Context) (*models.LocationListResponse, error) {
	venues, err := s.catalogRepo.ListVenues(ctx)
	if err != nil {
		s.logger.Error("ListLocations: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListLocations - repository error: %v", ErrInternal, err)
	}

	locations := make([]string, 0, len(venues))
	for _, v := range venues {
		if !slices.Contains(locations, v.Location) {
			locations = append(locations, v.Location)
		}
	}
	slices.Sort(locations)

	return &models.LocationListResponse{Locations: append([]string{domain.LocationAll}, locations...)}, nil
}

func (s *Service) ListConcerts(ctx context.Context) (*models.ConcertListResponse, error) {
	concerts, err := s.catalogRepo.ListConcerts(ctx)
	if err != nil {
		s.logger.Error("ListConcerts: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListConcerts - repository error: %v", ErrInternal, err)
	}

	resp := &models.ConcertListResponse{Concerts: make([]models.ConcertResponse, 0, len(concerts))}
	for _, c := range concerts {
		resp.Concerts = append(resp.Concerts, models.FromDomainConcert(c))
	}
	return resp, nil
}

func (s *Service) ListWorkshops(ctx context.Context) (*models.WorkshopListResponse, error) {
	workshops, err := s.catalogRepo.ListWorkshops(ctx)
	if err != nil {
		s.logger.Error("ListWorkshops: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListWorkshops - repository error: %v", ErrInternal, err)
	}

	resp := &models.WorkshopListResponse{Workshops: make([]models.WorkshopResponse, 0, len(workshops))}
	for _, w := range workshops {
		resp.Workshops = append(resp.Workshops, models.FromDomainWorkshop(w))
	}
	return resp, nil
}

func (s *Service) ListEventManagers(ctx context.Context) (*models.EventManagerListResponse, error) {
	managers, err := s.catalogRepo.ListEventManagers(ctx)
	if err != nil {
		s.logger.Error("ListEventManagers: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListEventManagers - repository error: %v", ErrInternal, err)
	}

	resp := &models.EventManagerListResponse{EventManagers: make([]models.EventManagerResponse, 0, len(managers))}
	for _, m := range managers {
		resp.EventManagers = append(resp.EventManagers, models.FromDomainEventManager(m))
	}
	return resp, nil
}

// ListJobOpenings открытые вакансии
func (s *Service) ListJobOpenings(ctx context.Context) (*models.JobOpeningListResponse, error) {
	jobs, err := s.catalogRepo.ListJobOpenings(ctx)
	if err != nil {
		s.logger.Error("ListJobOpenings: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListJobOpenings - repository error: %v", ErrInternal, err)
	}

	resp := &models.JobOpeningListResponse{JobOpenings: make([]models.JobOpeningResponse, 0, len(jobs))}
	for _, j := range jobs {
		resp.JobOpenings = append(resp.JobOpenings, models.FromDomainJobOpening(j))
	}
	return resp, nil
}

// BookConcertTickets оформляет билеты на концерт
// На каждый билет нужен посетитель; VIP-билет стоит в 1.5 раза дороже
func (s *Service) BookConcertTickets(ctx context.Context, req *models.BookTicketsRequest) (*models.TicketOrderResponse, error) {
	s.logger.Info("BookConcertTickets: concert=%s, user=%s, seat=%s, quantity=%d",
		req.ConcertID, req.UserID, req.SeatType, req.Quantity)

	if err := validateTicketRequest(req); err != nil {
		s.logger.Warn("BookConcertTickets: validation failed: %v", err)
		return nil, err
	}

	concert, err := s.catalogRepo.GetConcert(ctx, req.ConcertID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrConcertNotFound) {
			s.logger.Warn("BookConcertTickets: concert id=%s not found", req.ConcertID)
			return nil, ErrConcertNotFound
		}
		s.logger.Error("BookConcertTickets: repository error for concert id=%s: %v", req.ConcertID, err)
		return nil, fmt.Errorf("%w: BookConcertTickets - repository error: %v", ErrInternal, err)
	}

	seat := domain.SeatType(req.SeatType)
	unitPrice := seat.UnitPrice(concert.Price)

	attendees := make([]domain.Attendee, 0, len(req.Attendees))
	for _, a := range req.Attendees {
		attendees = append(attendees, domain.Attendee{
			Name:  strings.TrimSpace(a.Name),
			Email: strings.TrimSpace(a.Email),
		})
	}

	order, err := s.orderRepo.CreateTicketOrder(ctx, &domain.TicketOrder{
		ConcertID:   concert.ID,
		ConcertName: concert.Name,
		UserID:      req.UserID,
		SeatType:    seat,
		Quantity:    req.Quantity,
		UnitPrice:   unitPrice,
		TotalPrice:  unitPrice.Mul(decimal.NewFromInt(int64(req.Quantity))),
		Attendees:   attendees,
	})
	if err != nil {
		s.logger.Error("BookConcertTickets: failed to save order: %v", err)
		return nil, fmt.Errorf("%w: BookConcertTickets - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("BookConcertTickets: order id=%s, total=%s", order.ID, order.TotalPrice.StringFixed(2))
	return models.FromDomainTicketOrder(order), nil
}

// RegisterWorkshop регистрирует посетителя на мастер-класс
func (s *Service) RegisterWorkshop(ctx context.Context, req *models.RegisterWorkshopRequest) (*models.WorkshopRegistrationResponse, error) {
	s.logger.Info("RegisterWorkshop: workshop=%s", req.WorkshopID)

	if err := validateRegistrationRequest(req); err != nil {
		s.logger.Warn("RegisterWorkshop: validation failed: %v", err)
		return nil, err
	}

	workshop, err := s.catalogRepo.GetWorkshop(ctx, req.WorkshopID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrWorkshopNotFound) {
			s.logger.Warn("RegisterWorkshop: workshop id=%s not found", req.WorkshopID)
			return nil, ErrWorkshopNotFound
		}
		s.logger.Error("RegisterWorkshop: repository error for workshop id=%s: %v", req.WorkshopID, err)
		return nil, fmt.Errorf("%w: RegisterWorkshop - repository error: %v", ErrInternal, err)
	}

	reg, err := s.orderRepo.CreateWorkshopRegistration(ctx, &domain.WorkshopRegistration{
		WorkshopID:    workshop.ID,
		WorkshopTitle: workshop.Title,
		Name:          strings.TrimSpace(req.Name),
		Email:         strings.TrimSpace(req.Email),
	})
	if err != nil {
		s.logger.Error("RegisterWorkshop: failed to save registration: %v", err)
		return nil, fmt.Errorf("%w: RegisterWorkshop - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RegisterWorkshop: registration id=%s for workshop=%s", reg.ID, workshop.ID)
	return models.FromDomainWorkshopRegistration(reg), nil
}
