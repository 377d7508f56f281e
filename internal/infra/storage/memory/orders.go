package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/VenueBookingService/internal/domain"
)

// Orders заказы билетов, регистрации на мастер-классы, обращения и отклики в памяти
type Orders struct {
	mu            sync.Mutex
	tickets       []domain.TicketOrder
	registrations []domain.WorkshopRegistration
	messages      map[uuid.UUID]domain.ContactMessage
	applications  map[uuid.UUID]domain.JobApplication
}

func NewOrders() *Orders {
	return &Orders{
		messages:     make(map[uuid.UUID]domain.ContactMessage),
		applications: make(map[uuid.UUID]domain.JobApplication),
	}
}

func (s *Orders) CreateTicketOrder(_ context.Context, order *domain.TicketOrder) (*domain.TicketOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	order.CreatedAt = time.Now()

	stored := *order
	stored.Attendees = append([]domain.Attendee(nil), order.Attendees...)
	s.tickets = append(s.tickets, stored)
	return order, nil
}

func (s *Orders) CreateWorkshopRegistration(_ context.Context, reg *domain.WorkshopRegistration) (*domain.WorkshopRegistration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if reg.ID == uuid.Nil {
		reg.ID = uuid.New()
	}
	reg.CreatedAt = time.Now()

	s.registrations = append(s.registrations, *reg)
	return reg, nil
}

func (s *Orders) CreateContactMessage(_ context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	msg.CreatedAt = time.Now()

	s.messages[msg.ID] = *msg
	return msg, nil
}

func (s *Orders) CreateJobApplication(_ context.Context, app *domain.JobApplication) (*domain.JobApplication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if app.ID == uuid.Nil {
		app.ID = uuid.New()
	}
	app.CreatedAt = time.Now()

	s.applications[app.ID] = *app
	return app, nil
}

// ContactMessage сохраненное обращение по id
func (s *Orders) ContactMessage(id uuid.UUID) (domain.ContactMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg, ok := s.messages[id]
	return msg, ok
}

// JobApplication сохраненный отклик по id
func (s *Orders) JobApplication(id uuid.UUID) (domain.JobApplication, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	app, ok := s.applications[id]
	return app, ok
}
