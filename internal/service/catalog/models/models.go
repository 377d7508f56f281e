package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/VenueBookingService/internal/domain"
	"github.com/m04kA/VenueBookingService/pkg/types"
)

// Request модели

// AttendeeRequest посетитель в заказе билетов
type AttendeeRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// BookTicketsRequest заказ билетов на концерт
type BookTicketsRequest struct {
	UserID    uuid.UUID         `json:"-"`
	ConcertID string            `json:"-"`
	SeatType  string            `json:"seatType"` // general | vip
	Quantity  int               `json:"quantity"`
	Attendees []AttendeeRequest `json:"attendees"`
}

// RegisterWorkshopRequest регистрация на мастер-класс
type RegisterWorkshopRequest struct {
	WorkshopID string `json:"-"`
	Name       string `json:"name"`
	Email      string `json:"email"`
}

// Response модели

// VenueResponse площадка каталога
type VenueResponse struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Location        string       `json:"location"`
	HallType        string       `json:"hallType"`
	BaseCost        types.Money  `json:"baseCost"`
	BookedDates     []types.Date `json:"bookedDates"`
	SupportedEvents []string     `json:"supportedEvents"`
	PreviousEvents  []string     `json:"previousEvents"`
	Images          []string     `json:"images"`
}

// VenueListResponse список площадок
type VenueListResponse struct {
	Venues []VenueResponse `json:"venues"`
}

// LocationListResponse список локаций для фильтра
type LocationListResponse struct {
	Locations []string `json:"locations"`
}

// ConcertResponse концерт
type ConcertResponse struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Artist   string      `json:"artist"`
	Date     types.Date  `json:"date"`
	Price    types.Money `json:"price"`
	VIPPrice types.Money `json:"vipPrice"`
	ImageURL string      `json:"imageUrl"`
	Venue    string      `json:"venue"`
}

// ConcertListResponse список концертов
type ConcertListResponse struct {
	Concerts []ConcertResponse `json:"concerts"`
}

// WorkshopResponse мастер-класс
type WorkshopResponse struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Instructor  string      `json:"instructor"`
	Date        types.Date  `json:"date"`
	Price       types.Money `json:"price"`
	Description string      `json:"description"`
	ImageURL    string      `json:"imageUrl"`
}

// WorkshopListResponse список мастер-классов
type WorkshopListResponse struct {
	Workshops []WorkshopResponse `json:"workshops"`
}

// EventManagerResponse организатор мероприятий
type EventManagerResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Phone           string   `json:"phone"`
	Specializations []string `json:"specializations"`
	Portfolio       []string `json:"portfolio"`
}

// EventManagerListResponse список организаторов
type EventManagerListResponse struct {
	EventManagers []EventManagerResponse `json:"eventManagers"`
}

// JobOpeningResponse вакансия
type JobOpeningResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Location    string `json:"location"`
	Package     string `json:"package"`
	Description string `json:"description"`
}

// JobOpeningListResponse список вакансий
type JobOpeningListResponse struct {
	JobOpenings []JobOpeningResponse `json:"jobOpenings"`
}

// TicketOrderResponse оформленный заказ билетов
type TicketOrderResponse struct {
	ID          uuid.UUID         `json:"id"`
	ConcertID   string            `json:"concertId"`
	ConcertName string            `json:"concertName"`
	SeatType    string            `json:"seatType"`
	Quantity    int               `json:"quantity"`
	UnitPrice   types.Money       `json:"unitPrice"`
	TotalPrice  types.Money       `json:"totalPrice"`
	Attendees   []AttendeeRequest `json:"attendees"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// WorkshopRegistrationResponse оформленная регистрация
type WorkshopRegistrationResponse struct {
	ID            uuid.UUID `json:"id"`
	WorkshopID    string    `json:"workshopId"`
	WorkshopTitle string    `json:"workshopTitle"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Методы конвертации

func FromDomainVenue(v *domain.Venue) VenueResponse {
	return VenueResponse{
		ID:              v.ID,
		Name:            v.Name,
		Location:        v.Location,
		HallType:        v.HallType,
		BaseCost:        types.NewMoney(v.BaseCost),
		BookedDates:     nonNil(v.BookedDates),
		SupportedEvents: nonNil(v.SupportedEvents),
		PreviousEvents:  nonNil(v.PreviousEvents),
		Images:          nonNil(v.Images),
	}
}

func FromDomainConcert(c *domain.Concert) ConcertResponse {
	return ConcertResponse{
		ID:       c.ID,
		Name:     c.Name,
		Artist:   c.Artist,
		Date:     c.Date,
		Price:    types.NewMoney(c.Price),
		VIPPrice: types.NewMoney(domain.SeatVIP.UnitPrice(c.Price)),
		ImageURL: c.ImageURL,
		Venue:    c.Venue,
	}
}

func FromDomainWorkshop(w *domain.Workshop) WorkshopResponse {
	return WorkshopResponse{
		ID:          w.ID,
		Title:       w.Title,
		Instructor:  w.Instructor,
		Date:        w.Date,
		Price:       types.NewMoney(w.Price),
		Description: w.Description,
		ImageURL:    w.ImageURL,
	}
}

func FromDomainEventManager(m *domain.EventManager) EventManagerResponse {
	return EventManagerResponse{
		ID:              m.ID,
		Name:            m.Name,
		Phone:           m.Phone,
		Specializations: nonNil(m.Specializations),
		Portfolio:       nonNil(m.Portfolio),
	}
}

func FromDomainJobOpening(j *domain.JobOpening) JobOpeningResponse {
	return JobOpeningResponse{
		ID:          j.ID,
		Title:       j.Title,
		Location:    j.Location,
		Package:     j.Package,
		Description: j.Description,
	}
}

func FromDomainTicketOrder(o *domain.TicketOrder) *TicketOrderResponse {
	attendees := make([]AttendeeRequest, 0, len(o.Attendees))
	for _, a := range o.Attendees {
		attendees = append(attendees, AttendeeRequest{Name: a.Name, Email: a.Email})
	}

	return &TicketOrderResponse{
		ID:          o.ID,
		ConcertID:   o.ConcertID,
		ConcertName: o.ConcertName,
		SeatType:    string(o.SeatType),
		Quantity:    o.Quantity,
		UnitPrice:   types.NewMoney(o.UnitPrice),
		TotalPrice:  types.NewMoney(o.TotalPrice),
		Attendees:   attendees,
		CreatedAt:   o.CreatedAt,
	}
}

func FromDomainWorkshopRegistration(r *domain.WorkshopRegistration) *WorkshopRegistrationResponse {
	return &WorkshopRegistrationResponse{
		ID:            r.ID,
		WorkshopID:    r.WorkshopID,
		WorkshopTitle: r.WorkshopTitle,
		Name:          r.Name,
		Email:         r.Email,
		CreatedAt:     r.CreatedAt,
	}
}

// nonNil пустой срез вместо nil, чтобы в JSON был [] а не null
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
