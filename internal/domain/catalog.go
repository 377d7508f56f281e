package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/VenueBookingService/pkg/types"
)

// Concert концерт из каталога
type Concert struct {
	ID       string
	Name     string
	Artist   string
	Date     types.Date
	Price    decimal.Decimal
	ImageURL string
	Venue    string
}

// SeatType тип места на концерте
type SeatType string

const (
	SeatGeneral SeatType = "general"
	SeatVIP     SeatType = "vip"
)

func (s SeatType) IsValid() bool {
	return s == SeatGeneral || s == SeatVIP
}

// UnitPrice цена одного билета с учетом типа места
func (s SeatType) UnitPrice(base decimal.Decimal) decimal.Decimal {
	if s == SeatVIP {
		return base.Mul(VIPPriceMultiplier)
	}
	return base
}

// Attendee посетитель, на которого оформлен билет
type Attendee struct {
	Name  string
	Email string
}

// TicketOrder заказ билетов на концерт
type TicketOrder struct {
	ID          uuid.UUID
	ConcertID   string
	ConcertName string
	UserID      uuid.UUID
	SeatType    SeatType
	Quantity    int
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
	Attendees   []Attendee
	CreatedAt   time.Time
}

// Workshop мастер-класс из каталога
type Workshop struct {
	ID          string
	Title       string
	Instructor  string
	Date        types.Date
	Price       decimal.Decimal
	Description string
	ImageURL    string
}

// WorkshopRegistration регистрация на мастер-класс
type WorkshopRegistration struct {
	ID            uuid.UUID
	WorkshopID    string
	WorkshopTitle string
	Name          string
	Email         string
	CreatedAt     time.Time
}

// EventManager организатор мероприятий
type EventManager struct {
	ID              string
	Name            string
	Phone           string
	Specializations []string
	Portfolio       []string
}
