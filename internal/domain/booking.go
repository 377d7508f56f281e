package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/VenueBookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed       BookingStatus = "confirmed"
	StatusCancelledByUser BookingStatus = "cancelled_by_user"
)

// PaymentMethod способ оплаты, выбранный при подтверждении (оплата не проводится)
type PaymentMethod string

const (
	PaymentCard       PaymentMethod = "card"
	PaymentUPI        PaymentMethod = "upi"
	PaymentNetBanking PaymentMethod = "netbanking"
)

// IsValid reports whether the payment method is one of the supported ones
func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentCard, PaymentUPI, PaymentNetBanking:
		return true
	}
	return false
}

// Booking represents a confirmed venue booking
type Booking struct {
	ID            uuid.UUID
	VenueID       string
	UserID        uuid.UUID
	Date          types.Date
	PaymentMethod PaymentMethod
	InvoiceNumber int
	Status        BookingStatus

	// Denormalized data for history
	VenueName          string
	UserEmail          string
	BaseCost           decimal.Decimal
	Tax                decimal.Decimal
	DiscountName       string
	DiscountPercentage decimal.Decimal
	DiscountAmount     decimal.Decimal
	FinalCost          decimal.Decimal

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ApplyQuote копирует строки расчета в бронирование
func (b *Booking) ApplyQuote(q PriceQuote) {
	b.BaseCost = q.BaseCost
	b.Tax = q.Tax
	b.DiscountName = q.DiscountName
	b.DiscountPercentage = q.DiscountPercentage
	b.DiscountAmount = q.DiscountAmount
	b.FinalCost = q.FinalCost
}

// IsActive returns true if the booking still holds its date
func (b *Booking) IsActive() bool {
	return b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking is active and the event is at least
// noticeDays away from today
func (b *Booking) CanBeCancelled(today types.Date, noticeDays int) bool {
	return b.IsActive() && today.DaysUntil(b.Date) >= noticeDays
}

// IsValidBookingStatus проверяет строковое значение статуса
func IsValidBookingStatus(s string) bool {
	switch BookingStatus(s) {
	case StatusConfirmed, StatusCancelledByUser:
		return true
	}
	return false
}
