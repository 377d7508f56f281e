package models

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/VenueBookingService/internal/domain"
	"github.com/m04kA/VenueBookingService/pkg/types"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID             uuid.UUID `json:"-"`
	CancellationReason string    `json:"cancellationReason"`
}

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID uuid.UUID `json:"-"`
	Status *string   `json:"status,omitempty"`
}

// Response модели

// PriceBreakdownResponse строки расчета стоимости
type PriceBreakdownResponse struct {
	BaseCost           types.Money `json:"baseCost"`
	Tax                types.Money `json:"tax"`
	Subtotal           types.Money `json:"subtotal"`
	DiscountName       *string     `json:"discountName,omitempty"`
	DiscountPercentage *float64    `json:"discountPercentage,omitempty"` // 30 для 30%
	DiscountAmount     types.Money `json:"discountAmount"`
	FinalCost          types.Money `json:"finalCost"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            uuid.UUID  `json:"id"`
	VenueID       string     `json:"venueId"`
	VenueName     string     `json:"venueName"`
	UserEmail     string     `json:"userEmail"`
	Date          types.Date `json:"date"` // "2025-10-15"
	PaymentMethod string     `json:"paymentMethod"`
	InvoiceNumber int        `json:"invoiceNumber"`
	Status        string     `json:"status"`

	Price PriceBreakdownResponse `json:"price"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainQuote конвертирует смету в DTO
func FromDomainQuote(q domain.PriceQuote) PriceBreakdownResponse {
	resp := PriceBreakdownResponse{
		BaseCost:       types.NewMoney(q.BaseCost),
		Tax:            types.NewMoney(q.Tax),
		Subtotal:       types.NewMoney(q.Subtotal),
		DiscountAmount: types.NewMoney(q.DiscountAmount),
		FinalCost:      types.NewMoney(q.FinalCost),
	}

	if q.HasDiscount() {
		name := q.DiscountName
		pct := q.DiscountPercentage.Shift(2).InexactFloat64()
		resp.DiscountName = &name
		resp.DiscountPercentage = &pct
	}

	return resp
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:            b.ID,
		VenueID:       b.VenueID,
		VenueName:     b.VenueName,
		UserEmail:     b.UserEmail,
		Date:          b.Date,
		PaymentMethod: string(b.PaymentMethod),
		InvoiceNumber: b.InvoiceNumber,
		Status:        string(b.Status),
		Price: FromDomainQuote(domain.PriceQuote{
			BaseCost:           b.BaseCost,
			Tax:                b.Tax,
			Subtotal:           b.BaseCost.Add(b.Tax),
			DiscountName:       b.DiscountName,
			DiscountPercentage: b.DiscountPercentage,
			DiscountAmount:     b.DiscountAmount,
			FinalCost:          b.FinalCost,
		}),
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	if !domain.IsValidBookingStatus(status) {
		return "", ErrInvalidStatus
	}
	return domain.BookingStatus(status), nil
}
