package get_quote

import (
	"github.com/m04kA/VenueBookingService/internal/domain"
	getQuote "github.com/m04kA/VenueBookingService/internal/usecase/get_quote"
	"github.com/m04kA/VenueBookingService/pkg/types"
)

// QuoteResponse HTTP response model
type QuoteResponse struct {
	VenueID   string        `json:"venueId"`
	VenueName string        `json:"venueName"`
	Today     types.Date    `json:"today"`
	Date      *types.Date   `json:"date,omitempty"`
	Price     PriceResponse `json:"price"`
}

// PriceResponse строки расчета; без даты только базовая стоимость и итог
type PriceResponse struct {
	BaseCost           types.Money  `json:"baseCost"`
	Tax                *types.Money `json:"tax,omitempty"`
	Subtotal           *types.Money `json:"subtotal,omitempty"`
	DiscountName       *string      `json:"discountName,omitempty"`
	DiscountPercentage *float64     `json:"discountPercentage,omitempty"` // 30 для 30%
	DiscountAmount     *types.Money `json:"discountAmount,omitempty"`
	FinalCost          types.Money  `json:"finalCost"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getQuote.Response) *QuoteResponse {
	return &QuoteResponse{
		VenueID:   resp.VenueID,
		VenueName: resp.VenueName,
		Today:     resp.Today,
		Date:      resp.Quote.Date,
		Price:     fromQuote(resp.Quote),
	}
}

func fromQuote(q domain.PriceQuote) PriceResponse {
	price := PriceResponse{
		BaseCost:  types.NewMoney(q.BaseCost),
		FinalCost: types.NewMoney(q.FinalCost),
	}
	if q.Date == nil {
		return price
	}

	tax := types.NewMoney(q.Tax)
	subtotal := types.NewMoney(q.Subtotal)
	price.Tax = &tax
	price.Subtotal = &subtotal

	if q.HasDiscount() {
		name := q.DiscountName
		pct := q.DiscountPercentage.Shift(2).InexactFloat64()
		amount := types.NewMoney(q.DiscountAmount)
		price.DiscountName = &name
		price.DiscountPercentage = &pct
		price.DiscountAmount = &amount
	}

	return price
}
