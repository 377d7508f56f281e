package domain

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/VenueBookingService/pkg/types"
)

// DiscountTier именованная скидка, зависящая от того, насколько заранее сделано бронирование
type DiscountTier struct {
	Name       string
	Percentage decimal.Decimal
}

// PriceQuote расчет стоимости площадки на выбранную дату
// Без даты содержит только базовую стоимость: Tax = 0, скидки нет, FinalCost = BaseCost
type PriceQuote struct {
	Date               *types.Date
	BaseCost           decimal.Decimal
	Tax                decimal.Decimal
	Subtotal           decimal.Decimal
	DiscountName       string
	DiscountPercentage decimal.Decimal
	DiscountAmount     decimal.Decimal
	FinalCost          decimal.Decimal
}

// HasDiscount true, если в расчете есть строка скидки
func (q PriceQuote) HasDiscount() bool {
	return q.DiscountName != ""
}
