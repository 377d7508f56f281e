package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/VenueBookingService/internal/domain"
	"github.com/m04kA/VenueBookingService/pkg/types"
)

// ValidateBaseCost проверяет предусловие baseCost > 0
func ValidateBaseCost(baseCost decimal.Decimal) error {
	if !baseCost.IsPositive() {
		return fmt.Errorf("%w: base cost must be positive, got %s", ErrInvalidInput, baseCost)
	}
	return nil
}

// TierFor выбирает скидку по удаленности даты от today; побеждает первое совпадение:
//  1. today+2 мес <= date <= today+12 мес - Super Early Bird
//  2. date >= today+1 мес - Early Bird
//  3. иначе - First Booking
func TierFor(candidate, today types.Date) domain.DiscountTier {
	superFrom := today.AddMonths(domain.SuperEarlyBirdMinMonths)
	superTo := today.AddMonths(domain.SuperEarlyBirdMaxMonths)

	if !candidate.Before(superFrom) && !candidate.After(superTo) {
		return domain.TierSuperEarlyBird
	}
	if !candidate.Before(today.AddMonths(domain.EarlyBirdMinMonths)) {
		return domain.TierEarlyBird
	}
	return domain.TierFirstBooking
}

// ComputeQuote рассчитывает стоимость площадки
// Без даты возвращается только базовая стоимость.
// С датой: tax = base*18%, subtotal = base+tax, discount = subtotal*pct, final = subtotal-discount
func ComputeQuote(baseCost decimal.Decimal, candidate *types.Date, today types.Date) domain.PriceQuote {
	if candidate == nil {
		return domain.PriceQuote{
			BaseCost:           baseCost,
			Tax:                decimal.Zero,
			Subtotal:           baseCost,
			DiscountPercentage: decimal.Zero,
			DiscountAmount:     decimal.Zero,
			FinalCost:          baseCost,
		}
	}

	date := *candidate
	tier := TierFor(date, today)

	tax := baseCost.Mul(domain.TaxRate)
	subtotal := baseCost.Add(tax)
	discount := subtotal.Mul(tier.Percentage)

	return domain.PriceQuote{
		Date:               &date,
		BaseCost:           baseCost,
		Tax:                tax,
		Subtotal:           subtotal,
		DiscountName:       tier.Name,
		DiscountPercentage: tier.Percentage,
		DiscountAmount:     discount,
		FinalCost:          subtotal.Sub(discount),
	}
}
