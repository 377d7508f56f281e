package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/m04kA/VenueBookingService/internal/domain"
	"github.com/m04kA/VenueBookingService/pkg/ptr"
	"github.com/m04kA/VenueBookingService/pkg/types"
)

var today = types.MustParseDate("2024-01-01")

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestTierFor_Boundaries(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		wantName  string
		wantPct   string
	}{
		{"exactly two months out", "2024-03-01", "Super Early Bird", "0.30"},
		{"exactly twelve months out", "2025-01-01", "Super Early Bird", "0.30"},
		{"just past twelve months", "2025-01-02", "Early Bird Offer", "0.20"},
		{"exactly one month out", "2024-02-01", "Early Bird Offer", "0.20"},
		{"day before two months", "2024-02-29", "Early Bird Offer", "0.20"},
		{"fifteen days out", "2024-01-15", "First Booking Offer", "0.15"},
		{"today", "2024-01-01", "First Booking Offer", "0.15"},
		{"day before one month", "2024-01-31", "First Booking Offer", "0.15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier := TierFor(types.MustParseDate(tt.candidate), today)

			assert.Equal(t, tt.wantName, tier.Name)
			assert.True(t, tier.Percentage.Equal(dec(tt.wantPct)), "got %s", tier.Percentage)
		})
	}
}

func TestTierFor_MonthEndClamping(t *testing.T) {
	// 31 января + 1 месяц = 29 февраля 2024
	jan31 := types.MustParseDate("2024-01-31")

	assert.Equal(t, domain.TierEarlyBird.Name, TierFor(types.MustParseDate("2024-02-29"), jan31).Name)
	assert.Equal(t, domain.TierFirstBooking.Name, TierFor(types.MustParseDate("2024-02-28"), jan31).Name)
	// 31 января + 2 месяца = 31 марта
	assert.Equal(t, domain.TierSuperEarlyBird.Name, TierFor(types.MustParseDate("2024-03-31"), jan31).Name)
	assert.Equal(t, domain.TierEarlyBird.Name, TierFor(types.MustParseDate("2024-03-30"), jan31).Name)
}

func TestComputeQuote_EndToEnd(t *testing.T) {
	q := ComputeQuote(dec("220000"), ptr.Ptr(types.MustParseDate("2024-03-01")), today)

	require.NotNil(t, q.Date)
	assert.Equal(t, "2024-03-01", q.Date.String())
	assert.True(t, q.BaseCost.Equal(dec("220000")))
	assert.True(t, q.Tax.Equal(dec("39600")), "tax %s", q.Tax)
	assert.True(t, q.Subtotal.Equal(dec("259600")), "subtotal %s", q.Subtotal)
	assert.Equal(t, "Super Early Bird", q.DiscountName)
	assert.True(t, q.DiscountPercentage.Equal(dec("0.30")))
	assert.True(t, q.DiscountAmount.Equal(dec("77880")), "discount %s", q.DiscountAmount)
	assert.True(t, q.FinalCost.Equal(dec("181720")), "final %s", q.FinalCost)
	assert.True(t, q.HasDiscount())
}

func TestComputeQuote_NoDate(t *testing.T) {
	q := ComputeQuote(dec("130000"), nil, today)

	assert.Nil(t, q.Date)
	assert.True(t, q.Tax.IsZero())
	assert.True(t, q.DiscountAmount.IsZero())
	assert.False(t, q.HasDiscount())
	assert.True(t, q.FinalCost.Equal(dec("130000")))
}

func TestComputeQuote_DoesNotAliasCandidate(t *testing.T) {
	candidate := types.MustParseDate("2024-03-01")
	q := ComputeQuote(dec("100"), &candidate, today)

	candidate = types.MustParseDate("2030-01-01")
	assert.Equal(t, "2024-03-01", q.Date.String())
}

func TestValidateBaseCost(t *testing.T) {
	assert.NoError(t, ValidateBaseCost(dec("0.01")))
	assert.ErrorIs(t, ValidateBaseCost(decimal.Zero), ErrInvalidInput)
	assert.ErrorIs(t, ValidateBaseCost(dec("-5")), ErrInvalidInput)
}

func genBaseCost(t *rapid.T) decimal.Decimal {
	// до двух знаков после запятой, как в рупиях с пайсами
	cents := rapid.Int64Range(1, 100_000_000_00).Draw(t, "baseCostCents")
	return decimal.New(cents, -2)
}

func TestComputeQuote_NoDateIsBasePrice(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		base := genBaseCost(t)
		offset := rapid.IntRange(-1000, 1000).Draw(t, "todayOffset")

		q := ComputeQuote(base, nil, today.AddDays(offset))

		if !q.FinalCost.Equal(base) {
			t.Fatalf("final %s != base %s", q.FinalCost, base)
		}
	})
}

func TestComputeQuote_FinalCostFormula(t *testing.T) {
	one := decimal.NewFromInt(1)
	factor := one.Add(domain.TaxRate)

	rapid.Check(t, func(t *rapid.T) {
		base := genBaseCost(t)
		now := today.AddDays(rapid.IntRange(-2000, 2000).Draw(t, "todayOffset"))
		candidate := now.AddDays(rapid.IntRange(0, 800).Draw(t, "daysAhead"))

		q := ComputeQuote(base, &candidate, now)

		want := base.Mul(factor).Mul(one.Sub(q.DiscountPercentage))
		if !q.FinalCost.Equal(want) {
			t.Fatalf("final %s != %s (tier %s)", q.FinalCost, want, q.DiscountName)
		}
		if !q.FinalCost.Equal(q.BaseCost.Add(q.Tax).Sub(q.DiscountAmount)) {
			t.Fatalf("final %s does not add up", q.FinalCost)
		}
		if q.DiscountName == "" {
			t.Fatalf("dated quote without a tier")
		}
	})
}

func TestComputeQuote_Deterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		base := genBaseCost(t)
		candidate := today.AddDays(rapid.IntRange(0, 800).Draw(t, "daysAhead"))

		a := ComputeQuote(base, &candidate, today)
		b := ComputeQuote(base, &candidate, today)

		if !a.FinalCost.Equal(b.FinalCost) || a.DiscountName != b.DiscountName {
			t.Fatalf("quotes differ: %v vs %v", a, b)
		}
	})
}

func TestComputeQuote_FinalNeverExceedsSubtotal(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		base := genBaseCost(t)
		candidate := today.AddDays(rapid.IntRange(0, 800).Draw(t, "daysAhead"))

		q := ComputeQuote(base, &candidate, today)

		if q.FinalCost.GreaterThan(q.Subtotal) {
			t.Fatalf("final %s > subtotal %s", q.FinalCost, q.Subtotal)
		}
		if !q.FinalCost.IsPositive() {
			t.Fatalf("final %s is not positive", q.FinalCost)
		}
	})
}

// До today+12 мес скидка не уменьшается с удалением даты
func TestTierFor_MonotonicWithinYear(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		now := today.AddDays(rapid.IntRange(-2000, 2000).Draw(t, "todayOffset"))
		span := now.DaysUntil(now.AddMonths(domain.SuperEarlyBirdMaxMonths))
		near := rapid.IntRange(0, span).Draw(t, "near")
		far := rapid.IntRange(near, span).Draw(t, "far")

		nearPct := TierFor(now.AddDays(near), now).Percentage
		farPct := TierFor(now.AddDays(far), now).Percentage

		if farPct.LessThan(nearPct) {
			t.Fatalf("day +%d got %s, day +%d got %s", far, farPct, near, nearPct)
		}
	})
}
