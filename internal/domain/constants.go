package domain

import "github.com/shopspring/decimal"

// Pricing constants
var (
	// TaxRate ставка налога, применяемая к базовой стоимости при выбранной дате
	TaxRate = decimal.RequireFromString("0.18")

	// VIPPriceMultiplier множитель цены VIP-билета
	VIPPriceMultiplier = decimal.RequireFromString("1.5")
)

// Discount tiers
var (
	TierSuperEarlyBird = DiscountTier{Name: "Super Early Bird", Percentage: decimal.RequireFromString("0.30")}
	TierEarlyBird      = DiscountTier{Name: "Early Bird Offer", Percentage: decimal.RequireFromString("0.20")}
	TierFirstBooking   = DiscountTier{Name: "First Booking Offer", Percentage: decimal.RequireFromString("0.15")}
)

// Tier distances in calendar months from today
const (
	SuperEarlyBirdMinMonths = 2
	SuperEarlyBirdMaxMonths = 12
	EarlyBirdMinMonths      = 1
)

// Business validation constants
const (
	DefaultHorizonEnd             = "2026-12-31"
	DefaultTimezone               = "Asia/Kolkata"
	DefaultCancellationNoticeDays = 14
	DefaultAvailabilityMonths     = 1
	MaxAvailabilityRangeDays      = 366

	MinTicketsPerOrder = 1
	MaxTicketsPerOrder = 10

	MinNameLength               = 2
	MinContactSubjectLength     = 5
	MinContactMessageLength     = 10
	MinPhoneLength              = 10
	MaxPhoneLength              = 15
	MinEducationLength          = 2
	MinPreviousExperienceLength = 10
	MinCoverLetterLength        = 20
	MinPasswordLength           = 8
	MaxCancellationReasonLength = 500
	MaxAssistantQueryLength     = 1000

	InvoiceNumberMin = 1000
	InvoiceNumberMax = 9999
)

// LocationAll значение фильтра локаций, означающее "все площадки"
const LocationAll = "All"
