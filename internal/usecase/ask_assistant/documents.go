package ask_assistant

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/VenueBookingService/internal/domain"
)

const faqTemplate = `Frequently Asked Questions (FAQ):

Q: What payment methods are accepted?
A: We accept all major Credit Cards, UPI, and Net Banking. You can select your preferred method during the final booking step.

Q: Are there discounts for booking in advance?
A: Yes! We offer an "Early Bird" discount of 20%% for bookings made over a month in advance, and a "Super Early Bird" discount of 30%% for bookings made 2-12 months in advance. Bookings closer to the date get a 15%% "First Booking Offer". All prices include 18%% tax before the discount.

Q: Can I hire an event manager?
A: Absolutely. We have a team of professional event managers you can hire to ensure your event runs smoothly.

Q: What is the booking process?
A: Find a venue you like, go to its page, select an available date, review the price breakdown, choose a payment method, and confirm your booking.

Q: What is your cancellation policy?
A: Bookings can be cancelled up to %d days before the event date for a full refund. You can cancel from the "My bookings" page.
`

// venueDocument сведения о площадке, которые видит ассистент
type venueDocument struct {
	Name            string          `json:"name"`
	Location        string          `json:"location"`
	HallType        string          `json:"hallType"`
	BaseCost        decimal.Decimal `json:"baseCost"`
	SupportedEvents []string        `json:"supportedEvents"`
}

// buildFAQ текст FAQ с действующим сроком отмены
func buildFAQ(cancellationNoticeDays int) string {
	return fmt.Sprintf(faqTemplate, cancellationNoticeDays)
}

// buildVenueDocument JSON-список площадок каталога
func buildVenueDocument(venues []*domain.Venue) (string, error) {
	docs := make([]venueDocument, 0, len(venues))
	for _, v := range venues {
		docs = append(docs, venueDocument{
			Name:            v.Name,
			Location:        v.Location,
			HallType:        v.HallType,
			BaseCost:        v.BaseCost,
			SupportedEvents: v.SupportedEvents,
		})
	}

	raw, err := json.Marshal(docs)
	if err != nil {
		return "", err
	}
	return "Available venues:\n" + string(raw), nil
}
