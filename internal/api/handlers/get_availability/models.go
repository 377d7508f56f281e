package get_availability

import (
	getAvailability "github.com/m04kA/VenueBookingService/internal/usecase/get_availability"
	"github.com/m04kA/VenueBookingService/pkg/types"
)

// DayResponse день календаря
type DayResponse struct {
	Date       types.Date `json:"date"`
	Status     string     `json:"status"` // past | booked | beyond_horizon | available
	Selectable bool       `json:"selectable"`
}

// CalendarResponse HTTP response model
type CalendarResponse struct {
	VenueID        string        `json:"venueId"`
	VenueName      string        `json:"venueName"`
	Today          types.Date    `json:"today"`
	From           types.Date    `json:"from"`
	To             types.Date    `json:"to"`
	HorizonEnd     types.Date    `json:"horizonEnd"`
	AvailableCount int           `json:"availableCount"`
	Days           []DayResponse `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *CalendarResponse {
	cal := resp.Calendar
	days := make([]DayResponse, 0, len(cal.Days))
	for _, d := range cal.Days {
		days = append(days, DayResponse{
			Date:       d.Date,
			Status:     string(d.Status),
			Selectable: d.IsSelectable(),
		})
	}

	return &CalendarResponse{
		VenueID:        cal.VenueID,
		VenueName:      resp.VenueName,
		Today:          resp.Today,
		From:           cal.From,
		To:             cal.To,
		HorizonEnd:     cal.HorizonEnd,
		AvailableCount: cal.AvailableCount(),
		Days:           days,
	}
}
