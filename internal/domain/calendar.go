package domain

import "github.com/m04kA/VenueBookingService/pkg/types"

// DayStatus состояние дня в календаре площадки
type DayStatus string

const (
	DayPast          DayStatus = "past"
	DayBooked        DayStatus = "booked"
	DayBeyondHorizon DayStatus = "beyond_horizon"
	DayAvailable     DayStatus = "available"
)

// CalendarDay день календаря доступности
type CalendarDay struct {
	Date   types.Date
	Status DayStatus
}

// IsSelectable returns true if the day can be picked for a booking
func (d CalendarDay) IsSelectable() bool {
	return d.Status == DayAvailable
}

// Calendar календарь доступности площадки за период
type Calendar struct {
	VenueID    string
	From       types.Date
	To         types.Date
	HorizonEnd types.Date
	Days       []CalendarDay
}

// AvailableCount количество доступных дней в периоде
func (c *Calendar) AvailableCount() int {
	n := 0
	for _, d := range c.Days {
		if d.IsSelectable() {
			n++
		}
	}
	return n
}
