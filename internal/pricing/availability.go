package pricing

import (
	"github.com/m04kA/VenueBookingService/internal/domain"
	"github.com/m04kA/VenueBookingService/pkg/types"
)

// BookedDates множество занятых дней площадки
type BookedDates map[types.Date]struct{}

// NewBookedDates строит множество из списка дат; повторы схлопываются
func NewBookedDates(dates ...types.Date) BookedDates {
	set := make(BookedDates, len(dates))
	for _, d := range dates {
		set[d] = struct{}{}
	}
	return set
}

// MergeBookedDates объединяет статически занятые даты каталога и даты активных бронирований
func MergeBookedDates(static []types.Date, reserved []types.Date) BookedDates {
	set := make(BookedDates, len(static)+len(reserved))
	for _, d := range static {
		set[d] = struct{}{}
	}
	for _, d := range reserved {
		set[d] = struct{}{}
	}
	return set
}

// Contains сообщает, занята ли дата; nil-множество пустое
func (b BookedDates) Contains(d types.Date) bool {
	_, ok := b[d]
	return ok
}

// IsDateSelectable true, если today <= date <= horizonEnd и дата не занята
// Обе границы включительные
func IsDateSelectable(date types.Date, booked BookedDates, today, horizonEnd types.Date) bool {
	return DayStatus(date, booked, today, horizonEnd) == domain.DayAvailable
}

// DayStatus классифицирует день для календаря доступности
// Прошедший день остается past, даже если он был занят
func DayStatus(date types.Date, booked BookedDates, today, horizonEnd types.Date) domain.DayStatus {
	switch {
	case date.Before(today):
		return domain.DayPast
	case date.After(horizonEnd):
		return domain.DayBeyondHorizon
	case booked.Contains(date):
		return domain.DayBooked
	default:
		return domain.DayAvailable
	}
}

// BuildCalendar строит календарь за период [from, to] включительно
func BuildCalendar(venueID string, from, to types.Date, booked BookedDates, today, horizonEnd types.Date) domain.Calendar {
	cal := domain.Calendar{
		VenueID:    venueID,
		From:       from,
		To:         to,
		HorizonEnd: horizonEnd,
	}
	if to.Before(from) {
		return cal
	}

	cal.Days = make([]domain.CalendarDay, 0, from.DaysUntil(to)+1)
	for d := from; !d.After(to); d = d.AddDays(1) {
		cal.Days = append(cal.Days, domain.CalendarDay{
			Date:   d,
			Status: DayStatus(d, booked, today, horizonEnd),
		})
	}
	return cal
}
