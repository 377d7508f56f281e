package domain

import (
	"time"
	_ "time/tzdata"

	"github.com/m04kA/VenueBookingService/pkg/types"
)

// BookingPolicy настраиваемые правила бронирования
type BookingPolicy struct {
	HorizonEnd             types.Date     // последний день, доступный для бронирования (включительно)
	Location               *time.Location // часовой пояс, в котором считается "сегодня"
	CancellationNoticeDays int
}

// DefaultBookingPolicy правила по умолчанию, совпадают с умолчаниями конфигурации
func DefaultBookingPolicy() BookingPolicy {
	return BookingPolicy{
		HorizonEnd:             types.MustParseDate(DefaultHorizonEnd),
		Location:               defaultLocation(),
		CancellationNoticeDays: DefaultCancellationNoticeDays,
	}
}

func defaultLocation() *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		// IST не переходит на летнее время
		return time.FixedZone(DefaultTimezone, 5*60*60+30*60)
	}
	return loc
}

// Today календарный день момента now в часовом поясе политики
func (p BookingPolicy) Today(now time.Time) types.Date {
	if p.Location == nil {
		return types.DateOf(now)
	}
	return types.DateOf(now.In(p.Location))
}
