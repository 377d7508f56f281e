package domain

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/VenueBookingService/pkg/types"
)

// Venue площадка из каталога
type Venue struct {
	ID              string
	Name            string
	Location        string
	HallType        string
	BaseCost        decimal.Decimal
	BookedDates     []types.Date // статически занятые даты каталога
	SupportedEvents []string
	PreviousEvents  []string
	Images          []string
}

// MatchesLocation проверяет фильтр локации: пустой фильтр и "All" пропускают все площадки
func (v *Venue) MatchesLocation(location string) bool {
	return location == "" || location == LocationAll || v.Location == location
}
