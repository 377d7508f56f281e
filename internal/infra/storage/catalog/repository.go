package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"

	"github.com/m04kA/VenueBookingService/internal/domain"
	"github.com/m04kA/VenueBookingService/pkg/types"
)

//go:embed seed/catalog.toml
var defaultSeed string

type seedFile struct {
	Venues        []venueRow        `toml:"venues"`
	Concerts      []concertRow      `toml:"concerts"`
	Workshops     []workshopRow     `toml:"workshops"`
	EventManagers []eventManagerRow `toml:"event_managers"`
	JobOpenings   []jobOpeningRow   `toml:"job_openings"`
}

type venueRow struct {
	ID              string          `toml:"id"`
	Name            string          `toml:"name"`
	Location        string          `toml:"location"`
	HallType        string          `toml:"hall_type"`
	BaseCost        decimal.Decimal `toml:"base_cost"`
	BookedDates     []types.Date    `toml:"booked_dates"`
	SupportedEvents []string        `toml:"supported_events"`
	PreviousEvents  []string        `toml:"previous_events"`
	Images          []string        `toml:"images"`
}

type concertRow struct {
	ID       string          `toml:"id"`
	Name     string          `toml:"name"`
	Artist   string          `toml:"artist"`
	Date     types.Date      `toml:"date"`
	Price    decimal.Decimal `toml:"price"`
	ImageURL string          `toml:"image_url"`
	Venue    string          `toml:"venue"`
}

type workshopRow struct {
	ID          string          `toml:"id"`
	Title       string          `toml:"title"`
	Instructor  string          `toml:"instructor"`
	Date        types.Date      `toml:"date"`
	Price       decimal.Decimal `toml:"price"`
	Description string          `toml:"description"`
	ImageURL    string          `toml:"image_url"`
}

type eventManagerRow struct {
	ID              string   `toml:"id"`
	Name            string   `toml:"name"`
	Phone           string   `toml:"phone"`
	Specializations []string `toml:"specializations"`
	Portfolio       []string `toml:"portfolio"`
}

type jobOpeningRow struct {
	ID          string `toml:"id"`
	Title       string `toml:"title"`
	Location    string `toml:"location"`
	Package     string `toml:"package"`
	Description string `toml:"description"`
}

// Repository статический каталог, загруженный при старте
// Данные неизменяемы, методы возвращают копии
type Repository struct {
	venues        []domain.Venue
	concerts      []domain.Concert
	workshops     []domain.Workshop
	eventManagers []domain.EventManager
	jobOpenings   []domain.JobOpening
}

// NewDefaultRepository загружает встроенный каталог
func NewDefaultRepository() (*Repository, error) {
	return NewRepository(strings.NewReader(defaultSeed))
}

// NewRepository загружает каталог из TOML
func NewRepository(r io.Reader) (*Repository, error) {
	var seed seedFile
	if _, err := toml.NewDecoder(r).Decode(&seed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeSeed, err)
	}

	repo := &Repository{}
	seen := make(map[string]struct{})

	for _, v := range seed.Venues {
		if err := checkID(seen, v.ID); err != nil {
			return nil, err
		}
		if !v.BaseCost.IsPositive() {
			return nil, fmt.Errorf("%w: venue %s has non-positive base cost", ErrInvalidSeed, v.ID)
		}
		repo.venues = append(repo.venues, domain.Venue{
			ID:              v.ID,
			Name:            v.Name,
			Location:        v.Location,
			HallType:        v.HallType,
			BaseCost:        v.BaseCost,
			BookedDates:     v.BookedDates,
			SupportedEvents: v.SupportedEvents,
			PreviousEvents:  v.PreviousEvents,
			Images:          v.Images,
		})
	}

	for _, c := range seed.Concerts {
		if err := checkID(seen, c.ID); err != nil {
			return nil, err
		}
		repo.concerts = append(repo.concerts, domain.Concert{
			ID:       c.ID,
			Name:     c.Name,
			Artist:   c.Artist,
			Date:     c.Date,
			Price:    c.Price,
			ImageURL: c.ImageURL,
			Venue:    c.Venue,
		})
	}

	for _, w := range seed.Workshops {
		if err := checkID(seen, w.ID); err != nil {
			return nil, err
		}
		repo.workshops = append(repo.workshops, domain.Workshop{
			ID:          w.ID,
			Title:       w.Title,
			Instructor:  w.Instructor,
			Date:        w.Date,
			Price:       w.Price,
			Description: w.Description,
			ImageURL:    w.ImageURL,
		})
	}

	for _, m := range seed.EventManagers {
		if err := checkID(seen, m.ID); err != nil {
			return nil, err
		}
		repo.eventManagers = append(repo.eventManagers, domain.EventManager{
			ID:              m.ID,
			Name:            m.Name,
			Phone:           m.Phone,
			Specializations: m.Specializations,
			Portfolio:       m.Portfolio,
		})
	}

	for _, j := range seed.JobOpenings {
		if err := checkID(seen, j.ID); err != nil {
			return nil, err
		}
		repo.jobOpenings = append(repo.jobOpenings, domain.JobOpening{
			ID:          j.ID,
			Title:       j.Title,
			Location:    j.Location,
			Package:     j.Package,
			Description: j.Description,
		})
	}

	return repo, nil
}

func checkID(seen map[string]struct{}, id string) error {
	if id == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidSeed)
	}
	if _, ok := seen[id]; ok {
		return fmt.Errorf("%w: duplicate id %s", ErrInvalidSeed, id)
	}
	seen[id] = struct{}{}
	return nil
}

// ListVenues возвращает площадки в порядке каталога
func (r *Repository) ListVenues(_ context.Context) ([]*domain.Venue, error) {
	out := make([]*domain.Venue, 0, len(r.venues))
	for i := range r.venues {
		out = append(out, copyVenue(&r.venues[i]))
	}
	return out, nil
}

func (r *Repository) GetVenue(_ context.Context, id string) (*domain.Venue, error) {
	for i := range r.venues {
		if r.venues[i].ID == id {
			return copyVenue(&r.venues[i]), nil
		}
	}
	return nil, ErrVenueNotFound
}

func (r *Repository) ListConcerts(_ context.Context) ([]*domain.Concert, error) {
	out := make([]*domain.Concert, 0, len(r.concerts))
	for i := range r.concerts {
		c := r.concerts[i]
		out = append(out, &c)
	}
	return out, nil
}

func (r *Repository) GetConcert(_ context.Context, id string) (*domain.Concert, error) {
	for i := range r.concerts {
		if r.concerts[i].ID == id {
			c := r.concerts[i]
			return &c, nil
		}
	}
	return nil, ErrConcertNotFound
}

func (r *Repository) ListWorkshops(_ context.Context) ([]*domain.Workshop, error) {
	out := make([]*domain.Workshop, 0, len(r.workshops))
	for i := range r.workshops {
		w := r.workshops[i]
		out = append(out, &w)
	}
	return out, nil
}

func (r *Repository) GetWorkshop(_ context.Context, id string) (*domain.Workshop, error) {
	for i := range r.workshops {
		if r.workshops[i].ID == id {
			w := r.workshops[i]
			return &w, nil
		}
	}
	return nil, ErrWorkshopNotFound
}

func (r *Repository) ListEventManagers(_ context.Context) ([]*domain.EventManager, error) {
	out := make([]*domain.EventManager, 0, len(r.eventManagers))
	for i := range r.eventManagers {
		m := r.eventManagers[i]
		m.Specializations = append([]string(nil), m.Specializations...)
		m.Portfolio = append([]string(nil), m.Portfolio...)
		out = append(out, &m)
	}
	return out, nil
}

func (r *Repository) ListJobOpenings(_ context.Context) ([]*domain.JobOpening, error) {
	out := make([]*domain.JobOpening, 0, len(r.jobOpenings))
	for i := range r.jobOpenings {
		j := r.jobOpenings[i]
		out = append(out, &j)
	}
	return out, nil
}

func (r *Repository) GetJobOpening(_ context.Context, id string) (*domain.JobOpening, error) {
	for i := range r.jobOpenings {
		if r.jobOpenings[i].ID == id {
			j := r.jobOpenings[i]
			return &j, nil
		}
	}
	return nil, ErrJobOpeningNotFound
}

func copyVenue(v *domain.Venue) *domain.Venue {
	c := *v
	c.BookedDates = append([]types.Date(nil), v.BookedDates...)
	c.SupportedEvents = append([]string(nil), v.SupportedEvents...)
	c.PreviousEvents = append([]string(nil), v.PreviousEvents...)
	c.Images = append([]string(nil), v.Images...)
	return &c
}
