package get_availability

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/m04kA/VenueBookingService/internal/domain"
	catalogRepo "github.com/m04kA/VenueBookingService/internal/infra/storage/catalog"
	"github.com/m04kA/VenueBookingService/internal/pricing"
)

// UseCase use case для получения календаря доступности площадки
type UseCase struct {
	venueRepo    VenueRepository
	bookingRepo  BookingRepository
	policy       domain.BookingPolicy
	timeProvider TimeProvider
	tracer       trace.Tracer
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	venueRepo VenueRepository,
	bookingRepo BookingRepository,
	policy domain.BookingPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		venueRepo:    venueRepo,
		bookingRepo:  bookingRepo,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
		tracer:       otel.Tracer("venuebooking/usecase/get_availability"),
		logger:       logger,
	}
}

// Execute выполняет use case получения календаря доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	ctx, span := uc.tracer.Start(ctx, "get_availability.execute",
		trace.WithAttributes(attribute.String("venue.id", req.VenueID)),
	)
	defer span.End()

	uc.logger.Info("GetAvailability: venue=%s, from=%v, to=%v", req.VenueID, req.From, req.To)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, uc.fail(span, err)
	}

	today := uc.policy.Today(uc.timeProvider.Now())

	// 2. Определяем период
	from, to, err := resolveRange(req, today)
	if err != nil {
		uc.logger.Warn("GetAvailability: invalid range: %v", err)
		return nil, uc.fail(span, err)
	}

	// 3. Получаем площадку
	venue, err := uc.venueRepo.GetVenue(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrVenueNotFound) {
			uc.logger.Warn("GetAvailability: venue id=%s not found", req.VenueID)
			return nil, uc.fail(span, ErrVenueNotFound)
		}
		uc.logger.Error("GetAvailability: failed to get venue id=%s: %v", req.VenueID, err)
		return nil, uc.fail(span, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err))
	}

	// 4. Занятые даты: статические из каталога и подтвержденные бронирования
	reserved, err := uc.bookingRepo.GetReservedDates(ctx, venue.ID)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get reserved dates for venue id=%s: %v", venue.ID, err)
		return nil, uc.fail(span, fmt.Errorf("%w: failed to get reserved dates: %v", ErrInternal, err))
	}
	booked := pricing.MergeBookedDates(venue.BookedDates, reserved)

	// 5. Строим календарь
	calendar := pricing.BuildCalendar(venue.ID, from, to, booked, today, uc.policy.HorizonEnd)

	span.SetAttributes(
		attribute.Int("calendar.days", len(calendar.Days)),
		attribute.Int("calendar.available", calendar.AvailableCount()),
	)
	uc.logger.Info("GetAvailability: venue=%s, %s..%s, %d/%d days available",
		venue.ID, from, to, calendar.AvailableCount(), len(calendar.Days))

	return &Response{
		VenueName: venue.Name,
		Today:     today,
		Calendar:  calendar,
	}, nil
}

func (uc *UseCase) fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
