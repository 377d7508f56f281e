package get_quote

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

// UseCase use case расчета сметы площадки на дату
type UseCase struct {
	venueRepo    VenueRepository
	bookingRepo  BookingRepository
	policy       domain.BookingPolicy
	metrics      Metrics
	timeProvider TimeProvider
	tracer       trace.Tracer
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	venueRepo VenueRepository,
	bookingRepo BookingRepository,
	policy domain.BookingPolicy,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		venueRepo:    venueRepo,
		bookingRepo:  bookingRepo,
		policy:       policy,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		tracer:       otel.Tracer("venuebooking/usecase/get_quote"),
		logger:       logger,
	}
}

// Execute выполняет use case расчета сметы
// Без даты возвращает только базовую стоимость; с датой дата должна быть доступна для выбора
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	ctx, span := uc.tracer.Start(ctx, "get_quote.execute",
		trace.WithAttributes(
			attribute.String("venue.id", req.VenueID),
			attribute.Bool("date.present", req.Date != nil),
		),
	)
	defer span.End()

	uc.logger.Info("GetQuote: venue=%s, date=%s", req.VenueID, dateForLog(req))

	resp, err := uc.execute(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("quote.tier", resp.Quote.DiscountName),
		attribute.String("quote.final_cost", resp.Quote.FinalCost.String()),
	)
	return resp, nil
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetQuote: validation failed: %v", err)
		return nil, err
	}

	today := uc.policy.Today(uc.timeProvider.Now())

	// 2. Получаем площадку
	venue, err := uc.venueRepo.GetVenue(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrVenueNotFound) {
			uc.logger.Warn("GetQuote: venue id=%s not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("GetQuote: failed to get venue id=%s: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	if err := pricing.ValidateBaseCost(venue.BaseCost); err != nil {
		uc.logger.Error("GetQuote: venue id=%s has invalid base cost: %v", venue.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 3. Проверяем доступность даты с учетом подтвержденных бронирований
	if req.Date != nil {
		reserved, err := uc.bookingRepo.GetReservedDates(ctx, venue.ID)
		if err != nil {
			uc.logger.Error("GetQuote: failed to get reserved dates for venue id=%s: %v", venue.ID, err)
			return nil, fmt.Errorf("%w: failed to get reserved dates: %v", ErrInternal, err)
		}

		booked := pricing.MergeBookedDates(venue.BookedDates, reserved)
		if !pricing.IsDateSelectable(*req.Date, booked, today, uc.policy.HorizonEnd) {
			status := pricing.DayStatus(*req.Date, booked, today, uc.policy.HorizonEnd)
			uc.logger.Warn("GetQuote: date=%s is not selectable for venue id=%s: %s", req.Date, venue.ID, status)
			return nil, fmt.Errorf("%w: %s", ErrDateNotSelectable, status)
		}
	}

	// 4. Считаем смету
	quote := pricing.ComputeQuote(venue.BaseCost, req.Date, today)
	uc.metrics.IncQuote(quote.DiscountName)

	uc.logger.Info("GetQuote: venue=%s, final=%s, tier=%q", venue.ID, quote.FinalCost.StringFixed(2), quote.DiscountName)

	return &Response{
		VenueID:   venue.ID,
		VenueName: venue.Name,
		Today:     today,
		Quote:     quote,
	}, nil
}

func dateForLog(req *Request) string {
	if req.Date == nil {
		return "none"
	}
	return req.Date.String()
}
