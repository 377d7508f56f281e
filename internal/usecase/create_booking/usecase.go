package create_booking

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/m04kA/VenueBookingService/internal/domain"
	bookingRepo "github.com/m04kA/VenueBookingService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/VenueBookingService/internal/infra/storage/catalog"
	"github.com/m04kA/VenueBookingService/internal/pricing"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	venueRepo    VenueRepository
	txManager    TransactionManager
	policy       domain.BookingPolicy
	metrics      Metrics
	invoices     InvoiceGenerator
	timeProvider TimeProvider
	tracer       trace.Tracer
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	venueRepo VenueRepository,
	txManager TransactionManager,
	policy domain.BookingPolicy,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		venueRepo:    venueRepo,
		txManager:    txManager,
		policy:       policy,
		metrics:      metrics,
		invoices:     RandomInvoiceGenerator{},
		timeProvider: &RealTimeProvider{},
		tracer:       otel.Tracer("venuebooking/usecase/create_booking"),
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию, чтобы одну дату не забронировали дважды
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	ctx, span := uc.tracer.Start(ctx, "create_booking.execute",
		trace.WithAttributes(
			attribute.String("venue.id", req.VenueID),
			attribute.String("booking.date", req.Date.String()),
			attribute.String("booking.payment_method", string(req.PaymentMethod)),
		),
	)
	defer span.End()

	uc.logger.Info("CreateBooking: user=%s, venue=%s, date=%s, payment=%s",
		req.UserID, req.VenueID, req.Date, req.PaymentMethod)

	resp, err := uc.execute(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.String("booking.id", resp.Booking.ID.String()))
	return resp, nil
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущую дату
	today := uc.policy.Today(uc.timeProvider.Now())

	// 3. Получаем площадку
	venue, err := uc.venueRepo.GetVenue(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrVenueNotFound) {
			uc.logger.Warn("CreateBooking: venue id=%s not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("CreateBooking: failed to get venue id=%s: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	if err := pricing.ValidateBaseCost(venue.BaseCost); err != nil {
		uc.logger.Error("CreateBooking: venue id=%s has invalid base cost: %v", venue.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем подтвержденные бронирования площадки с блокировкой (FOR UPDATE)
		reserved, err := uc.bookingRepo.GetReservedDates(txCtx, venue.ID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get reserved dates: %v", err)
			return fmt.Errorf("%w: failed to get reserved dates: %v", ErrInternal, err)
		}

		// 4.2. Проверяем доступность даты
		booked := pricing.MergeBookedDates(venue.BookedDates, reserved)
		if !pricing.IsDateSelectable(req.Date, booked, today, uc.policy.HorizonEnd) {
			status := pricing.DayStatus(req.Date, booked, today, uc.policy.HorizonEnd)
			uc.logger.Warn("CreateBooking: date=%s is not selectable for venue id=%s: %s", req.Date, venue.ID, status)
			return fmt.Errorf("%w: %s", ErrDateNotSelectable, status)
		}

		// 4.3. Пересчитываем смету на сервере
		quote := pricing.ComputeQuote(venue.BaseCost, &req.Date, today)
		if req.ExpectedFinalCost != nil && !req.ExpectedFinalCost.Round(2).Equal(quote.FinalCost.Round(2)) {
			uc.logger.Warn("CreateBooking: expected final cost %s, recomputed %s",
				req.ExpectedFinalCost.StringFixed(2), quote.FinalCost.StringFixed(2))
			return fmt.Errorf("%w: expected %s, actual %s",
				ErrQuoteMismatch, req.ExpectedFinalCost.StringFixed(2), quote.FinalCost.StringFixed(2))
		}

		// 4.4. Создаем бронирование с денормализацией данных
		booking := &domain.Booking{
			VenueID:       venue.ID,
			UserID:        req.UserID,
			Date:          req.Date,
			PaymentMethod: req.PaymentMethod,
			InvoiceNumber: uc.invoices.Next(),
			Status:        domain.StatusConfirmed,
			VenueName:     venue.Name,
			UserEmail:     req.UserEmail,
		}
		booking.ApplyQuote(quote)

		// 4.5. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrDateAlreadyBooked) {
				uc.logger.Warn("CreateBooking: date=%s for venue id=%s was taken concurrently", req.Date, venue.ID)
				return fmt.Errorf("%w: %s", ErrDateNotSelectable, domain.DayBooked)
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrDateNotSelectable) || errors.Is(err, ErrQuoteMismatch) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.metrics.IncBooking(string(domain.StatusConfirmed))
	uc.logger.Info("CreateBooking: successfully created booking id=%s, invoice=%d, final=%s",
		result.ID, result.InvoiceNumber, result.FinalCost.StringFixed(2))

	return &Response{Booking: result}, nil
}
