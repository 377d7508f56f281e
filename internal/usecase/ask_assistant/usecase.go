package ask_assistant

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/m04kA/VenueBookingService/internal/domain"
)

// UseCase use case вопроса к ассистенту по площадкам
type UseCase struct {
	venueRepo VenueRepository
	assistant Assistant
	policy    domain.BookingPolicy
	metrics   Metrics
	tracer    trace.Tracer
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	venueRepo VenueRepository,
	assistant Assistant,
	policy domain.BookingPolicy,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		venueRepo: venueRepo,
		assistant: assistant,
		policy:    policy,
		metrics:   metrics,
		tracer:    otel.Tracer("venuebooking/usecase/ask_assistant"),
		logger:    logger,
	}
}

// Execute отвечает на вопрос пользователя, передавая ассистенту FAQ и каталог площадок
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	ctx, span := uc.tracer.Start(ctx, "ask_assistant.execute",
		trace.WithAttributes(attribute.Int("query.length", len(req.Query))),
	)
	defer span.End()

	// 1. Валидация вопроса
	query, err := normalizeQuery(req.Query)
	if err != nil {
		uc.logger.Warn("AskAssistant: validation failed: %v", err)
		uc.metrics.IncAssistantRequest("invalid")
		return nil, uc.fail(span, err)
	}

	uc.logger.Info("AskAssistant: query of %d bytes", len(query))

	// 2. Собираем контекст
	venues, err := uc.venueRepo.ListVenues(ctx)
	if err != nil {
		uc.logger.Error("AskAssistant: failed to list venues: %v", err)
		uc.metrics.IncAssistantRequest("error")
		return nil, uc.fail(span, fmt.Errorf("%w: failed to list venues: %v", ErrInternal, err))
	}

	venueDoc, err := buildVenueDocument(venues)
	if err != nil {
		uc.logger.Error("AskAssistant: failed to build venue context: %v", err)
		uc.metrics.IncAssistantRequest("error")
		return nil, uc.fail(span, fmt.Errorf("%w: failed to build venue context: %v", ErrInternal, err))
	}

	documents := []string{buildFAQ(uc.policy.CancellationNoticeDays), venueDoc}

	// 3. Спрашиваем ассистента
	answer, err := uc.assistant.AnswerQuestion(ctx, query, documents)
	if err != nil {
		uc.logger.Error("AskAssistant: assistant call failed: %v", err)
		uc.metrics.IncAssistantRequest("unavailable")
		return nil, uc.fail(span, fmt.Errorf("%w: %v", ErrAssistantUnavailable, err))
	}

	uc.metrics.IncAssistantRequest("ok")
	uc.logger.Info("AskAssistant: answered with %d bytes", len(answer))

	return &Response{Answer: answer}, nil
}

func (uc *UseCase) fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
