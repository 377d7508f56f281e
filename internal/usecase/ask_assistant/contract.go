package ask_assistant

import (
	"context"

	"github.com/m04kA/VenueBookingService/internal/domain"
)

// VenueRepository интерфейс каталога площадок
type VenueRepository interface {
	ListVenues(ctx context.Context) ([]*domain.Venue, error)
}

// Assistant внешний сервис генерации ответов
type Assistant interface {
	AnswerQuestion(ctx context.Context, query string, contextDocuments []string) (string, error)
}

// Metrics бизнес-метрики ассистента
type Metrics interface {
	IncAssistantRequest(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
