package inquiries

import (
	"context"

	"github.com/m04kA/VenueBookingService/internal/domain"
)

// JobCatalog справочник открытых вакансий
type JobCatalog interface {
	GetJobOpening(ctx context.Context, id string) (*domain.JobOpening, error)
}

// Repository интерфейс хранилища обращений и откликов
type Repository interface {
	CreateContactMessage(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error)
	CreateJobApplication(ctx context.Context, app *domain.JobApplication) (*domain.JobApplication, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
