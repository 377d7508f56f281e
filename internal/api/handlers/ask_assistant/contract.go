package ask_assistant

import (
	"context"

	askAssistant "github.com/m04kA/VenueBookingService/internal/usecase/ask_assistant"
)

type AskAssistantUseCase interface {
	Execute(ctx context.Context, req *askAssistant.Request) (*askAssistant.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
