package middleware

import (
	"time"

	"github.com/m04kA/VenueBookingService/internal/service/auth"
)

// TokenValidator проверяет токен сессии
type TokenValidator interface {
	ValidateToken(token string) (*auth.Principal, error)
}

// HTTPMetrics коллектор HTTP-метрик
type HTTPMetrics interface {
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
