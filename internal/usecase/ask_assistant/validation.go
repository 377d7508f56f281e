package ask_assistant

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/VenueBookingService/internal/domain"
)

// normalizeQuery обрезает пробелы и проверяет длину вопроса
func normalizeQuery(query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", fmt.Errorf("%w: query is required", ErrInvalidInput)
	}

	if n := utf8.RuneCountInString(query); n > domain.MaxAssistantQueryLength {
		return "", fmt.Errorf("%w: query is %d characters, max %d", ErrInvalidInput, n, domain.MaxAssistantQueryLength)
	}

	return query, nil
}
