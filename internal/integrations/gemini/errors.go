package gemini

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("gemini client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("gemini client: invalid response")

	// ErrEmptyAnswer возвращается, когда модель не вернула текста
	ErrEmptyAnswer = errors.New("gemini client: empty answer")

	// ErrRateLimited возвращается при ответе 429 от Gemini
	ErrRateLimited = errors.New("gemini client: rate limited")
)

// ErrDisabled возвращается, когда ассистент выключен в конфигурации
var ErrDisabled = errors.New("gemini client: assistant is disabled")
