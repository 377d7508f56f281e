package ask_assistant

import "errors"

var (
	// ErrInvalidInput возвращается при пустом или слишком длинном вопросе
	ErrInvalidInput = errors.New("ask_assistant: invalid input data")

	// ErrAssistantUnavailable возвращается, когда внешний сервис не ответил
	ErrAssistantUnavailable = errors.New("ask_assistant: assistant is unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("ask_assistant: internal error")
)
