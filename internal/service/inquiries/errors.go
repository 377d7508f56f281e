package inquiries

import "errors"

var (
	// ErrJobOpeningNotFound возвращается, когда вакансия не найдена
	ErrJobOpeningNotFound = errors.New("job opening not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
