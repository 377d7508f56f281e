package catalog

import "errors"

var (
	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("venue not found")

	// ErrConcertNotFound возвращается, когда концерт не найден
	ErrConcertNotFound = errors.New("concert not found")

	// ErrWorkshopNotFound возвращается, когда мастер-класс не найден
	ErrWorkshopNotFound = errors.New("workshop not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
