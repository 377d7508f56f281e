package catalog

import "errors"

var (
	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("catalog.repository: venue not found")

	// ErrConcertNotFound возвращается, когда концерт не найден
	ErrConcertNotFound = errors.New("catalog.repository: concert not found")

	// ErrWorkshopNotFound возвращается, когда мастер-класс не найден
	ErrWorkshopNotFound = errors.New("catalog.repository: workshop not found")

	// ErrJobOpeningNotFound возвращается, когда вакансия не найдена
	ErrJobOpeningNotFound = errors.New("catalog.repository: job opening not found")

	// ErrDecodeSeed возвращается при ошибке разбора файла каталога
	ErrDecodeSeed = errors.New("catalog.repository: failed to decode seed")

	// ErrInvalidSeed возвращается при некорректных данных каталога
	ErrInvalidSeed = errors.New("catalog.repository: invalid seed data")
)
