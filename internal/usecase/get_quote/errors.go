package get_quote

import "errors"

var (
	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("get_quote: venue not found")

	// ErrDateNotSelectable возвращается, когда дата в прошлом, занята или за горизонтом бронирования
	ErrDateNotSelectable = errors.New("get_quote: date is not selectable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_quote: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_quote: internal error")
)
