package create_booking

import "errors"

var (
	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("create_booking: venue not found")

	// ErrDateNotSelectable возвращается, когда дата в прошлом, за горизонтом или уже занята
	ErrDateNotSelectable = errors.New("create_booking: date is not available for booking")

	// ErrPaymentMethodRequired возвращается, когда способ оплаты не выбран или неизвестен
	ErrPaymentMethodRequired = errors.New("create_booking: payment method is required")

	// ErrQuoteMismatch возвращается, когда сумма, показанная клиенту, не совпадает с пересчитанной
	ErrQuoteMismatch = errors.New("create_booking: quoted price is outdated")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
