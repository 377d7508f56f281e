package order

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("order.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("order.repository: failed to execute query")

	// ErrEncode возвращается при ошибке сериализации списка посетителей
	ErrEncode = errors.New("order.repository: failed to encode attendees")
)
