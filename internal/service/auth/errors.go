package auth

import "errors"

var (
	// ErrUserAlreadyExists возвращается при регистрации с занятым email
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrInvalidCredentials возвращается при неверной паре email/пароль
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrWeakPassword возвращается, когда пароль не соответствует политике
	ErrWeakPassword = errors.New("password does not meet requirements")

	// ErrInvalidToken возвращается для просроченного, поддельного или битого токена
	ErrInvalidToken = errors.New("invalid token")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
