package list_events

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном лимите
	ErrInvalidInput = errors.New("invalid input data")

	// ErrGateway возвращается при ошибке календаря, сообщение календаря сохраняется
	ErrGateway = errors.New("usecase: calendar error")
)
