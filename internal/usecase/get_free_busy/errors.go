package get_free_busy

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном диапазоне
	ErrInvalidInput = errors.New("invalid input data")

	// ErrGateway возвращается при ошибке календаря, сообщение календаря сохраняется
	ErrGateway = errors.New("usecase: calendar error")
)
