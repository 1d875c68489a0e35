package create_hold

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных данных холда
	ErrInvalidInput = errors.New("invalid input data")

	// ErrGateway возвращается при ошибке календаря, сообщение календаря сохраняется
	ErrGateway = errors.New("usecase: calendar error")
)
