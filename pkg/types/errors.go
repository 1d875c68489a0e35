package types

import "errors"

var (
	// ErrInvalidFormat возвращается, когда строка не является корректным временем HH:MM
	ErrInvalidFormat = errors.New("types: invalid time string format")

	// ErrOutOfDay возвращается, когда результат арифметики выходит за пределы суток
	ErrOutOfDay = errors.New("types: time is out of day bounds")
)
