package scheduling

import "errors"

var (
	// ErrInvalidStep возвращается при неположительном шаге генерации слотов
	ErrInvalidStep = errors.New("scheduling: step must be positive")

	// ErrInvalidDuration возвращается при неположительной длительности услуги
	ErrInvalidDuration = errors.New("scheduling: duration must be positive")
)
