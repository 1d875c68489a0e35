package start_dispute

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrSlotNotFound возвращается, когда слота нет в текущей сетке
	ErrSlotNotFound = errors.New("slot not found")

	// ErrSlotNotDisputed возвращается, когда слот не в статусе disputed
	ErrSlotNotDisputed = errors.New("slot is not disputed")

	// ErrDisputeInProgress возвращается, когда холд для слота уже создан или создается
	ErrDisputeInProgress = errors.New("hold already requested for slot")

	// ErrHoldExpired возвращается, когда отсчет слота уже истек
	ErrHoldExpired = errors.New("hold countdown expired")

	// ErrGateway возвращается при ошибке календаря, сообщение календаря сохраняется
	ErrGateway = errors.New("usecase: calendar error")

	// ErrUnavailable возвращается, когда доска уже остановлена
	ErrUnavailable = errors.New("usecase: board closed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
