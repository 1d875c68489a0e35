package presentation

import "errors"

var (
	// ErrUnknownService возвращается, когда услуги нет в каталоге
	ErrUnknownService = errors.New("presentation: unknown service")

	// ErrInvalidHoldMinutes возвращается, когда длительность холда вне допустимого диапазона
	ErrInvalidHoldMinutes = errors.New("presentation: hold minutes out of range")

	// ErrSlotNotFound возвращается, когда слота нет в текущей сетке
	ErrSlotNotFound = errors.New("presentation: slot not found")

	// ErrSlotNotDisputed возвращается при попытке оспорить слот не в статусе disputed
	ErrSlotNotDisputed = errors.New("presentation: slot is not disputed")

	// ErrDisputeInProgress возвращается, когда холд для слота уже создан или создается
	ErrDisputeInProgress = errors.New("presentation: hold already requested for slot")

	// ErrHoldExpired возвращается, когда отсчет слота уже дошел до нуля
	ErrHoldExpired = errors.New("presentation: hold countdown expired")

	// ErrClosed возвращается после остановки доски
	ErrClosed = errors.New("presentation: board closed")
)
