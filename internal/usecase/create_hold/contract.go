package create_hold

import (
	"context"

	"github.com/m04kA/kstudio-agenda/internal/domain"
)

// CalendarGateway интерфейс календаря
type CalendarGateway interface {
	CreateHold(ctx context.Context, hold domain.Hold) (string, error)
}

// Metrics интерфейс для учета созданных холдов
type Metrics interface {
	IncHoldCreated(strategic bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
