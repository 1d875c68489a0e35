package list_events

import (
	"context"

	"github.com/m04kA/kstudio-agenda/internal/domain"
)

// CalendarGateway интерфейс календаря
type CalendarGateway interface {
	ListUpcoming(ctx context.Context, maxResults int64) ([]domain.Event, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
