package get_free_busy

import (
	"context"
	"time"

	"github.com/m04kA/kstudio-agenda/internal/domain"
)

// CalendarGateway интерфейс календаря
type CalendarGateway interface {
	QueryFreeBusy(ctx context.Context, timeMin, timeMax time.Time) ([]domain.BusyInterval, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
