package start_dispute

import (
	"context"

	"github.com/m04kA/kstudio-agenda/internal/domain"
	"github.com/m04kA/kstudio-agenda/internal/presentation"
	"github.com/m04kA/kstudio-agenda/pkg/types"
)

// Board интерфейс доски слотов
type Board interface {
	PrepareDispute(ctx context.Context, session string, start types.TimeString) (presentation.Dispute, error)
	CompleteDispute(d presentation.Dispute, holdID string)
	AbortDispute(d presentation.Dispute)
}

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
