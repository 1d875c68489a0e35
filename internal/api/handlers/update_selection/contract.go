package update_selection

import (
	"context"
	"time"

	"github.com/m04kA/kstudio-agenda/internal/domain"
	"github.com/m04kA/kstudio-agenda/pkg/types"
)

type Board interface {
	Select(ctx context.Context, service string, date time.Time, holdMinutes int) (domain.SlotGrid, error)
	StrategicTimes() []types.TimeString
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
