package get_schedule

import (
	"context"

	"github.com/m04kA/kstudio-agenda/internal/domain"
	"github.com/m04kA/kstudio-agenda/pkg/types"
)

type Board interface {
	Grid(ctx context.Context) (domain.SlotGrid, error)
	StrategicTimes() []types.TimeString
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
