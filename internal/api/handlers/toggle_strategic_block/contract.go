package toggle_strategic_block

import "github.com/m04kA/kstudio-agenda/pkg/types"

type Board interface {
	ToggleStrategic(start types.TimeString) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
