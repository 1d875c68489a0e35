package get_free_busy

import (
	"context"

	getFreeBusy "github.com/m04kA/kstudio-agenda/internal/usecase/get_free_busy"
)

type GetFreeBusyUseCase interface {
	Execute(ctx context.Context, req *getFreeBusy.Request) (*getFreeBusy.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
