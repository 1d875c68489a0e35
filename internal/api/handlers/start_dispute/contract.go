package start_dispute

import (
	"context"

	startDispute "github.com/m04kA/kstudio-agenda/internal/usecase/start_dispute"
)

type UseCase interface {
	Execute(ctx context.Context, req *startDispute.Request) (*startDispute.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
