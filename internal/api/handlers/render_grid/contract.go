package render_grid

import (
	"context"
	"io"

	"github.com/m04kA/kstudio-agenda/internal/domain"
)

type Board interface {
	Grid(ctx context.Context) (domain.SlotGrid, error)
}

type View interface {
	Render(w io.Writer, grid domain.SlotGrid) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
