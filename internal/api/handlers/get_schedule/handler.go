package get_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/kstudio-agenda/internal/api/handlers"
	"github.com/m04kA/kstudio-agenda/internal/presentation"
)

const msgBoardClosed = "сервис останавливается"

type Handler struct {
	board  Board
	logger Logger
}

func NewHandler(board Board, logger Logger) *Handler {
	return &Handler{
		board:  board,
		logger: logger,
	}
}

// Handle GET /api/v1/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	grid, err := h.board.Grid(r.Context())
	if err != nil {
		if errors.Is(err, presentation.ErrClosed) {
			handlers.RespondError(w, http.StatusServiceUnavailable, msgBoardClosed)
			return
		}
		h.logger.Error("GET /schedule - Failed to build grid: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromGrid(grid, h.board.StrategicTimes()))
}
