package toggle_strategic_block

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/kstudio-agenda/internal/api/handlers"
	"github.com/m04kA/kstudio-agenda/internal/presentation"
	"github.com/m04kA/kstudio-agenda/pkg/types"
)

const (
	msgInvalidTime = "некорректный формат времени, ожидается HH:MM"
	msgBoardClosed = "сервис останавливается"
)

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

// Handle POST /api/v1/schedule/strategic/{time}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["time"]

	start, err := types.NewTimeStringFromString(raw)
	if err != nil {
		h.logger.Warn("POST /schedule/strategic/{time} - Invalid time %q: %v", raw, err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	on, err := h.board.ToggleStrategic(start)
	if err != nil {
		if errors.Is(err, presentation.ErrClosed) {
			handlers.RespondError(w, http.StatusServiceUnavailable, msgBoardClosed)
			return
		}
		h.logger.Error("POST /schedule/strategic/{time} - Failed to toggle: time=%s, error=%v", start, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ToggleStrategicResponse{
		Time:      start.String(),
		Strategic: on,
	})
}
