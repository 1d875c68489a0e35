package update_selection

import (
	"errors"
	"net/http"

	"github.com/m04kA/kstudio-agenda/internal/api/handlers"
	getScheduleHandler "github.com/m04kA/kstudio-agenda/internal/api/handlers/get_schedule"
	"github.com/m04kA/kstudio-agenda/internal/domain"
	"github.com/m04kA/kstudio-agenda/internal/presentation"
)

const (
	msgInvalidBody        = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgUnknownService     = "услуга не найдена в каталоге"
	msgInvalidHoldMinutes = "длительность холда должна быть от 5 до 240 минут"
	msgBoardClosed        = "сервис останавливается"
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

// Handle PUT /api/v1/schedule/selection
// Body: {service?, date?, holdMinutes?}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateSelectionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedule/selection - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	date, err := req.ParseDate()
	if err != nil {
		h.logger.Warn("PUT /schedule/selection - Invalid date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	grid, err := h.board.Select(r.Context(), req.Service, date, req.HoldMinutes)
	if err != nil {
		switch {
		case errors.Is(err, presentation.ErrUnknownService):
			h.logger.Warn("PUT /schedule/selection - Unknown service: %q", req.Service)
			handlers.RespondBadRequest(w, msgUnknownService)

		case errors.Is(err, presentation.ErrInvalidHoldMinutes):
			h.logger.Warn("PUT /schedule/selection - Invalid hold minutes: %d", req.HoldMinutes)
			handlers.RespondBadRequest(w, msgInvalidHoldMinutes)

		case errors.Is(err, presentation.ErrClosed):
			handlers.RespondError(w, http.StatusServiceUnavailable, msgBoardClosed)

		default:
			h.logger.Error("PUT /schedule/selection - Failed to update selection: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /schedule/selection - Selection updated: service=%s, date=%s, hold_minutes=%d",
		grid.Selection.Service, grid.Selection.Date.Format(domain.DateFormat), grid.Selection.HoldMinutes())
	handlers.RespondJSON(w, http.StatusOK, getScheduleHandler.FromGrid(grid, h.board.StrategicTimes()))
}
