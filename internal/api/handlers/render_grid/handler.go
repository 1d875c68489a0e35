package render_grid

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/m04kA/kstudio-agenda/internal/presentation"
)

const contentTypeHTML = "text/html; charset=utf-8"

type Handler struct {
	board  Board
	view   View
	logger Logger
}

func NewHandler(board Board, view View, logger Logger) *Handler {
	return &Handler{
		board:  board,
		view:   view,
		logger: logger,
	}
}

// Handle GET /
// Страница собирается в буфер целиком, чтобы ошибка шаблона не оставила обрезанный HTML.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	grid, err := h.board.Grid(r.Context())
	if err != nil {
		if errors.Is(err, presentation.ErrClosed) {
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
			return
		}
		h.logger.Error("GET / - Failed to build grid: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := h.view.Render(&buf, grid); err != nil {
		h.logger.Error("GET / - Failed to render grid: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("GET / - Failed to write response: %v", err)
	}
}
