package list_events

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/kstudio-agenda/internal/api/handlers"
	listEvents "github.com/m04kA/kstudio-agenda/internal/usecase/list_events"
)

const msgInvalidMaxResults = "maxResults must be a positive integer"

type Handler struct {
	useCase ListEventsUseCase
	logger  Logger
}

func NewHandler(useCase ListEventsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /events
// Query params: maxResults (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &listEvents.Request{}

	if raw := r.URL.Query().Get("maxResults"); raw != "" {
		limit, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || limit <= 0 {
			h.logger.Warn("GET /events - Invalid maxResults: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidMaxResults)
			return
		}
		req.MaxResults = limit
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, listEvents.ErrInvalidInput):
			h.logger.Warn("GET /events - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMaxResults)

		case errors.Is(err, listEvents.ErrGateway):
			h.logger.Error("GET /events - Calendar error: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, err.Error())

		default:
			h.logger.Error("GET /events - Failed to list events: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /events - Success: events_count=%d", len(result.Events))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
