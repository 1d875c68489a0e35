package get_free_busy

import (
	"errors"
	"net/http"

	"github.com/m04kA/kstudio-agenda/internal/api/handlers"
	getFreeBusy "github.com/m04kA/kstudio-agenda/internal/usecase/get_free_busy"
)

const (
	msgMissingRange = "start and end required (ISO)"
	msgInvalidRange = "start and end must be RFC3339 timestamps, end after start"
)

type Handler struct {
	useCase GetFreeBusyUseCase
	logger  Logger
}

func NewHandler(useCase GetFreeBusyUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /freebusy
// Query params: start (required, RFC3339), end (required, RFC3339)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")
	if startStr == "" || endStr == "" {
		h.logger.Warn("GET /freebusy - Missing start or end")
		handlers.RespondBadRequest(w, msgMissingRange)
		return
	}

	useCaseReq, err := ToUseCaseRequest(startStr, endStr)
	if err != nil {
		h.logger.Warn("GET /freebusy - Invalid timestamp: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getFreeBusy.ErrInvalidInput):
			h.logger.Warn("GET /freebusy - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, getFreeBusy.ErrGateway):
			h.logger.Error("GET /freebusy - Calendar error: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, err.Error())

		default:
			h.logger.Error("GET /freebusy - Failed to query free/busy: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /freebusy - Success: busy_count=%d", len(result.Busy))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
