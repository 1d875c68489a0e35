package create_hold

import (
	"errors"
	"net/http"

	"github.com/m04kA/kstudio-agenda/internal/api/handlers"
	createHold "github.com/m04kA/kstudio-agenda/internal/usecase/create_hold"
)

const (
	msgInvalidBody      = "некорректное тело запроса"
	msgRequiredFields   = "startIso, endIso, service, expiresAtIso required"
	msgInvalidTimestamp = "startIso, endIso and expiresAtIso must be RFC3339 timestamps, endIso after startIso"
)

type Handler struct {
	useCase CreateHoldUseCase
	logger  Logger
}

func NewHandler(useCase CreateHoldUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /holds/create
// Body: {startIso, endIso, service, expiresAtIso, strategic?}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateHoldRequest
	if err := handlers.DecodeJSONLenient(r, &req); err != nil {
		h.logger.Warn("POST /holds/create - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if !req.HasRequiredFields() {
		h.logger.Warn("POST /holds/create - Missing required fields")
		handlers.RespondBadRequest(w, msgRequiredFields)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /holds/create - Invalid timestamp: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimestamp)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createHold.ErrInvalidInput):
			h.logger.Warn("POST /holds/create - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimestamp)

		case errors.Is(err, createHold.ErrGateway):
			h.logger.Error("POST /holds/create - Calendar error: service=%s, error=%v", req.Service, err)
			handlers.RespondError(w, http.StatusInternalServerError, err.Error())

		default:
			h.logger.Error("POST /holds/create - Failed to create hold: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /holds/create - Hold created: id=%s, service=%s, strategic=%t",
		result.ID, req.Service, req.Strategic)
	handlers.RespondJSON(w, http.StatusOK, CreateHoldResponse{ID: result.ID})
}
