package start_dispute

import (
	"errors"
	"net/http"

	"github.com/m04kA/kstudio-agenda/internal/api/handlers"
	startDispute "github.com/m04kA/kstudio-agenda/internal/usecase/start_dispute"
)

const (
	msgInvalidBody       = "некорректное тело запроса"
	msgRequiredFields    = "session и startTime обязательны"
	msgInvalidTime       = "некорректный формат времени, ожидается HH:MM"
	msgSlotNotFound      = "слот не найден в текущей сетке"
	msgSlotNotDisputed   = "слот не находится в статусе Em Disputa"
	msgDisputeInProgress = "холд для слота уже создан"
	msgHoldExpired       = "время удержания слота истекло"
	msgBoardClosed       = "сервис останавливается"
)

type Handler struct {
	useCase UseCase
	logger  Logger
}

func NewHandler(useCase UseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/schedule/disputes
// Body: {session, startTime}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req StartDisputeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedule/disputes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if req.Session == "" || req.StartTime == "" {
		h.logger.Warn("POST /schedule/disputes - Missing required fields")
		handlers.RespondBadRequest(w, msgRequiredFields)
		return
	}

	ucReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /schedule/disputes - Invalid start time %q: %v", req.StartTime, err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), ucReq)
	if err != nil {
		switch {
		case errors.Is(err, startDispute.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, startDispute.ErrSlotNotFound):
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, startDispute.ErrSlotNotDisputed):
			handlers.RespondError(w, http.StatusConflict, msgSlotNotDisputed)

		case errors.Is(err, startDispute.ErrDisputeInProgress):
			handlers.RespondError(w, http.StatusConflict, msgDisputeInProgress)

		case errors.Is(err, startDispute.ErrHoldExpired):
			handlers.RespondError(w, http.StatusConflict, msgHoldExpired)

		case errors.Is(err, startDispute.ErrUnavailable):
			handlers.RespondError(w, http.StatusServiceUnavailable, msgBoardClosed)

		case errors.Is(err, startDispute.ErrGateway):
			h.logger.Error("POST /schedule/disputes - Calendar error: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, err.Error())

		default:
			h.logger.Error("POST /schedule/disputes - Failed to start dispute: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedule/disputes - Hold created: id=%s, session=%s, time=%s",
		resp.ID, resp.Session, resp.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(resp))
}
