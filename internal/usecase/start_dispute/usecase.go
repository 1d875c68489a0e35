package start_dispute

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/kstudio-agenda/internal/presentation"
)

// UseCase спор за disputed слот: резервирует слот на доске и создает холд в календаре.
// Если календарь вернул ошибку, резерв снимается и слот снова доступен для спора.
type UseCase struct {
	board   Board
	gateway CalendarGateway
	metrics Metrics
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(board Board, gateway CalendarGateway, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		board:   board,
		gateway: gateway,
		metrics: metrics,
		logger:  logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("StartDispute: session=%s, time=%s", req.Session, req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("StartDispute: validation failed: %v", err)
		return nil, err
	}

	// 2. Резервируем слот на доске
	dispute, err := uc.board.PrepareDispute(ctx, req.Session, req.StartTime)
	if err != nil {
		return nil, uc.mapBoardError(req, err)
	}

	// 3. Создаем холд в календаре
	holdID, err := uc.gateway.CreateHold(ctx, dispute.Hold())
	if err != nil {
		uc.board.AbortDispute(dispute)
		uc.logger.Error("StartDispute: calendar insert failed: slot=%s, error=%v", dispute.Key, err)
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	// 4. Привязываем холд к слоту
	uc.board.CompleteDispute(dispute, holdID)
	uc.metrics.IncHoldCreated(dispute.Strategic)

	uc.logger.Info("StartDispute: hold created: slot=%s, hold_id=%s, expires_at=%s",
		dispute.Key, holdID, dispute.ExpiresAt.Format(time.RFC3339))

	return &Response{
		ID:               holdID,
		Session:          dispute.Key.Session,
		StartTime:        dispute.Key.StartTime,
		Service:          dispute.Service,
		Strategic:        dispute.Strategic,
		Start:            dispute.Start,
		End:              dispute.End,
		ExpiresAt:        dispute.ExpiresAt,
		CountdownSeconds: dispute.CountdownSeconds,
	}, nil
}

func (uc *UseCase) mapBoardError(req *Request, err error) error {
	switch {
	case errors.Is(err, presentation.ErrSlotNotFound):
		uc.logger.Warn("StartDispute: slot not found: session=%s, time=%s", req.Session, req.StartTime)
		return fmt.Errorf("%w: %s@%s", ErrSlotNotFound, req.Session, req.StartTime)
	case errors.Is(err, presentation.ErrSlotNotDisputed):
		uc.logger.Warn("StartDispute: slot is not disputed: session=%s, time=%s", req.Session, req.StartTime)
		return fmt.Errorf("%w: %s@%s", ErrSlotNotDisputed, req.Session, req.StartTime)
	case errors.Is(err, presentation.ErrDisputeInProgress):
		uc.logger.Warn("StartDispute: hold already requested: session=%s, time=%s", req.Session, req.StartTime)
		return fmt.Errorf("%w: %s@%s", ErrDisputeInProgress, req.Session, req.StartTime)
	case errors.Is(err, presentation.ErrHoldExpired):
		uc.logger.Warn("StartDispute: countdown expired: session=%s, time=%s", req.Session, req.StartTime)
		return fmt.Errorf("%w: %s@%s", ErrHoldExpired, req.Session, req.StartTime)
	case errors.Is(err, presentation.ErrClosed):
		uc.logger.Warn("StartDispute: board closed")
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	default:
		uc.logger.Error("StartDispute: board error: %v", err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
