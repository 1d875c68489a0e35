package create_hold

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/kstudio-agenda/internal/domain"
)

// UseCase создание предварительного холда в календаре
type UseCase struct {
	gateway CalendarGateway
	metrics Metrics
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(gateway CalendarGateway, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		gateway: gateway,
		metrics: metrics,
		logger:  logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateHold: service=%s, start=%s, end=%s, expires_at=%s, strategic=%t",
		req.Service, req.Start.Format(time.RFC3339), req.End.Format(time.RFC3339),
		req.ExpiresAt.Format(time.RFC3339), req.Strategic)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateHold: validation failed: %v", err)
		return nil, err
	}

	id, err := uc.gateway.CreateHold(ctx, domain.Hold{
		Start:     req.Start,
		End:       req.End,
		Service:   req.Service,
		ExpiresAt: req.ExpiresAt,
		Strategic: req.Strategic,
	})
	if err != nil {
		uc.logger.Error("CreateHold: calendar insert failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	uc.metrics.IncHoldCreated(req.Strategic)
	uc.logger.Info("CreateHold: created id=%s", id)

	return &Response{ID: id}, nil
}
