package get_free_busy

import (
	"context"
	"fmt"
	"time"
)

// UseCase запрос занятости календаря студии
type UseCase struct {
	gateway CalendarGateway
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(gateway CalendarGateway, logger Logger) *UseCase {
	return &UseCase{
		gateway: gateway,
		logger:  logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetFreeBusy: start=%s, end=%s",
		req.TimeMin.Format(time.RFC3339), req.TimeMax.Format(time.RFC3339))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetFreeBusy: validation failed: %v", err)
		return nil, err
	}

	busy, err := uc.gateway.QueryFreeBusy(ctx, req.TimeMin, req.TimeMax)
	if err != nil {
		uc.logger.Error("GetFreeBusy: calendar query failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	uc.logger.Info("GetFreeBusy: busy_count=%d", len(busy))
	return &Response{Busy: busy}, nil
}
