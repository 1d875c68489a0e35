package list_events

import (
	"context"
	"fmt"
)

// UseCase список ближайших событий календаря
type UseCase struct {
	gateway           CalendarGateway
	defaultMaxResults int64
	logger            Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(gateway CalendarGateway, defaultMaxResults int64, logger Logger) *UseCase {
	return &UseCase{
		gateway:           gateway,
		defaultMaxResults: defaultMaxResults,
		logger:            logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ListEvents: validation failed: %v", err)
		return nil, err
	}

	limit := req.MaxResults
	if limit == 0 {
		limit = uc.defaultMaxResults
	}

	events, err := uc.gateway.ListUpcoming(ctx, limit)
	if err != nil {
		uc.logger.Error("ListEvents: calendar list failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	uc.logger.Info("ListEvents: events_count=%d, limit=%d", len(events), limit)
	return &Response{Events: events}, nil
}
