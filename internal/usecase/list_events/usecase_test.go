package list_events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/kstudio-agenda/internal/domain"
	"github.com/m04kA/kstudio-agenda/pkg/logger"
)

type fakeGateway struct {
	events []domain.Event
	err    error
	limit  int64
}

func (g *fakeGateway) ListUpcoming(_ context.Context, maxResults int64) ([]domain.Event, error) {
	g.limit = maxResults
	return g.events, g.err
}

func TestUseCase_Execute_DefaultLimit(t *testing.T) {
	gateway := &fakeGateway{events: []domain.Event{{ID: "evt-1"}, {ID: "evt-2"}}}
	uc := NewUseCase(gateway, domain.DefaultMaxEvents, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.Equal(t, int64(25), gateway.limit)
	assert.Equal(t, gateway.events, resp.Events)
}

func TestUseCase_Execute_CustomLimit(t *testing.T) {
	gateway := &fakeGateway{}
	uc := NewUseCase(gateway, domain.DefaultMaxEvents, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{MaxResults: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(5), gateway.limit)

	_, err = uc.Execute(context.Background(), &Request{MaxResults: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{MaxResults: maxResultsLimit + 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_Execute_GatewayError(t *testing.T) {
	gateway := &fakeGateway{err: errors.New("calendar not configured")}
	uc := NewUseCase(gateway, domain.DefaultMaxEvents, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{})
	require.ErrorIs(t, err, ErrGateway)
	assert.Contains(t, err.Error(), "calendar not configured")
}
