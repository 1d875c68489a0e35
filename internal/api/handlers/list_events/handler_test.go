package list_events

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/kstudio-agenda/internal/domain"
	listEvents "github.com/m04kA/kstudio-agenda/internal/usecase/list_events"
	"github.com/m04kA/kstudio-agenda/pkg/logger"
)

type fakeUseCase struct {
	resp *listEvents.Response
	err  error
	req  *listEvents.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *listEvents.Request) (*listEvents.Response, error) {
	f.req = req
	return f.resp, f.err
}

func get(uc *fakeUseCase, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_Success(t *testing.T) {
	uc := &fakeUseCase{resp: &listEvents.Response{Events: []domain.Event{
		{
			ID:        "evt-1",
			Summary:   "Em Disputa — Lavar",
			Status:    "tentative",
			Start:     "2026-03-10T10:00:00Z",
			End:       "2026-03-10T10:40:00Z",
			Hold:      true,
			Service:   "Lavar",
			ExpiresAt: "2026-03-10T09:30:00Z",
		},
	}}}

	rec := get(uc, "/events")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{
		"id": "evt-1",
		"summary": "Em Disputa — Lavar",
		"status": "tentative",
		"start": "2026-03-10T10:00:00Z",
		"end": "2026-03-10T10:40:00Z",
		"hold": true,
		"strategic": false,
		"service": "Lavar",
		"expiresAt": "2026-03-10T09:30:00Z"
	}]`, rec.Body.String())
	assert.Zero(t, uc.req.MaxResults)
}

func TestHandler_EmptyListIsArray(t *testing.T) {
	rec := get(&fakeUseCase{resp: &listEvents.Response{}}, "/events")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandler_MaxResults(t *testing.T) {
	uc := &fakeUseCase{resp: &listEvents.Response{}}
	rec := get(uc, "/events?maxResults=5")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(5), uc.req.MaxResults)

	for _, raw := range []string{"0", "-3", "ten"} {
		uc := &fakeUseCase{}
		rec := get(uc, "/events?maxResults="+raw)
		assert.Equal(t, http.StatusBadRequest, rec.Code, raw)
		assert.Nil(t, uc.req)
	}
}

func TestHandler_CalendarError(t *testing.T) {
	rec := get(&fakeUseCase{err: fmt.Errorf("%w: googlecalendar: not configured", listEvents.ErrGateway)}, "/events")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "not configured")
}
