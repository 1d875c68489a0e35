package create_hold

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createHold "github.com/m04kA/kstudio-agenda/internal/usecase/create_hold"
	"github.com/m04kA/kstudio-agenda/pkg/logger"
)

type fakeUseCase struct {
	resp *createHold.Response
	err  error
	req  *createHold.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createHold.Request) (*createHold.Response, error) {
	f.req = req
	return f.resp, f.err
}

func post(uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/holds/create", strings.NewReader(body))
	NewHandler(uc, logger.NewNop()).Handle(rec, req)
	return rec
}

const validBody = `{
	"startIso": "2026-03-10T10:00:00+00:00",
	"endIso": "2026-03-10T12:00:00+00:00",
	"service": "Manutenção 100–150g",
	"expiresAtIso": "2026-03-10T09:30:00Z",
	"strategic": true
}`

func TestHandler_Success(t *testing.T) {
	uc := &fakeUseCase{resp: &createHold.Response{ID: "evt-1"}}

	rec := post(uc, validBody)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"evt-1"}`, rec.Body.String())

	require.NotNil(t, uc.req)
	assert.Equal(t, "Manutenção 100–150g", uc.req.Service)
	assert.True(t, uc.req.Strategic)
	assert.True(t, uc.req.Start.Equal(time.Date(2026, time.March, 10, 10, 0, 0, 0, time.UTC)))
	assert.True(t, uc.req.ExpiresAt.Equal(time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC)))
}

func TestHandler_MissingFields(t *testing.T) {
	bodies := map[string]string{
		"no service":    `{"startIso":"2026-03-10T10:00:00Z","endIso":"2026-03-10T12:00:00Z","expiresAtIso":"2026-03-10T09:30:00Z"}`,
		"no start":      `{"endIso":"2026-03-10T12:00:00Z","service":"Lavar","expiresAtIso":"2026-03-10T09:30:00Z"}`,
		"no expiresAt":  `{"startIso":"2026-03-10T10:00:00Z","endIso":"2026-03-10T12:00:00Z","service":"Lavar"}`,
		"blank service": `{"startIso":"2026-03-10T10:00:00Z","endIso":"2026-03-10T12:00:00Z","service":"   ","expiresAtIso":"2026-03-10T09:30:00Z"}`,
		"empty object":  `{}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			uc := &fakeUseCase{}
			rec := post(uc, body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error":"startIso, endIso, service, expiresAtIso required"}`, rec.Body.String())
			assert.Nil(t, uc.req)
		})
	}
}

func TestHandler_ExtraFieldsAccepted(t *testing.T) {
	uc := &fakeUseCase{resp: &createHold.Response{ID: "evt-2"}}
	body := `{"startIso":"2026-03-10T10:00:00Z","endIso":"2026-03-10T12:00:00Z","service":"Lavar",` +
		`"expiresAtIso":"2026-03-10T09:30:00Z","clientVersion":"1.2.0"}`

	rec := post(uc, body)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"evt-2"}`, rec.Body.String())
	require.NotNil(t, uc.req)
	assert.Equal(t, "Lavar", uc.req.Service)
}

func TestHandler_InvalidBody(t *testing.T) {
	uc := &fakeUseCase{}
	rec := post(uc, `{"startIso":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.req)
}

func TestHandler_InvalidTimestamp(t *testing.T) {
	uc := &fakeUseCase{}
	rec := post(uc, `{"startIso":"10:00","endIso":"2026-03-10T12:00:00Z","service":"Lavar","expiresAtIso":"2026-03-10T09:30:00Z"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.req)
}

func TestHandler_UseCaseErrors(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		rec := post(&fakeUseCase{err: fmt.Errorf("%w: end must be after start", createHold.ErrInvalidInput)}, validBody)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("calendar error passes message", func(t *testing.T) {
		rec := post(&fakeUseCase{err: fmt.Errorf("%w: googleapi: Error 403: Forbidden", createHold.ErrGateway)}, validBody)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "Error 403: Forbidden")
	})
}
