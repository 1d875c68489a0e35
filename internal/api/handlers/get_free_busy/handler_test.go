package get_free_busy

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/kstudio-agenda/internal/domain"
	getFreeBusy "github.com/m04kA/kstudio-agenda/internal/usecase/get_free_busy"
	"github.com/m04kA/kstudio-agenda/pkg/logger"
)

type fakeUseCase struct {
	resp *getFreeBusy.Response
	err  error
	req  *getFreeBusy.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *getFreeBusy.Request) (*getFreeBusy.Response, error) {
	f.req = req
	return f.resp, f.err
}

func serve(uc *fakeUseCase, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_Success(t *testing.T) {
	uc := &fakeUseCase{resp: &getFreeBusy.Response{Busy: []domain.BusyInterval{
		{Start: "2026-03-10T09:30:00Z", End: "2026-03-10T11:30:00Z"},
	}}}

	rec := serve(uc, "/freebusy?start=2026-03-10T00:00:00Z&end=2026-03-11T00:00:00Z")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"busy":[{"start":"2026-03-10T09:30:00Z","end":"2026-03-10T11:30:00Z"}]}`, rec.Body.String())
	assert.Equal(t, "2026-03-10T00:00:00Z", uc.req.TimeMin.UTC().Format("2006-01-02T15:04:05Z"))
}

func TestHandler_EmptyBusyIsArray(t *testing.T) {
	uc := &fakeUseCase{resp: &getFreeBusy.Response{}}

	rec := serve(uc, "/freebusy?start=2026-03-10T00:00:00Z&end=2026-03-11T00:00:00Z")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"busy":[]}`, rec.Body.String())
}

func TestHandler_MissingParams(t *testing.T) {
	for _, target := range []string{
		"/freebusy",
		"/freebusy?start=2026-03-10T00:00:00Z",
		"/freebusy?end=2026-03-11T00:00:00Z",
	} {
		t.Run(target, func(t *testing.T) {
			uc := &fakeUseCase{}
			rec := serve(uc, target)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error":"start and end required (ISO)"}`, rec.Body.String())
			assert.Nil(t, uc.req)
		})
	}
}

func TestHandler_InvalidTimestamp(t *testing.T) {
	uc := &fakeUseCase{}
	rec := serve(uc, "/freebusy?start=yesterday&end=2026-03-11T00:00:00Z")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.req)
}

func TestHandler_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{
			name:   "invalid range",
			err:    fmt.Errorf("%w: end must be after start", getFreeBusy.ErrInvalidInput),
			status: http.StatusBadRequest,
			body:   msgInvalidRange,
		},
		{
			name:   "calendar error passes message",
			err:    fmt.Errorf("%w: googleapi: Error 404: Not Found", getFreeBusy.ErrGateway),
			status: http.StatusInternalServerError,
			body:   "usecase: calendar error: googleapi: Error 404: Not Found",
		},
		{
			name:   "unexpected",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
			body:   "внутренняя ошибка сервера",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{err: tt.err}, "/freebusy?start=2026-03-10T00:00:00Z&end=2026-03-11T00:00:00Z")

			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"error":%q}`, tt.body), rec.Body.String())
		})
	}
}
