package toggle_strategic_block

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/kstudio-agenda/internal/domain"
	"github.com/m04kA/kstudio-agenda/internal/presentation"
	"github.com/m04kA/kstudio-agenda/pkg/logger"
	"github.com/m04kA/kstudio-agenda/pkg/types"
)

func newBoard(t *testing.T) *presentation.Board {
	t.Helper()
	board, err := presentation.NewBoard(presentation.Options{
		Catalog:  domain.DefaultCatalog(),
		Clock:    clockwork.NewFakeClockAt(time.Date(2026, time.March, 10, 8, 0, 0, 0, time.UTC)),
		Location: time.UTC,
		Logger:   logger.NewNop(),
	})
	require.NoError(t, err)
	t.Cleanup(board.Close)
	return board
}

func toggle(board Board, hhmm string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/schedule/strategic/{time}", NewHandler(board, logger.NewNop()).Handle).Methods(http.MethodPost)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/schedule/strategic/"+hhmm, nil))
	return rec
}

func TestHandler_Toggle(t *testing.T) {
	board := newBoard(t)

	rec := toggle(board, "10:00")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"time":"10:00","strategic":true}`, rec.Body.String())
	assert.Equal(t, []types.TimeString{types.MustTimeString("10:00")}, board.StrategicTimes())

	rec = toggle(board, "10:00")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"time":"10:00","strategic":false}`, rec.Body.String())
	assert.Empty(t, board.StrategicTimes())
}

func TestHandler_InvalidTime(t *testing.T) {
	board := newBoard(t)

	for _, raw := range []string{"9:30", "25:00", "abc"} {
		rec := toggle(board, raw)
		assert.Equal(t, http.StatusBadRequest, rec.Code, raw)
		assert.Contains(t, rec.Body.String(), msgInvalidTime)
	}
	assert.Empty(t, board.StrategicTimes())
}

func TestHandler_ClosedBoard(t *testing.T) {
	board := newBoard(t)
	board.Close()

	rec := toggle(board, "10:00")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
