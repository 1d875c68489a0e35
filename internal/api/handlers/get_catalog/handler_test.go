package get_catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/kstudio-agenda/internal/domain"
	catalogService "github.com/m04kA/kstudio-agenda/internal/service/catalog"
	"github.com/m04kA/kstudio-agenda/pkg/logger"
)

func TestHandler_Handle(t *testing.T) {
	svc := catalogService.NewService(domain.DefaultCatalog(), 15, 30, logger.NewNop())
	h := NewHandler(svc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body CatalogResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, 15, body.BufferMinutes)
	assert.Equal(t, 30, body.HoldMinutes)
	require.Len(t, body.Services, 6)
	assert.Equal(t, ServiceResponse{Name: "Escovar e modelar", BaseMinutes: 45, DurationMinutes: 60, DurationLabel: "1h00"}, body.Services[4])
	require.Len(t, body.Sessions, 2)
	assert.Equal(t, SessionResponse{Label: "Tarde", Start: "14:30", End: "19:00", LengthMinutes: 270}, body.Sessions[1])
}
