package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondJSON(rec, http.StatusCreated, map[string]string{"id": "evt-1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":"evt-1"}`, rec.Body.String())
}

func TestRespondErrors(t *testing.T) {
	tests := []struct {
		name    string
		respond func(w http.ResponseWriter)
		status  int
		message string
	}{
		{"bad request", func(w http.ResponseWriter) { RespondBadRequest(w, "bad") }, http.StatusBadRequest, "bad"},
		{"not found", func(w http.ResponseWriter) { RespondNotFound(w, "missing") }, http.StatusNotFound, "missing"},
		{"too many", func(w http.ResponseWriter) { RespondTooManyRequests(w, "slow") }, http.StatusTooManyRequests, "slow"},
		{"internal", RespondInternalError, http.StatusInternalServerError, msgInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.respond(rec)

			assert.Equal(t, tt.status, rec.Code)
			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.message, body.Error)
		})
	}
}

func TestDecodeJSON_UnknownField(t *testing.T) {
	var dst struct {
		Service string `json:"service"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"service":"Lavar"}`))
	require.NoError(t, DecodeJSON(req, &dst))
	assert.Equal(t, "Lavar", dst.Service)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"service":"Lavar","extra":1}`))
	assert.Error(t, DecodeJSON(req, &dst))
}

func TestDecodeJSONLenient_IgnoresUnknownField(t *testing.T) {
	var dst struct {
		Service string `json:"service"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"service":"Lavar","extra":1}`))
	require.NoError(t, DecodeJSONLenient(req, &dst))
	assert.Equal(t, "Lavar", dst.Service)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"service":`))
	assert.Error(t, DecodeJSONLenient(req, &dst))
}
