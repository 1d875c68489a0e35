package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	log, err := New(path, "info")
	require.NoError(t, err)

	log.Info("hold created id=%s", "evt-1")
	log.Debug("debug is filtered out")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hold created id=evt-1")
	assert.NotContains(t, string(data), "debug is filtered out")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("", "verbose")
	assert.Error(t, err)
}

func TestNew_DefaultLevel(t *testing.T) {
	log, err := New("", "")
	require.NoError(t, err)
	assert.NoError(t, log.Close())
}

func TestNewNop(t *testing.T) {
	log := NewNop()
	log.Info("nothing %d", 1)
	log.Warn("nothing")
	log.Error("nothing")
	assert.NoError(t, log.Close())
}
