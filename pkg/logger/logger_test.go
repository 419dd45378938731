package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "service.log")

	log, err := New(path, "info")
	require.NoError(t, err)

	log.Info("booking id=%d created", 42)
	log.Debug("hidden %s", "debug line")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "booking id=42 created")
	assert.NotContains(t, string(data), "hidden debug line")
}

func TestNew_UnknownLevel(t *testing.T) {
	_, err := New("", "verbose")
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "", "WARN", "warning", "error"} {
		_, err := parseLevel(level)
		assert.NoError(t, err, level)
	}
}

func TestNewNop(t *testing.T) {
	log := NewNop()
	log.Info("nothing %d", 1)
	log.Warn("nothing")
	log.Error("nothing")
	assert.NoError(t, log.Close())
}
