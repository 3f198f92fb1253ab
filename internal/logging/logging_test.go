package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pronounce.log")

	logger, err := New(Options{Level: "debug", Path: path})
	require.NoError(t, err)

	logger.Infow("recording started", "sample_rate", 16000)
	_ = logger.Sync() // stderr sync fails on pipes

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "recording started")
	assert.Contains(t, string(data), `"sample_rate":16000`)
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	assert.Error(t, err)
}

func TestNewDefaultsToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pronounce.log")

	logger, err := New(Options{Path: path})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("visible")
	_ = logger.Sync() // stderr sync fails on pipes

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "visible")
}
