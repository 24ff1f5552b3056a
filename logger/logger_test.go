package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesToFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.File = filepath.Join(t.TempDir(), "game.log")

	log, closeFn, err := New(cfg)
	require.NoError(t, err)

	log.Infow("frame loop started", "fps", 60)
	log.Debugw("below level")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(cfg.File)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "frame loop started")
	assert.Contains(t, out, `"fps": 60`)
	assert.Contains(t, out, "logger_test.go")
	assert.NotContains(t, out, "below level")
}

func TestNewDebugLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.File = filepath.Join(t.TempDir(), "debug.log")
	cfg.Level = "debug"

	log, closeFn, err := New(cfg)
	require.NoError(t, err)
	log.Debugw("tick", "elapsed_ms", 16)
	require.NoError(t, closeFn())

	data, err := os.ReadFile(cfg.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), "DEBUG")
}

func TestNewDisabled(t *testing.T) {
	log, closeFn, err := New(Config{})
	require.NoError(t, err)
	require.NotNil(t, log)
	log.Infow("discarded")
	assert.NoError(t, closeFn())
}

func TestNewBadLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.File = filepath.Join(t.TempDir(), "x.log")
	cfg.Level = "loud"
	_, _, err := New(cfg)
	assert.Error(t, err)
}
