package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenStorageCloser(t *testing.T) {
	cfg := testConfig()
	cfg.Database = filepath.Join(t.TempDir(), "scene.db")

	storage, closeStorage, err := openStorage(cfg)
	require.NoError(t, err)
	require.NoError(t, storage.Set(context.Background(), keySceneState, "[]"))
	closeStorage()

	_, _, err = storage.Get(context.Background(), keySceneState)
	assert.Error(t, err, "storage still usable after close")
}

func TestOpenStorageMemory(t *testing.T) {
	storage, closeStorage, err := openStorage(testConfig())
	require.NoError(t, err)
	defer closeStorage()
	assert.IsType(t, &MemoryStorage{}, storage)
}

func TestSetupLoggingWritesFile(t *testing.T) {
	cfg := testConfig()
	cfg.LogFile = filepath.Join(t.TempDir(), "scened.log")
	cfg.LogLevel = "debug"
	prev := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(prev)
		log.SetOutput(os.Stderr)
	})

	logger, closeLog, err := setupLogging(cfg)
	require.NoError(t, err)
	logger.Debug("gesture start", "state", "dragging")
	closeLog()

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "gesture start"), string(data))
}
