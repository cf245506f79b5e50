package main

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

// countingStorage records how many times each key was written.
type countingStorage struct {
	*MemoryStorage
	writes map[string]int
}

func newCountingStorage() *countingStorage {
	return &countingStorage{MemoryStorage: NewMemoryStorage(), writes: make(map[string]int)}
}

func (c *countingStorage) Set(ctx context.Context, key, value string) error {
	c.writes[key]++
	return c.MemoryStorage.Set(ctx, key, value)
}

func testConfig() *Config {
	cfg := defaultConfig()
	cfg.Database = ""
	return cfg
}

func newTestEditor(t *testing.T, storage Storage) *Editor {
	t.Helper()
	if storage == nil {
		storage = NewMemoryStorage()
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewEditor(storage, testConfig(), logger)
}

func mustAdd(t *testing.T, ed *Editor, kind Kind) Element {
	t.Helper()
	scene, err := ed.AddShape(kind)
	require.NoError(t, err)
	require.NotEmpty(t, scene.Elements)
	return scene.Elements[len(scene.Elements)-1]
}
