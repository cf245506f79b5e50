package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scened.toml")
	content := `
database = "` + filepath.Join(dir, "db", "scene.db") + `"
grid_size = 25
save_policy = "step"
cell_width = 8
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg := loadConfigFile(path)
	assert.Equal(t, filepath.Join(dir, "db", "scene.db"), cfg.Database)
	assert.Equal(t, 25.0, cfg.GridSize)
	assert.Equal(t, SaveEveryStep, cfg.SavePolicy)
	assert.Equal(t, 8.0, cfg.CellWidth)
	assert.Equal(t, 20.0, cfg.CellHeight)
	assert.Equal(t, 800.0, cfg.CanvasWidth)
}

func TestLoadConfigFileMissing(t *testing.T) {
	cfg := loadConfigFile(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Equal(t, SaveOnCommit, cfg.SavePolicy)
	assert.Equal(t, defaultGridSize, cfg.GridSize)
	assert.True(t, filepath.IsAbs(cfg.Database))
}

func TestLoadConfigFileFixesInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scened.toml")
	content := "grid_size = -3\nsave_policy = \"sometimes\"\ncanvas_width = 0\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg := loadConfigFile(path)
	assert.Equal(t, defaultGridSize, cfg.GridSize)
	assert.Equal(t, SaveOnCommit, cfg.SavePolicy)
	assert.Equal(t, 800.0, cfg.CanvasWidth)
}

func TestLoadConfigFileBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scened.toml")
	require.NoError(t, os.WriteFile(path, []byte("grid_size = = 3"), 0o644))

	cfg := loadConfigFile(path)
	assert.Equal(t, defaultGridSize, cfg.GridSize)
}
