package main

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Database        string     `toml:"database"`
	ExportDirectory string     `toml:"export_directory"`
	LogFile         string     `toml:"log_file"`
	LogLevel        string     `toml:"log_level"`
	CanvasWidth     float64    `toml:"canvas_width"`
	CanvasHeight    float64    `toml:"canvas_height"`
	CellWidth       float64    `toml:"cell_width"`
	CellHeight      float64    `toml:"cell_height"`
	GridSize        float64    `toml:"grid_size"`
	SavePolicy      SavePolicy `toml:"save_policy"`
}

const configFileName = ".scened.toml"

func defaultConfig() *Config {
	return &Config{
		Database:        "~/.local/share/scened/scene.db",
		ExportDirectory: "",
		LogFile:         "",
		LogLevel:        "info",
		CanvasWidth:     800,
		CanvasHeight:    600,
		CellWidth:       10,
		CellHeight:      20,
		GridSize:        defaultGridSize,
		SavePolicy:      SaveOnCommit,
	}
}

// loadConfig reads ~/.scened.toml. A missing or unreadable file yields the
// defaults; a field left out of the file keeps its default.
func loadConfig() *Config {
	path, err := homedir.Expand("~/" + configFileName)
	if err != nil {
		return finishConfig(defaultConfig())
	}
	return loadConfigFile(path)
}

func loadConfigFile(path string) *Config {
	config := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return finishConfig(config)
	}
	if err := toml.Unmarshal(data, config); err != nil {
		return finishConfig(defaultConfig())
	}
	return finishConfig(config)
}

func finishConfig(config *Config) *Config {
	config.Database = expandPath(config.Database)
	config.ExportDirectory = expandPath(config.ExportDirectory)
	config.LogFile = expandPath(config.LogFile)

	fallback := defaultConfig()
	if config.CanvasWidth <= 0 {
		config.CanvasWidth = fallback.CanvasWidth
	}
	if config.CanvasHeight <= 0 {
		config.CanvasHeight = fallback.CanvasHeight
	}
	if config.CellWidth <= 0 {
		config.CellWidth = fallback.CellWidth
	}
	if config.CellHeight <= 0 {
		config.CellHeight = fallback.CellHeight
	}
	if config.GridSize <= 0 {
		config.GridSize = fallback.GridSize
	}
	if config.SavePolicy != SaveEveryStep && config.SavePolicy != SaveOnCommit {
		config.SavePolicy = SaveOnCommit
	}
	return config
}

func expandPath(value string) string {
	if value == "" {
		return ""
	}
	if expanded, err := homedir.Expand(value); err == nil {
		value = expanded
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}
