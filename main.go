package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	config := loadConfig()

	logger, closeLog, err := setupLogging(config)
	if err != nil {
		return err
	}
	defer closeLog()

	storage, closeStorage, err := openStorage(config)
	if err != nil {
		return err
	}
	defer closeStorage()

	editor := NewEditor(storage, config, logger)
	m := initialModel(editor, config)

	ctx := context.Background()
	if err := editor.LoadPreferences(ctx); err != nil {
		logger.Error("load preferences", "err", err)
		m.errorMessage = err.Error()
	}
	if _, err := editor.Load(ctx); err != nil {
		logger.Error("load scene", "err", err)
		m.errorMessage = "Stored scene could not be read; starting empty"
	}

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

// setupLogging sends slog output to the configured log file. The terminal
// belongs to the UI, so without a log file logs are discarded.
func setupLogging(config *Config) (*slog.Logger, func(), error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(config.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	if config.LogFile == "" {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		return logger, func() {}, nil
	}
	f, err := tea.LogToFile(config.LogFile, "scened")
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger, func() { f.Close() }, nil
}

func openStorage(config *Config) (Storage, func(), error) {
	if config.Database == "" {
		return NewMemoryStorage(), func() {}, nil
	}
	s, err := OpenSQLiteStorage(context.Background(), config.Database)
	if err != nil {
		return nil, nil, err
	}
	return s, func() { s.Close() }, nil
}
