package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	gametetris "github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// newLogger builds the CLI logger. With toFile set, output goes to
// --log-file so it does not draw over the alt screen; if that file can't
// be opened, logging is discarded.
func newLogger(toFile bool) (*log.Logger, func()) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		level = log.WarnLevel
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	if toFile {
		f, openErr := openLogFile(flagLogFile)
		if openErr != nil {
			w = io.Discard
		} else {
			w = f
			closeFn = func() { f.Close() }
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
		Level:           level,
	})
	if err != nil {
		logger.Warn("unknown log level, using warn", "level", flagLogLevel)
	}
	return logger, closeFn
}

func openLogFile(path string) (*os.File, error) {
	path, err := storage.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// openScores opens the score history and best-score file. Either may be
// missing; the game runs without them.
func openScores(logger *log.Logger) (*storage.HighScores, func()) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		store = nil
	}

	file, err := storage.NewHighScoreFile(flagHighScore)
	if err != nil {
		logger.Warn("could not use best-score file", "path", flagHighScore, "error", err)
		file = nil
	}

	return storage.NewHighScores(file, store), func() {
		if store != nil {
			store.Close()
		}
	}
}

// configureGames applies --config and --difficulty to games created
// afterwards. A custom config that can't be loaded is an error; a broken
// file found by the default search only produces a warning.
func configureGames(logger *log.Logger) error {
	if err := gametetris.SetDifficultyPreset(flagDifficulty); err != nil {
		return err
	}
	gametetris.SetConfigPath(flagConfig)

	if _, err := config.LoadTetris(flagConfig); err != nil {
		if flagConfig != "" {
			return err
		}
		logger.Warn("using default config", "error", err)
	}
	return nil
}

// effectiveConfig returns the config a new game would use.
func effectiveConfig() (config.TetrisConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.TetrisConfig{}, err
	}
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		if flagConfig != "" {
			return config.TetrisConfig{}, fmt.Errorf("load config: %w", err)
		}
		cfg = config.DefaultTetrisConfig()
	}
	config.ApplyTetrisPreset(&cfg, preset)
	return cfg, nil
}

func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
