// Package config loads the YAML game configuration and applies difficulty
// presets.
package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Progression values.
const (
	ProgressionLines = "lines" // Gravity speeds up with each level
	ProgressionNone  = "none"  // Gravity stays at the start level's speed
)

// TetrisConfig contains all configuration for the falling-block game.
type TetrisConfig struct {
	Board      TetrisBoard      `yaml:"board"`
	Gravity    TetrisGravity    `yaml:"gravity"`
	Scoring    TetrisScoring    `yaml:"scoring"`
	Difficulty TetrisDifficulty `yaml:"difficulty"`
}

// TetrisBoard defines the playfield size in cells.
type TetrisBoard struct {
	Rows    int `yaml:"rows"`
	Columns int `yaml:"columns"`
}

// TetrisGravity defines how fast pieces fall.
type TetrisGravity struct {
	FallSpeed   float64 `yaml:"fall_speed"`   // Seconds per row at level 1
	SpeedFactor float64 `yaml:"speed_factor"` // Interval multiplier per level
}

// TetrisScoring defines point values and level pacing.
type TetrisScoring struct {
	LinePoints     int `yaml:"line_points"`      // Per line, multiplied by level
	LinesPerLevel  int `yaml:"lines_per_level"`  // Lines needed per level
	HardDropPoints int `yaml:"hard_drop_points"` // Per row descended
}

// TetrisDifficulty defines the starting level and progression mode.
type TetrisDifficulty struct {
	StartLevel  int    `yaml:"start_level"`
	Progression string `yaml:"progression"` // "lines" or "none"
}

// Validate checks that the config describes a playable game.
func (c TetrisConfig) Validate() error {
	if c.Board.Rows < 4 || c.Board.Columns < 4 {
		return fmt.Errorf("config: board %dx%d is smaller than 4x4: %w", c.Board.Columns, c.Board.Rows, ErrInvalid)
	}
	if c.Gravity.FallSpeed <= 0 {
		return fmt.Errorf("config: fall_speed must be positive, got %v: %w", c.Gravity.FallSpeed, ErrInvalid)
	}
	if c.Gravity.SpeedFactor <= 0 || c.Gravity.SpeedFactor > 1 {
		return fmt.Errorf("config: speed_factor must be in (0, 1], got %v: %w", c.Gravity.SpeedFactor, ErrInvalid)
	}
	if c.Scoring.LinePoints < 0 || c.Scoring.HardDropPoints < 0 {
		return fmt.Errorf("config: scoring points must not be negative: %w", ErrInvalid)
	}
	if c.Scoring.LinesPerLevel <= 0 {
		return fmt.Errorf("config: lines_per_level must be positive, got %d: %w", c.Scoring.LinesPerLevel, ErrInvalid)
	}
	if c.Difficulty.StartLevel < 1 {
		return fmt.Errorf("config: start_level must be at least 1, got %d: %w", c.Difficulty.StartLevel, ErrInvalid)
	}
	switch c.Difficulty.Progression {
	case ProgressionLines, ProgressionNone:
	default:
		return fmt.Errorf("config: unknown progression %q: %w", c.Difficulty.Progression, ErrInvalid)
	}
	return nil
}

// Fixed reports whether gravity ignores level changes.
func (c TetrisConfig) Fixed() bool {
	return c.Difficulty.Progression == ProgressionNone
}

// YAML encodes the config in the same layout the loader reads.
func (c TetrisConfig) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}
