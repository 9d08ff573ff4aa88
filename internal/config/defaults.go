package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the classic 10x20 configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: TetrisBoard{
			Rows:    20,
			Columns: 10,
		},
		Gravity: TetrisGravity{
			FallSpeed:   0.27,
			SpeedFactor: 0.8,
		},
		Scoring: TetrisScoring{
			LinePoints:     100,
			LinesPerLevel:  10,
			HardDropPoints: 1,
		},
		Difficulty: TetrisDifficulty{
			StartLevel:  1,
			Progression: ProgressionLines,
		},
	}
}
