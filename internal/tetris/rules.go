package tetris

import (
	"math"
	"time"
)

// Board dimensions of the reference configuration.
const (
	DefaultRows    = 20
	DefaultColumns = 10
)

// Rules holds the scoring and gravity constants of a session.
type Rules struct {
	LinePoints     int           // Points per cleared line, multiplied by level
	LinesPerLevel  int           // Level L ends once total lines reach L*LinesPerLevel
	HardDropPoints int           // Points per row descended by a hard drop
	FallSpeed      time.Duration // Gravity interval at level 1
	SpeedFactor    float64       // Interval multiplier per level above 1
	FixedSpeed     bool          // Keep the start level's interval for the whole game
	StartLevel     int
}

// DefaultRules returns the classic constants.
func DefaultRules() Rules {
	return Rules{
		LinePoints:     100,
		LinesPerLevel:  10,
		HardDropPoints: 1,
		FallSpeed:      270 * time.Millisecond,
		SpeedFactor:    0.8,
		StartLevel:     1,
	}
}

// FallInterval returns how long a piece waits between gravity steps at level.
func (r Rules) FallInterval(level int) time.Duration {
	if r.FixedSpeed {
		level = r.StartLevel
	}
	if level < 1 {
		level = 1
	}
	scale := math.Pow(r.SpeedFactor, float64(level-1))
	return time.Duration(float64(r.FallSpeed) * scale)
}

// LineScore returns the points for clearing lines rows at once on level.
func (r Rules) LineScore(lines, level int) int {
	return lines * r.LinePoints * level
}
