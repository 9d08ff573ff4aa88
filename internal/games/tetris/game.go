// Package tetris adapts the falling-block engine to the platform's Game
// interface: it maps input actions to engine commands, turns fixed ticks
// into gravity time and draws the board into a core.Screen.
package tetris

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	engine "github.com/vovakirdan/tui-tetris/internal/tetris"
)

// ID is the registry and score-storage identifier.
const ID = "tetris"

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets a custom config file path for games created afterwards.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the preset for games created afterwards.
// An empty name keeps the config file's settings.
func SetDifficultyPreset(name string) error {
	preset, err := config.ParsePreset(name)
	if err != nil {
		return err
	}
	difficultyPreset = preset
	return nil
}

// Game implements registry.Game over an engine session.
type Game struct {
	configPath string
	preset     config.DifficultyPreset

	cfg      config.TetrisConfig
	fixedCfg bool // cfg was supplied by the caller; skip the file search
	loadErr  error

	runtime core.RuntimeConfig
	tick    time.Duration
	session *engine.Session
	best    int
}

// New creates a game using the package-level config path and preset.
func New() *Game {
	return &Game{
		configPath: configPath,
		preset:     difficultyPreset,
		cfg:        config.DefaultTetrisConfig(),
	}
}

// NewWithConfig creates a game with an explicit configuration, bypassing
// the file search.
func NewWithConfig(cfg config.TetrisConfig) *Game {
	return &Game{cfg: cfg, fixedCfg: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Tetris"
}

// SetDifficulty overrides the preset for this instance. It takes effect
// on the next Reset.
func (g *Game) SetDifficulty(name string) error {
	preset, err := config.ParsePreset(name)
	if err != nil {
		return err
	}
	g.preset = preset
	return nil
}

// Reset loads the configuration and starts a new session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixedCfg {
		cfg, err := config.LoadTetris(g.configPath)
		if err != nil {
			cfg = config.DefaultTetrisConfig()
		}
		g.loadErr = err
		config.ApplyTetrisPreset(&cfg, g.preset)
		g.cfg = cfg
	}

	rate := runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	g.tick = time.Second / time.Duration(rate)

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	if g.session != nil {
		g.best = max(g.best, g.session.Best())
	}
	g.session = engine.NewSession(engine.Options{
		Rows:      g.cfg.Board.Rows,
		Columns:   g.cfg.Board.Columns,
		Rules:     RulesFromConfig(g.cfg),
		Generator: engine.NewRandomGenerator(seed),
		HighScore: g.best,
	})
}

// LoadError returns the error from the last config load, if any. The game
// falls back to defaults when it is non-nil.
func (g *Game) LoadError() error {
	return g.loadErr
}

// Config returns the effective configuration.
func (g *Game) Config() config.TetrisConfig {
	return g.cfg
}

// RulesFromConfig converts the YAML settings into engine rules.
func RulesFromConfig(cfg config.TetrisConfig) engine.Rules {
	return engine.Rules{
		LinePoints:     cfg.Scoring.LinePoints,
		LinesPerLevel:  cfg.Scoring.LinesPerLevel,
		HardDropPoints: cfg.Scoring.HardDropPoints,
		FallSpeed:      time.Duration(math.Round(cfg.Gravity.FallSpeed * float64(time.Second))),
		SpeedFactor:    cfg.Gravity.SpeedFactor,
		FixedSpeed:     cfg.Fixed(),
		StartLevel:     cfg.Difficulty.StartLevel,
	}
}

var commands = map[core.Action]engine.Command{
	core.ActionLeft:    engine.CmdMoveLeft,
	core.ActionRight:   engine.CmdMoveRight,
	core.ActionDown:    engine.CmdSoftDrop,
	core.ActionRotate:  engine.CmdRotate,
	core.ActionDrop:    engine.CmdHardDrop,
	core.ActionHold:    engine.CmdHold,
	core.ActionPause:   engine.CmdPause,
	core.ActionRestart: engine.CmdReset,
	core.ActionQuit:    engine.CmdQuit,
}

// Step applies the frame's actions in order, then advances gravity by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	cmds := make([]engine.Command, 0, in.Len())
	for _, a := range in.Actions {
		if cmd, ok := commands[a]; ok {
			cmds = append(cmds, cmd)
		}
	}

	out := g.session.Step(cmds, g.tick)
	return core.StepResult{
		State:   g.State(),
		Locked:  out.Locked,
		Cleared: out.Cleared,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.session
	return core.GameState{
		Score:    s.Score(),
		Level:    s.Level(),
		Lines:    s.Lines(),
		GameOver: s.State() == engine.StateGameOver,
		Paused:   s.State() == engine.StatePaused,
	}
}

// SetHighScore seeds the best score shown in the HUD.
func (g *Game) SetHighScore(score int) {
	g.best = max(g.best, score)
	if g.session != nil && score > g.session.Best() {
		g.session.SetBest(score)
	}
}

// HighScore returns the best score including the current game.
func (g *Game) HighScore() int {
	if g.session == nil {
		return g.best
	}
	return max(g.session.Best(), g.session.Score())
}

// Snapshot exposes the engine state for renderers outside this package.
func (g *Game) Snapshot() engine.Snapshot {
	return g.session.Snapshot()
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
