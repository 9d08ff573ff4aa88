package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	scores     *storage.HighScores
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       GameKeyMap
	inputFrame core.InputFrame
	gameState  core.GameState
	player     string
	allowBack  bool // Esc/B returns to the menu instead of pausing
	quitting   bool
	backToMenu bool
	scoreSaved bool // Result of the current game has been recorded
}

// ModelOption customizes a Model.
type ModelOption func(*Model)

// WithLogger sets the logger used for persistence warnings and game events.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithPlayer tags log lines with a player name.
func WithPlayer(name string) ModelOption {
	return func(m *Model) { m.player = name }
}

// WithBackToMenu lets Esc/B leave a paused or finished game.
func WithBackToMenu() ModelOption {
	return func(m *Model) { m.allowBack = true }
}

// NewModel creates a new Bubble Tea model for the given game.
// scores may be nil, in which case nothing is persisted.
func NewModel(game registry.Game, scores *storage.HighScores, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		scores:     scores,
		logger:     log.New(io.Discard),
		config:     cfg,
		keys:       DefaultGameKeyMap(),
		inputFrame: core.NewInputFrame(),
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.loadHighScore()
	return m
}

func (m *Model) loadHighScore() {
	hs, ok := m.game.(registry.HighScorer)
	if !ok || m.scores == nil {
		return
	}
	best, err := m.scores.Best(m.game.ID())
	if err != nil {
		m.logger.Warn("could not load high score", "game", m.game.ID(), "error", err)
	}
	hs.SetHighScore(best)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.finish()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.Back):
		if m.allowBack && (m.gameState.GameOver || m.gameState.Paused) {
			m.persist()
			m.backToMenu = true
			return m, nil
		}
		if !m.gameState.GameOver {
			m.inputFrame.Set(core.ActionPause)
		}
		return m, nil
	}

	m.inputFrame.Set(m.keys.Action(msg))
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	restart := m.inputFrame.Has(core.ActionRestart)
	if restart {
		// An abandoned game still counts.
		m.persist()
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if restart {
		m.scoreSaved = false
	}
	if result.Cleared > 0 {
		m.logger.Debug("lines cleared", "game", m.game.ID(), "lines", result.Cleared, "total", m.gameState.Lines)
	}
	if m.gameState.GameOver && !m.scoreSaved {
		m.logger.Info("game over", "game", m.game.ID(), "player", m.player,
			"score", m.gameState.Score, "level", m.gameState.Level, "lines", m.gameState.Lines)
		m.persist()
	}

	return m, tickCmd(m.config.TickRate)
}

// finish applies the pending actions followed by a quit and records the
// resulting state.
func (m *Model) finish() {
	m.inputFrame.Set(core.ActionQuit)
	m.gameState = m.game.Step(m.inputFrame).State
	m.inputFrame.Clear()
	m.persist()
}

// persist records the current game once. Empty games are not recorded.
func (m *Model) persist() {
	if m.scoreSaved || m.gameState.Score <= 0 || m.scores == nil {
		return
	}
	m.scoreSaved = true

	improved, err := m.scores.Record(storage.Result{
		GameID: m.game.ID(),
		Score:  m.gameState.Score,
		Level:  m.gameState.Level,
		Lines:  m.gameState.Lines,
	})
	if err != nil {
		m.logger.Warn("could not save score", "game", m.game.ID(), "score", m.gameState.Score, "error", err)
		return
	}
	if improved {
		m.logger.Info("new high score", "game", m.game.ID(), "player", m.player, "score", m.gameState.Score)
	}
}

// saveScreenshot writes the current screen as plain text under ~/.arcade/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, scores *storage.HighScores, cfg core.RuntimeConfig, opts ...ModelOption) error {
	_, err := RunGame(game, scores, cfg, opts...)
	return err
}

// RunGame runs a game and returns the final model, so callers can tell a
// quit from a return to the menu.
func RunGame(game registry.Game, scores *storage.HighScores, cfg core.RuntimeConfig, opts ...ModelOption) (Model, error) {
	model := NewModel(game, scores, cfg, opts...)

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return model, err
	}
	if m, ok := final.(Model); ok {
		return m, nil
	}
	return model, nil
}
