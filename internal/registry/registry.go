// Package registry maps game IDs to factories. Games register themselves
// from init() so the CLI and the SSH server can build them by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Game is what the platform drives once per tick.
type Game interface {
	// ID is the stable identifier used on the command line and in score storage.
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a new game with the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step applies one tick of input and advances the simulation.
	Step(in core.InputFrame) core.StepResult

	// Render clears dst and draws the current frame.
	Render(dst *core.Screen)

	// State returns the current score and flags.
	State() core.GameState
}

// HighScorer is implemented by games that show a persisted best score.
type HighScorer interface {
	// SetHighScore seeds the best score, usually loaded from disk.
	SetHighScore(score int)
	// HighScore returns the best score, including the current game.
	HighScore() int
}

// DifficultySetter is implemented by games with named difficulty presets.
type DifficultySetter interface {
	// SetDifficulty selects a preset by name; it applies on the next Reset.
	SetDifficulty(name string) error
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a factory. It panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create builds a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
