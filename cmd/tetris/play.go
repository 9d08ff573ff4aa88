package main

import (
	"fmt"

	"github.com/spf13/cobra"

	gametetris "github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: tetris).

Controls:
  Left/Right, A/D   - Move
  Up, W, X          - Rotate
  Down, S           - Soft drop
  Space             - Hard drop
  C                 - Hold
  P, Esc            - Pause
  R                 - Restart
  Ctrl+S            - Screenshot
  Q, Ctrl+C         - Quit

Difficulty options:
  easy   - Start at level 1
  normal - Start at level 3
  hard   - Start at level 6
  fixed  - Gravity never speeds up

Examples:
  tetris play
  tetris play --difficulty hard
  tetris play --config ./my-tetris.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := gametetris.ID
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'tetris list' to see available games", gameID)
	}

	logger, closeLog := newLogger(true)
	defer closeLog()

	if err := configureGames(logger); err != nil {
		return err
	}

	scores, closeScores := openScores(logger)
	defer closeScores()

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	if err := tui.Run(game, scores, runtimeConfig(), tui.WithLogger(logger)); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
