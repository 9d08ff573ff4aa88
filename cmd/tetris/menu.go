package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a game and difficulty picker",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a game, left/right to change the difficulty
and Enter to play. Pause or finish a game and press Esc to return to the
menu. Tab opens the scoreboard.

Examples:
  tetris menu
  tetris menu --fps 30
  tetris menu --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog := newLogger(true)
	defer closeLog()

	if err := configureGames(logger); err != nil {
		return err
	}

	scores, closeScores := openScores(logger)
	defer closeScores()

	cfg := runtimeConfig()
	preset := flagDifficulty

	for {
		result, err := tui.RunMenu(cfg, preset)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		cfg = result.Config
		preset = result.Preset

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			goBack, err := tui.RunScoreboard(scores.Store(), cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return fmt.Errorf("scoreboard: %w", err)
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			logger.Error("cannot create game", "game", result.GameID, "error", err)
			continue
		}
		if ds, ok := game.(registry.DifficultySetter); ok {
			if err := ds.SetDifficulty(preset); err != nil {
				logger.Warn("ignoring difficulty", "preset", preset, "error", err)
			}
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		final, err := tui.RunGame(game, scores, cfg, tui.WithLogger(logger), tui.WithBackToMenu())
		if err != nil {
			return fmt.Errorf("run game: %w", err)
		}
		if final.IsQuitting() {
			return nil
		}
	}
}
