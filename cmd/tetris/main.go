// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris                   - Play Tetris
//	tetris play [game]       - Play a game
//	tetris menu              - Pick a game and difficulty interactively
//	tetris list              - List available games
//	tetris scores [game]     - Show high scores
//	tetris serve             - Start SSH server for remote play
//	tetris config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/tetris.db)
//	--highscore <path>    - Set best-score file (default: ~/.arcade/highscore.json)
//	--config <path>       - Use a custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error (default: warn)
//	--log-file <path>     - Log destination while the game owns the terminal
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagHighScore  string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris in your terminal",
	Long: `A falling-block puzzle game for the terminal.

Running tetris without a command starts a game right away.

Available commands:
  play     - Play a game directly
  menu     - Interactive game and difficulty picker
  list     - Show all available games
  scores   - View high scores
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  tetris
  tetris --difficulty hard
  tetris menu
  tetris scores
  tetris serve --ssh :2222`,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagDBPath, "db", "~/.arcade/tetris.db", "Path to scores database")
	flags.StringVar(&flagHighScore, "highscore", "~/.arcade/highscore.json", "Path to best-score file")
	flags.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	flags.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	flags.StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	flags.StringVar(&flagLogFile, "log-file", "~/.arcade/tetris.log", "Log file used while a game is on screen")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
