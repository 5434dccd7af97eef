// snake is the grass-snake game for the terminal: steer a snake across a
// wrap-around checkerboard, eat foods with different effects and beat
// your high score.
//
// Usage:
//
//	snake                 - Play (same as "snake play")
//	snake play            - Play
//	snake scores          - Show the high score, session stats and top runs
//	snake config          - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>     - Custom config YAML (default: ~/.snake/config.yaml if present)
//	--highscore <path>  - High score file (default: ~/.snake/highscore.txt)
//	--db <path>         - Session history database (default: ~/.snake/sessions.db)
//	--seed <value>      - RNG seed for reproducible sessions
//	--log <path>        - Log file (default: ~/.snake/snake.log, "" disables)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig    string
	flagHighScore string
	flagDBPath    string
	flagSeed      int64
	flagLogPath   string
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake on a grass checkerboard, in your terminal",
	Long: `Snake is a terminal arcade game. Eat food to grow and speed up,
wrap around the edges and avoid biting yourself.

Food:
  normal  - +1 score, slightly faster
  gold    - +5 score, faster, grows by three
  timer   - +3 score, faster
  poison  - -3 score, shrinks a long snake

Examples:
  snake
  snake --seed 42
  snake scores
  snake config > ~/.snake/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagHighScore, "highscore", "~/.snake/highscore.txt", "Path to the high score file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/sessions.db", "Path to session history database")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.snake/snake.log", "Path to log file (empty disables logging)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
