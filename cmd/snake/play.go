package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/grass-snake/internal/config"
	"github.com/vovakirdan/grass-snake/internal/highscore"
	"github.com/vovakirdan/grass-snake/internal/platform/tui"
	"github.com/vovakirdan/grass-snake/internal/snake"
	"github.com/vovakirdan/grass-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start the game on its title screen.

Controls:
  Enter/Click    - Start
  Arrows/WASD    - Steer
  P              - Pause
  Ctrl+S         - Save a PNG screenshot of the board
  R              - Restart (after game over)
  T              - Top runs (after game over)
  Q              - Quit (after game over)
  Ctrl+C         - Quit at any time`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(flagLogPath, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	rules, err := snake.NewRules(cfg)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error in config: %v\n", err)
		os.Exit(1)
	}

	scorePath, err := config.ExpandPath(flagHighScore)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	tracker := highscore.NewTracker(highscore.NewFileStore(scorePath, logger))

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Rules:   rules,
		Tracker: tracker,
		Logger:  logger,
		Seed:    flagSeed,
		Width:   width,
		Height:  height,
	}

	// Session history is optional; the game works without it.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open session database", "error", err)
	} else {
		opts.History = store
	}

	logger.Info("starting", "high_score", tracker.Best(), "config", flagConfig)
	runErr := tui.Run(opts)

	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
