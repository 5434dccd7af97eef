package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/grass-snake/internal/config"
	"github.com/vovakirdan/grass-snake/internal/highscore"
	"github.com/vovakirdan/grass-snake/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score and past sessions",
	Long: `Display the high score, aggregated session stats and the best runs.

Examples:
  snake scores
  snake scores --recent --limit 5
  snake scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of sessions to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the most recent sessions instead of the best")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the session history (the high score file is kept)")
}

func runScores(cmd *cobra.Command, args []string) {
	scorePath, err := config.ExpandPath(flagHighScore)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	best := highscore.NewFileStore(scorePath, nil).Load()

	// Open session storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearSessions(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing sessions: %v\n", err)
			return
		}
		fmt.Println("Session history cleared.")
		return
	}

	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading stats: %v\n", err)
		return
	}

	var sessions []storage.Session
	if flagScoresRecent {
		sessions, err = store.RecentSessions(flagScoresLimit)
	} else {
		sessions, err = store.TopSessions(flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		return
	}

	fmt.Printf("High Score: %s\n", humanize.Comma(int64(best)))
	fmt.Println()

	if stats.Sessions == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'snake' to play your first game!")
		return
	}

	fmt.Printf("Sessions:    %s\n", humanize.Comma(int64(stats.Sessions)))
	fmt.Printf("Best run:    %s\n", humanize.Comma(int64(stats.BestScore)))
	fmt.Printf("Average:     %.1f\n", stats.AvgScore)
	fmt.Printf("Foods eaten: %s\n", humanize.Comma(int64(stats.FoodsEaten)))
	fmt.Printf("Play time:   %s\n", stats.PlayTime.Round(1e9))
	fmt.Printf("Last played: %s\n", humanize.Time(stats.LastPlayed))
	fmt.Println()

	if flagScoresRecent {
		fmt.Println("Recent runs")
	} else {
		fmt.Println("Top runs")
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-6s  %-24s  %-8s  %s\n", "Rank", "Score", "Length", "Foods (N/G/P/T)", "Time", "Played")
	fmt.Printf("  %-4s  %-8s  %-6s  %-24s  %-8s  %s\n", "----", "-----", "------", "---------------", "----", "------")

	for i, s := range sessions {
		mark := ""
		if s.NewRecord {
			mark = " *"
		}
		foods := fmt.Sprintf("%d/%d/%d/%d", s.Normal, s.Gold, s.Poison, s.Timer)
		fmt.Printf("  %-4d  %-8s  %-6d  %-24s  %-8s  %s%s\n",
			i+1, humanize.Comma(int64(s.Score)), s.Length, foods,
			s.Duration.Round(1e9), humanize.Time(s.CreatedAt), mark)
	}
	fmt.Println()
	fmt.Println("* set a new high score")
}
