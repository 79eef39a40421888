package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/chaos-arcade/internal/registry"
	"github.com/vovakirdan/chaos-arcade/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a game",
	Long: `Display the best finished sessions for a game (chaos if omitted),
along with the all-time session high score.

Examples:
  chaos scores
  chaos scores runner --limit 20`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := "chaos"
	if len(args) == 1 {
		gameID = args[0]
	}

	info, ok := registry.Lookup(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'chaos list' to see available games.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := printScores(store, info); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		store.Close()
		os.Exit(1)
	}
}

func printScores(store *storage.Store, info registry.GameInfo) error {
	scores, err := store.TopScores(info.ID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n\n", info.Title)
	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Printf("Play 'chaos play %s' to set the first high score!\n", info.ID)
		return nil
	}

	t := newTable("Rank", "Score", "Date")
	for i, entry := range scores {
		t.Row(strconv.Itoa(i+1), strconv.Itoa(entry.Score), entry.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Println(t)

	if stats, err := store.GetGameStats(info.ID); err == nil {
		fmt.Printf("Sessions: %d  Average: %.0f  Best: %d\n", stats.GamesCount, stats.AvgScore, stats.HighScore)
	}
	// A malformed stored value still reads as 0, so the error is not fatal.
	if high, _ := store.LoadHighScore(); high > 0 {
		fmt.Printf("All-time session high: %d\n", high)
	}
	return nil
}
