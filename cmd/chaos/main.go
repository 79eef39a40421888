// chaos is a terminal arcade where a platformer, a hill climb and an endless
// runner trade places mid-run.
//
// Usage:
//
//	chaos list              - List available games
//	chaos play [game]       - Play a game (default: chaos)
//	chaos menu              - Start menu to pick games interactively
//	chaos serve             - Start SSH server for remote play
//	chaos scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Tuning YAML (default: ~/.arcade/chaos.yaml if present)
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log <path>          - Log file (default: ~/.arcade/chaos.log)
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/chaos-arcade/internal/games/runner"
	_ "github.com/vovakirdan/chaos-arcade/internal/session"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chaos",
	Short: "Chaos Arcade - three games that swap places mid-run",
	Long: `Chaos Arcade starts as a platformer. Grab the glowing red coin and the
level turns into a hill climb; find the golden coin there and you are
dropped into an endless runner. Lives and score carry across all three.

Available commands:
  list     - Show all available games
  play     - Play a game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  chaos play
  chaos play runner --difficulty hard
  chaos play --config ./chaos.yaml --watch
  chaos serve --ssh :2222
  chaos scores chaos`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.arcade/chaos.log", "Path to log file")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Log debug events (mode switches, sound cues)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// openLog opens the log file named by --log. The terminal belongs to the
// game, so nothing is logged to stdout or stderr while playing. The returned
// close func is never nil.
func openLog(prefix string) (*log.Logger, func()) {
	path, err := expandHome(flagLogPath)
	if err == nil {
		err = os.MkdirAll(filepath.Dir(path), 0o755)
	}
	var f *os.File
	if err == nil {
		f, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		l := log.NewWithOptions(os.Stderr, log.Options{Prefix: prefix, Level: log.ErrorLevel})
		return l, func() {}
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagVerbose {
		l.SetLevel(log.DebugLevel)
	}
	return l, func() { f.Close() }
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[2:]), nil
}
