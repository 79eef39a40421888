package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/chaos-arcade/internal/config"
	"github.com/vovakirdan/chaos-arcade/internal/core"
	"github.com/vovakirdan/chaos-arcade/internal/platform/tui"
	"github.com/vovakirdan/chaos-arcade/internal/registry"
	"github.com/vovakirdan/chaos-arcade/internal/storage"
)

var (
	flagWatch bool
	flagBell  bool
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (chaos if omitted).

Controls:
  ←/→ or A/D   - Move, or brake/gas in the hill climb
  Space/↑/W    - Jump, or gas in the hill climb
  F            - Fire (hill climb)
  V            - Swap places with the red coin (hill climb)
  P            - Back to the platformer (hill climb)
  Esc          - Pause, or leave the runner
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  chaos play
  chaos play runner --difficulty easy
  chaos play --config ./my-chaos.yaml --watch`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the tuning YAML when it changes")
	playCmd.Flags().BoolVar(&flagBell, "bell", false, "Ring the terminal bell on hits and explosions")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "chaos"
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'chaos list' to see available games.")
		os.Exit(1)
	}

	logger, closeLog := openLog("chaos")
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("open scores database", "path", flagDBPath, "err", err)
		// Continue without storage - game still works
		store = nil
	}

	var bell io.Writer
	if flagBell {
		bell = os.Stdout
	}
	game, err := gameFactory(bell)(gameID, store, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	opts := []tui.Option{tui.WithLogger(logger)}
	if flagWatch {
		if path := config.ResolvePath(flagConfig); path != "" {
			w, watchErr := config.Watch(path)
			if watchErr != nil {
				logger.Warn("watch config", "path", path, "err", watchErr)
			} else {
				defer w.Close()
				opts = append(opts, tui.WithWatcher(w))
			}
		} else {
			logger.Warn("nothing to watch: no config file on disk")
		}
	}

	runErr := tui.Run(game, store, cfg, opts...)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
