// Package runner implements the endless runner mini-game. A Run is embedded
// in the chaos session behind the golden coin; Game wraps a Run as a
// standalone registry game.
package runner

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/chaos-arcade/internal/config"
	"github.com/vovakirdan/chaos-arcade/internal/core"
	"github.com/vovakirdan/chaos-arcade/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game is the standalone runner.
type Game struct {
	cfg     config.ChaosConfig
	runtime core.RuntimeConfig
	run     *Run
	paused  bool
	quit    bool
	log     *log.Logger
}

// New creates a new standalone runner instance.
func New() *Game {
	return &Game{log: log.New(io.Discard)}
}

// SetLogger replaces the logger. A nil logger discards output.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.log = l
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Chaos Runner"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadChaos(configPath)
	if err != nil {
		g.log.Warn("config rejected, using defaults", "err", err)
		cfg = config.DefaultChaosConfig()
	}
	if difficultyPreset != "" {
		config.ApplyRunnerPreset(&cfg.Runner, difficultyPreset)
	}
	g.cfg = cfg

	rng := rand.New(rand.NewSource(runtime.Seed))
	g.run = NewRun(cfg.Runner, cfg.Screen, rng, nil)
	g.paused = false
	g.quit = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionQuit) {
		g.quit = true
	}
	if g.quit || g.run.Crashed() {
		return core.StepResult{State: g.State()}
	}

	// Back exits a run; standalone there is nothing to return to, so it pauses.
	if in.Has(core.ActionBack) {
		g.paused = !g.paused
		return core.StepResult{State: g.State()}
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.run.Tick(in)
	return core.StepResult{State: g.State()}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	g.run.Render(dst)
	if g.paused {
		dst.DrawMessage("PAUSED", "Press Esc to resume")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.run.Score(),
		GameOver: g.run.Crashed(),
		Paused:   g.paused,
		Quit:     g.quit,
	}
}

// Register the game with the registry
func init() {
	registry.Register("runner", func() registry.Game {
		return New()
	})
}
