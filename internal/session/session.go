// Package session implements the chaos arcade state machine. It owns the
// lives, raw score, running total and high score shared by the platformer,
// hill climb and runner modes, and switches between them on coin pickups.
package session

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/chaos-arcade/internal/audio"
	"github.com/vovakirdan/chaos-arcade/internal/config"
	"github.com/vovakirdan/chaos-arcade/internal/core"
	"github.com/vovakirdan/chaos-arcade/internal/games/hillclimb"
	"github.com/vovakirdan/chaos-arcade/internal/games/platformer"
	"github.com/vovakirdan/chaos-arcade/internal/games/runner"
	"github.com/vovakirdan/chaos-arcade/internal/registry"
)

// Mode is the active game mode.
type Mode int

const (
	ModePlatformer Mode = iota
	ModeHillClimb
	ModeRunner
)

func (m Mode) String() string {
	switch m {
	case ModePlatformer:
		return "platformer"
	case ModeHillClimb:
		return "hillclimb"
	case ModeRunner:
		return "runner"
	default:
		return "unknown"
	}
}

// Options configures a Session. Every field is optional.
type Options struct {
	// Config overrides the tuning; when nil it is loaded from ConfigPath
	// using the usual search order.
	Config     *config.ChaosConfig
	ConfigPath string
	// Difficulty is a runner difficulty preset name (easy, normal, ...).
	Difficulty string
	Store      HighScoreStore
	Sink       audio.Sink
	Logger     *log.Logger
	// Rand replaces the seeded generator; used by tests.
	Rand core.Rand
}

// miniGame is the runner as seen from the hill climb call site.
type miniGame interface {
	Tick(in core.InputFrame) (runner.Result, bool)
	Render(dst *core.Screen)
}

// Session is the chaos arcade game. It implements registry.Game.
type Session struct {
	opts  Options
	store HighScoreStore
	sink  audio.Sink
	log   *log.Logger

	cfg     config.ChaosConfig
	loaded  bool
	pending *config.ChaosConfig
	runtime core.RuntimeConfig
	rng     core.Rand

	mode       Mode
	stats      core.Stats
	total      int
	lastSample int
	high       int
	paused     bool
	quit       bool

	plat *platformer.Sim
	hill *hillclimb.Sim
	run  miniGame

	// jumpCarried is set while the accelerate key held in hill climb is
	// still down after the runner starts.
	jumpCarried bool

	sprites []core.Sprite
}

// New creates a session. Tuning is loaded on the first Reset.
func New(opts Options) *Session {
	s := &Session{
		opts:  opts,
		store: opts.Store,
		sink:  audio.OrNop(opts.Sink),
		log:   opts.Logger,
	}
	if s.store == nil {
		s.store = &MemoryStore{}
	}
	if s.log == nil {
		s.log = log.New(io.Discard)
	}
	return s
}

// ID returns the unique identifier for this game.
func (s *Session) ID() string {
	return "chaos"
}

// Title returns the display name for this game.
func (s *Session) Title() string {
	return "Chaos Arcade"
}

// Reset starts a new session from scratch: full lives, zero score and
// total, and the high score reloaded from the store.
func (s *Session) Reset(runtime core.RuntimeConfig) {
	s.runtime = runtime
	s.rng = s.opts.Rand
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(runtime.Seed))
	}
	s.total = 0
	s.high = s.loadHigh()
	s.quit = false
	s.reinit()
}

// reinit restores lives, score, mode and every entity, keeping the total
// and high score. A pending config reload takes effect here.
func (s *Session) reinit() {
	s.loadConfig()
	s.stats = core.Stats{Lives: s.cfg.Session.Lives}
	s.lastSample = 0
	s.paused = false
	s.run = nil
	s.jumpCarried = false
	s.buildSims()
	s.setMode(ModePlatformer)
}

func (s *Session) loadConfig() {
	switch {
	case s.pending != nil:
		s.cfg = *s.pending
		s.pending = nil
		s.log.Info("config reload applied")
	case s.loaded:
		return
	case s.opts.Config != nil:
		s.cfg = *s.opts.Config
	default:
		cfg, err := config.LoadChaos(s.opts.ConfigPath)
		if err != nil {
			s.log.Warn("config rejected, using defaults", "err", err)
			cfg = config.DefaultChaosConfig()
		}
		s.cfg = cfg
	}
	if preset := config.ParsePreset(s.opts.Difficulty); preset != "" {
		config.ApplyRunnerPreset(&s.cfg.Runner, preset)
	}
	s.loaded = true
}

func (s *Session) buildSims() {
	plat, err := platformer.New(s.cfg, s.rng, s.sink)
	if err != nil {
		s.log.Error("level rejected, using defaults", "err", err)
		s.cfg = config.DefaultChaosConfig()
		if plat, err = platformer.New(s.cfg, s.rng, s.sink); err != nil {
			panic(fmt.Sprintf("session: default level: %v", err))
		}
	}
	s.plat = plat
	s.hill = hillclimb.New(s.cfg, s.rng, s.sink)
}

func (s *Session) loadHigh() int {
	high, err := s.store.LoadHighScore()
	if err != nil {
		s.log.Warn("load high score", "err", err)
		return 0
	}
	return high
}

// ApplyConfig queues a reloaded config. It replaces the tuning at the next
// reset so a running level is never rebuilt under the player.
func (s *Session) ApplyConfig(cfg config.ChaosConfig) {
	s.pending = &cfg
	s.log.Info("config reload queued")
}

// Step advances the session by one tick.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionQuit) {
		s.quit = true
	}
	if s.quit {
		return core.StepResult{State: s.State()}
	}

	if s.mode == ModeRunner {
		s.plat.TickTimers()
		s.stepRunner(in)
		return core.StepResult{State: s.State()}
	}

	if in.Has(core.ActionBack) {
		s.paused = !s.paused
	}
	if s.paused {
		return core.StepResult{State: s.State()}
	}

	if s.stats.Dead() {
		if in.Has(core.ActionRestart) {
			s.Reset(s.runtime)
		}
		return core.StepResult{State: s.State()}
	}

	switch s.mode {
	case ModePlatformer:
		if s.plat.Step(in, &s.stats) == platformer.EventRedCoin {
			s.plat.DiscardLevel()
			s.hill.Enter()
			s.setMode(ModeHillClimb)
		}
	case ModeHillClimb:
		s.plat.TickTimers()
		s.stepHillClimb(in)
	}

	s.sample()
	return core.StepResult{State: s.State()}
}

func (s *Session) stepHillClimb(in core.InputFrame) {
	if in.Has(core.ActionModeToggle) {
		s.leaveHillClimb()
		return
	}
	switch s.hill.Step(in, &s.stats) {
	case hillclimb.EventReturnToPlatformer:
		s.leaveHillClimb()
	case hillclimb.EventLaunchRunner:
		s.run = runner.NewRun(s.cfg.Runner, s.cfg.Screen, s.rng, s.sink)
		s.jumpCarried = in.Has(core.ActionJump)
		s.setMode(ModeRunner)
	}
}

// leaveHillClimb rebuilds the platformer level. An uncollected red coin
// follows the player back so hill climb stays reachable.
func (s *Session) leaveHillClimb() {
	if err := s.plat.RebuildLevel(); err != nil {
		s.log.Error("rebuild level", "err", err)
	}
	if rc := s.hill.RedCoin(); rc != nil {
		s.plat.PlaceRedCoin(rc.Rect.X, rc.Rect.Y)
	}
	s.setMode(ModePlatformer)
}

func (s *Session) stepRunner(in core.InputFrame) {
	if s.jumpCarried {
		if in.Has(core.ActionJump) {
			in = in.Clone()
			delete(in.Actions, core.ActionJump)
		} else {
			s.jumpCarried = false
		}
	}
	res, done, err := s.tickRunner(in)
	if err != nil {
		s.log.Error("runner failed, resuming hill climb", "err", err)
		s.run = nil
		s.setMode(ModeHillClimb)
		return
	}
	if !done {
		return
	}

	s.run = nil
	s.total += res.Score
	s.raiseHigh()
	if res.Restart {
		s.reinit()
		return
	}
	s.setMode(ModeHillClimb)
}

func (s *Session) tickRunner(in core.InputFrame) (res runner.Result, done bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("session: runner: %v", r)
		}
	}()
	res, done = s.run.Tick(in)
	return res, done, nil
}

// sample folds any raw score gained since the last sample into the total.
// Score losses are never subtracted.
func (s *Session) sample() {
	delta := s.stats.Score - s.lastSample
	if delta <= 0 {
		return
	}
	s.total += delta
	s.lastSample = s.stats.Score
	s.raiseHigh()
}

func (s *Session) raiseHigh() {
	if s.total <= s.high {
		return
	}
	s.high = s.total
	if err := s.store.SaveHighScore(s.high); err != nil {
		s.log.Warn("save high score", "score", s.high, "err", err)
	}
}

func (s *Session) setMode(m Mode) {
	if s.mode != m {
		s.log.Debug("mode", "from", s.mode, "to", m)
	}
	s.mode = m
}

// State returns the current game state. Score is the session total.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:    s.total,
		GameOver: s.stats.Dead(),
		Paused:   s.paused,
		Quit:     s.quit,
	}
}

// Mode returns the active mode.
func (s *Session) Mode() Mode { return s.mode }

// Stats returns the current lives and raw score.
func (s *Session) Stats() core.Stats { return s.stats }

// Total returns the accumulated total score.
func (s *Session) Total() int { return s.total }

// High returns the best total known to the session.
func (s *Session) High() int { return s.high }

// Config returns the tuning in effect.
func (s *Session) Config() config.ChaosConfig { return s.cfg }

// Platformer returns the platformer simulator.
func (s *Session) Platformer() *platformer.Sim { return s.plat }

// HillClimb returns the hill climb simulator.
func (s *Session) HillClimb() *hillclimb.Sim { return s.hill }

func init() {
	registry.Register("chaos", func() registry.Game {
		return New(Options{})
	})
}
