package session

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/chaos-arcade/internal/audio"
	"github.com/vovakirdan/chaos-arcade/internal/config"
	"github.com/vovakirdan/chaos-arcade/internal/core"
	"github.com/vovakirdan/chaos-arcade/internal/games/runner"
	"github.com/vovakirdan/chaos-arcade/internal/registry"
)

// testConfig is a floor-only level whose red coin overlaps the spawn
// point, with hill climb traffic switched off.
func testConfig() config.ChaosConfig {
	cfg := config.DefaultChaosConfig()
	cfg.Platformer.Level = config.LevelLayout{
		Platforms: []config.PlatformSpec{{Kind: "static", X: 0, Y: 500, W: 1000, H: 100}},
		RedCoin:   config.PointSpec{X: 60, Y: 420},
	}
	cfg.HillClimb.Traffic.SpawnEvery = 1 << 30
	return cfg
}

func newTestSession(t *testing.T, store HighScoreStore, mutate func(*config.ChaosConfig)) (*Session, *audio.Recorder) {
	t.Helper()
	cfg := testConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	rec := &audio.Recorder{}
	s := New(Options{
		Config: &cfg,
		Store:  store,
		Sink:   rec,
		Rand:   rand.New(rand.NewSource(1)),
	})
	s.Reset(core.DefaultConfig())
	return s, rec
}

// enterHillClimb steps once so the player touches the red coin.
func enterHillClimb(t *testing.T, s *Session) {
	t.Helper()
	s.Step(core.NewInputFrame())
	if s.Mode() != ModeHillClimb {
		t.Fatalf("mode = %v, want hillclimb", s.Mode())
	}
}

type fakeRun struct {
	res  runner.Result
	done bool
}

func (f *fakeRun) Tick(core.InputFrame) (runner.Result, bool) { return f.res, f.done }
func (f *fakeRun) Render(*core.Screen)                        {}

type panicRun struct{}

func (panicRun) Tick(core.InputFrame) (runner.Result, bool) { panic("index out of range") }
func (panicRun) Render(*core.Screen)                        {}

type failingStore struct{}

func (failingStore) LoadHighScore() (int, error) { return 0, errors.New("disk gone") }
func (failingStore) SaveHighScore(int) error     { return errors.New("disk gone") }

func TestResetStartsInPlatformer(t *testing.T) {
	s, _ := newTestSession(t, nil, nil)

	if s.Mode() != ModePlatformer {
		t.Errorf("mode = %v, want platformer", s.Mode())
	}
	st := s.Stats()
	if st.Lives != 3 || st.Score != 0 || s.Total() != 0 {
		t.Errorf("stats = %+v total %d, want 3 lives and zero scores", st, s.Total())
	}
	if s.Platformer().Level().RedCoin == nil {
		t.Error("fresh level should have a red coin")
	}
}

func TestRedCoinEntersHillClimb(t *testing.T) {
	store := &MemoryStore{}
	s, rec := newTestSession(t, store, nil)

	enterHillClimb(t, s)

	if got := s.Stats().Score; got != 500 {
		t.Errorf("score = %d, want 500", got)
	}
	if s.Platformer().Level() != nil {
		t.Error("platformer entities should be discarded")
	}
	car := s.HillClimb().Car()
	if car.X != 100 || car.Fuel != 100 {
		t.Errorf("car = (%v, fuel %v), want fresh car at 100", car.X, car.Fuel)
	}
	if rc := s.HillClimb().RedCoin(); rc == nil || rc.Rect.X != 0 {
		t.Errorf("red coin = %+v, want behind the car clamped to 0", rc)
	}
	if s.Total() != 500 || s.High() != 500 {
		t.Errorf("total/high = %d/%d, want 500/500", s.Total(), s.High())
	}
	if saved, _ := store.LoadHighScore(); saved != 500 {
		t.Errorf("persisted high = %d, want 500", saved)
	}
	if rec.Count(audio.CuePowerUp) != 1 {
		t.Errorf("powerup cues = %d, want 1", rec.Count(audio.CuePowerUp))
	}
}

func TestModeToggleReturnsWithoutReward(t *testing.T) {
	s, _ := newTestSession(t, nil, nil)
	enterHillClimb(t, s)

	s.Step(core.InputOf(core.ActionModeToggle))

	if s.Mode() != ModePlatformer {
		t.Fatalf("mode = %v, want platformer", s.Mode())
	}
	if s.Stats().Score != 500 {
		t.Errorf("score = %d, want 500", s.Stats().Score)
	}
	lvl := s.Platformer().Level()
	if lvl == nil {
		t.Fatal("level should be rebuilt")
	}
	if lvl.RedCoin == nil || lvl.RedCoin.Rect.X != 0 || lvl.RedCoin.Rect.Y != 425 {
		t.Errorf("red coin = %+v, want the uncollected hill climb coin", lvl.RedCoin)
	}
}

func TestHillClimbRedCoinReturns(t *testing.T) {
	s, _ := newTestSession(t, nil, func(c *config.ChaosConfig) {
		c.HillClimb.Coins.RedCoinBehind = 30
	})
	enterHillClimb(t, s)

	for i := 0; i < 200 && s.Mode() == ModeHillClimb; i++ {
		s.Step(core.InputOf(core.ActionLeft))
	}

	if s.Mode() != ModePlatformer {
		t.Fatalf("mode = %v, want platformer", s.Mode())
	}
	if s.Stats().Score != 1000 || s.Total() != 1000 {
		t.Errorf("score/total = %d/%d, want 1000/1000", s.Stats().Score, s.Total())
	}
	if lvl := s.Platformer().Level(); lvl == nil || lvl.RedCoin != nil {
		t.Error("rebuilt level should have no red coin")
	}
}

func TestSwapIgnoredInPlatformer(t *testing.T) {
	s, _ := newTestSession(t, nil, func(c *config.ChaosConfig) {
		c.Platformer.Level.RedCoin = config.PointSpec{X: 900, Y: 425}
	})
	carX := s.HillClimb().Car().X

	s.Step(core.InputOf(core.ActionSwap))

	if s.Mode() != ModePlatformer || s.HillClimb().Car().X != carX {
		t.Error("swap should do nothing outside hill climb")
	}
}

func TestGoldenCoinLaunchesRunner(t *testing.T) {
	s, _ := newTestSession(t, nil, func(c *config.ChaosConfig) {
		c.HillClimb.Coins.GoldenDistance = 0
		c.HillClimb.Coins.GoldenAhead = 0
	})
	enterHillClimb(t, s)

	s.Step(core.NewInputFrame())
	if s.Mode() != ModeRunner {
		t.Fatalf("mode = %v, want runner", s.Mode())
	}
	if s.Stats().Score != 2500 {
		t.Errorf("score = %d, want 2500", s.Stats().Score)
	}

	// Backing out of a fresh run returns a zero score.
	s.Step(core.InputOf(core.ActionBack))
	if s.Mode() != ModeHillClimb {
		t.Fatalf("mode = %v, want hillclimb", s.Mode())
	}
	if s.HillClimb().GoldenCoin() != nil {
		t.Error("golden coin should be gone")
	}
	if s.State().Paused {
		t.Error("leaving the runner must not pause")
	}
	if s.Total() != 2500 {
		t.Errorf("total = %d, want 2500", s.Total())
	}
}

func TestHeldAccelerateDoesNotJumpRunner(t *testing.T) {
	s, rec := newTestSession(t, nil, func(c *config.ChaosConfig) {
		c.HillClimb.Coins.GoldenDistance = 0
		c.HillClimb.Coins.GoldenAhead = 0
	})
	enterHillClimb(t, s)

	s.Step(core.InputOf(core.ActionJump))
	if s.Mode() != ModeRunner {
		t.Fatalf("mode = %v, want runner", s.Mode())
	}
	run, ok := s.run.(*runner.Run)
	if !ok {
		t.Fatalf("run is %T", s.run)
	}

	for i := 0; i < 5; i++ {
		s.Step(core.InputOf(core.ActionJump))
		if !run.Body().Grounded {
			t.Fatalf("tick %d: key held from hill climb made the runner jump", i)
		}
	}
	if rec.Count(audio.CueRunnerJump) != 0 {
		t.Fatal("no runner jump cue expected")
	}

	s.Step(core.NewInputFrame())
	s.Step(core.InputOf(core.ActionJump))
	if run.Body().Grounded || rec.Count(audio.CueRunnerJump) != 1 {
		t.Error("a fresh press after release should jump")
	}
}

func TestRunnerRestartResetsSession(t *testing.T) {
	s, _ := newTestSession(t, nil, nil)
	enterHillClimb(t, s)
	s.stats.Lives = 2
	s.run = &fakeRun{res: runner.Result{Score: 120, Restart: true}, done: true}
	s.mode = ModeRunner

	s.Step(core.NewInputFrame())

	if s.Total() != 620 {
		t.Errorf("total = %d, want 620", s.Total())
	}
	if s.High() != 620 {
		t.Errorf("high = %d, want 620", s.High())
	}
	st := s.Stats()
	if st.Lives != 3 || st.Score != 0 || s.Mode() != ModePlatformer {
		t.Errorf("after restart: %+v mode %v, want 3 lives, score 0, platformer", st, s.Mode())
	}
	if lvl := s.Platformer().Level(); lvl == nil || lvl.RedCoin == nil {
		t.Error("restart should rebuild the full level")
	}
}

func TestRunnerExitResumesHillClimb(t *testing.T) {
	s, _ := newTestSession(t, nil, nil)
	enterHillClimb(t, s)
	s.run = &fakeRun{res: runner.Result{Score: 40}, done: true}
	s.mode = ModeRunner

	s.Step(core.NewInputFrame())

	if s.Mode() != ModeHillClimb {
		t.Errorf("mode = %v, want hillclimb", s.Mode())
	}
	if s.Total() != 540 || s.Stats().Score != 500 {
		t.Errorf("total/score = %d/%d, want 540/500", s.Total(), s.Stats().Score)
	}
}

func TestRunnerInProgressHoldsHillClimb(t *testing.T) {
	s, _ := newTestSession(t, nil, nil)
	enterHillClimb(t, s)
	carX := s.HillClimb().Car().X
	s.run = &fakeRun{}
	s.mode = ModeRunner

	for i := 0; i < 10; i++ {
		s.Step(core.InputOf(core.ActionRight))
	}

	if s.Mode() != ModeRunner || s.HillClimb().Car().X != carX {
		t.Error("hill climb must not tick while the runner is active")
	}
}

func TestRunnerPanicRecovered(t *testing.T) {
	s, _ := newTestSession(t, nil, nil)
	enterHillClimb(t, s)
	s.run = panicRun{}
	s.mode = ModeRunner

	s.Step(core.NewInputFrame())

	if s.Mode() != ModeHillClimb {
		t.Errorf("mode = %v, want hillclimb", s.Mode())
	}
	if s.run != nil {
		t.Error("failed run should be dropped")
	}
	if s.Total() != 500 {
		t.Errorf("total = %d, want 500", s.Total())
	}
}

func TestScoreSampling(t *testing.T) {
	s, _ := newTestSession(t, nil, nil)

	steps := []struct {
		score int
		total int
	}{
		{100, 100},
		{75, 100}, // reverse power-up
		{100, 100},
		{150, 150},
	}
	for _, tt := range steps {
		s.stats.Score = tt.score
		s.sample()
		if s.Total() != tt.total {
			t.Errorf("score %d: total = %d, want %d", tt.score, s.Total(), tt.total)
		}
		if s.High() < s.Total() {
			t.Errorf("high %d below total %d", s.High(), s.Total())
		}
	}
}

func TestTotalNeverDropsUnderRandomPlay(t *testing.T) {
	s, _ := newTestSession(t, &MemoryStore{}, func(c *config.ChaosConfig) {
		c.HillClimb.Coins.GoldenDistance = 0
		c.HillClimb.Coins.GoldenAhead = 0
		c.HillClimb.Traffic.SpawnEvery = 60
	})

	actions := []core.Action{
		core.ActionLeft, core.ActionRight, core.ActionJump, core.ActionBrake,
		core.ActionFire, core.ActionModeToggle, core.ActionSwap,
		core.ActionBack, core.ActionRestart,
	}
	rng := rand.New(rand.NewSource(7))

	var pops, resets int
	for tick := 0; tick < 20000; tick++ {
		in := core.NewInputFrame()
		for _, a := range actions {
			if rng.Intn(5) == 0 {
				in.Set(a)
			}
		}

		prevTotal, prevMode := s.Total(), s.Mode()
		prevStats := s.Stats()
		deadRestart := prevStats.Dead() && prevMode != ModeRunner && in.Has(core.ActionRestart)

		s.Step(in)

		if prevMode == ModeRunner && s.Mode() != ModeRunner {
			pops++
		}
		if s.Total() < prevTotal {
			if !deadRestart {
				t.Fatalf("tick %d: total dropped %d -> %d in %v", tick, prevTotal, s.Total(), prevMode)
			}
			resets++
		}
		if s.High() < s.Total() {
			t.Fatalf("tick %d: high %d below total %d", tick, s.High(), s.Total())
		}
		if s.Stats().Lives < 0 {
			t.Fatalf("tick %d: lives %d", tick, s.Stats().Lives)
		}
	}

	if pops == 0 {
		t.Error("random play never left the runner")
	}
	t.Logf("runner pops %d, game-over resets %d", pops, resets)
}

func TestHighScoreLoadedFromStore(t *testing.T) {
	store := &MemoryStore{}
	_ = store.SaveHighScore(9000)
	s, _ := newTestSession(t, store, nil)

	if s.High() != 9000 {
		t.Fatalf("high = %d, want 9000", s.High())
	}
	enterHillClimb(t, s)
	if saved, _ := store.LoadHighScore(); saved != 9000 {
		t.Errorf("persisted high = %d, lower totals must not overwrite it", saved)
	}
}

func TestFailingStoreSwallowed(t *testing.T) {
	s, _ := newTestSession(t, failingStore{}, nil)

	if s.High() != 0 {
		t.Errorf("high = %d, want 0 on load failure", s.High())
	}
	enterHillClimb(t, s)
	if s.High() != 500 {
		t.Errorf("high = %d, want 500 despite save failure", s.High())
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	s, _ := newTestSession(t, nil, nil)
	enterHillClimb(t, s)
	s.stats.Lives = 0

	s.Step(core.InputOf(core.ActionRight))
	if !s.State().GameOver {
		t.Fatal("session should be over")
	}

	s.Step(core.InputOf(core.ActionRestart))

	if s.State().GameOver || s.Stats().Lives != 3 {
		t.Errorf("restart should restore lives, got %+v", s.Stats())
	}
	if s.Total() != 0 {
		t.Errorf("total = %d, full reset should zero it", s.Total())
	}
	if s.High() != 500 {
		t.Errorf("high = %d, want 500", s.High())
	}
	if s.Mode() != ModePlatformer {
		t.Errorf("mode = %v, want platformer", s.Mode())
	}
}

func TestRestartIgnoredWhileAlive(t *testing.T) {
	s, _ := newTestSession(t, nil, nil)
	enterHillClimb(t, s)

	s.Step(core.InputOf(core.ActionRestart))

	if s.Total() != 500 || s.Mode() != ModeHillClimb {
		t.Error("restart must only act once the session is over")
	}
}

func TestPauseAndQuit(t *testing.T) {
	s, _ := newTestSession(t, nil, func(c *config.ChaosConfig) {
		c.Platformer.Level.RedCoin = config.PointSpec{X: 900, Y: 425}
	})

	s.Step(core.InputOf(core.ActionBack))
	if !s.State().Paused {
		t.Fatal("back should pause outside the runner")
	}
	p := s.Platformer().Player()
	x, y := p.X, p.Y
	s.Step(core.InputOf(core.ActionRight))
	if p.X != x || p.Y != y {
		t.Error("player moved while paused")
	}

	s.Step(core.InputOf(core.ActionBack))
	if s.State().Paused {
		t.Fatal("back should resume")
	}

	s.Step(core.InputOf(core.ActionQuit))
	if !s.State().Quit {
		t.Error("quit should be reported")
	}
	s.Step(core.InputOf(core.ActionRight))
	if p.X != x {
		t.Error("nothing should move after quit")
	}
}

func TestPlayerTimersTickInEveryMode(t *testing.T) {
	s, _ := newTestSession(t, nil, nil)
	enterHillClimb(t, s)
	p := s.Platformer().Player()
	p.SpeedBoost = 10

	s.Step(core.NewInputFrame())
	if p.SpeedBoost != 9 {
		t.Errorf("hill climb: speed boost = %d, want 9", p.SpeedBoost)
	}

	s.run = &fakeRun{}
	s.mode = ModeRunner
	s.Step(core.NewInputFrame())
	if p.SpeedBoost != 8 {
		t.Errorf("runner: speed boost = %d, want 8", p.SpeedBoost)
	}
}

func TestApplyConfigOnReset(t *testing.T) {
	s, _ := newTestSession(t, nil, nil)
	cfg := testConfig()
	cfg.Session.Lives = 5

	s.ApplyConfig(cfg)
	if s.Stats().Lives != 3 {
		t.Fatal("reload must not touch a running session")
	}

	s.Reset(core.DefaultConfig())
	if s.Stats().Lives != 5 {
		t.Errorf("lives = %d, want 5 after reset", s.Stats().Lives)
	}
}

func TestDifficultyPresetApplied(t *testing.T) {
	cfg := testConfig()
	s := New(Options{Config: &cfg, Difficulty: "hard"})
	s.Reset(core.DefaultConfig())

	if !s.Config().Runner.Difficulty.Enabled {
		t.Error("hard preset should enable runner difficulty")
	}
}

func TestDeterminism(t *testing.T) {
	run := func() (core.Stats, float64, float64) {
		cfg := config.DefaultChaosConfig()
		s := New(Options{Config: &cfg})
		rc := core.DefaultConfig()
		rc.Seed = 42
		s.Reset(rc)
		for i := 0; i < 2000; i++ {
			in := core.NewInputFrame()
			if i%3 == 0 {
				in.Set(core.ActionRight)
			}
			if i%50 == 0 {
				in.Set(core.ActionJump)
			}
			s.Step(in)
		}
		p := s.Platformer().Player()
		return s.Stats(), p.X, p.Y
	}

	st1, x1, y1 := run()
	st2, x2, y2 := run()
	if st1 != st2 || x1 != x2 || y1 != y2 {
		t.Errorf("runs diverged: %+v (%v,%v) vs %+v (%v,%v)", st1, x1, y1, st2, x2, y2)
	}
}

func TestRender(t *testing.T) {
	s, _ := newTestSession(t, nil, nil)
	scr := core.NewScreen(80, 24)

	s.Render(scr)
	if !strings.Contains(scr.String(), "Score: 0") {
		t.Error("platformer HUD missing score")
	}

	enterHillClimb(t, s)
	scr.Clear()
	s.Render(scr)
	if !strings.Contains(scr.String(), "Fuel") {
		t.Error("hill climb HUD missing fuel")
	}

	s.stats.Lives = 0
	scr.Clear()
	s.Render(scr)
	if !strings.Contains(scr.String(), "GAME OVER") {
		t.Error("game over message missing")
	}
}

func TestRegistered(t *testing.T) {
	g, err := registry.Create("chaos")
	if err != nil {
		t.Fatal(err)
	}
	if g.Title() != "Chaos Arcade" {
		t.Errorf("title = %q", g.Title())
	}
}
