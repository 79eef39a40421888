package platformer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/chaos-arcade/internal/audio"
	"github.com/vovakirdan/chaos-arcade/internal/config"
	"github.com/vovakirdan/chaos-arcade/internal/core"
)

// scriptedRand replays fixed Intn results, then zeros.
type scriptedRand struct {
	ints []int
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *scriptedRand) Float64() float64 { return 0 }

var floorSpec = config.PlatformSpec{Kind: "static", X: 0, Y: 500, W: 1000, H: 100}

// newTestSim builds a sim on a level holding only a floor plus extras.
func newTestSim(t *testing.T, mutate func(*config.ChaosConfig)) (*Sim, *audio.Recorder) {
	t.Helper()
	cfg := config.DefaultChaosConfig()
	cfg.Platformer.Level = config.LevelLayout{
		Platforms: []config.PlatformSpec{floorSpec},
		RedCoin:   config.PointSpec{X: -100, Y: -100},
	}
	if mutate != nil {
		mutate(&cfg)
	}
	rec := &audio.Recorder{}
	s, err := New(cfg, &scriptedRand{}, rec)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s, rec
}

func TestPlayerLandsOnFloor(t *testing.T) {
	s, _ := newTestSim(t, nil)
	st := &core.Stats{Lives: 3}
	p := s.Player()
	p.Y = 449.5

	s.Step(core.NewInputFrame(), st)

	if p.Y != 450 || !p.Grounded || p.VY != 0 {
		t.Errorf("after one tick: y=%v vy=%v grounded=%v, expected y=450 grounded", p.Y, p.VY, p.Grounded)
	}
}

func TestPlayerFallsFromSpawnToFloor(t *testing.T) {
	s, _ := newTestSim(t, nil)
	st := &core.Stats{Lives: 3}
	p := s.Player()

	for i := 0; i < 60 && !p.Grounded; i++ {
		s.Step(core.NewInputFrame(), st)
	}

	if !p.Grounded {
		t.Fatal("player never landed")
	}
	if p.Y != 500-p.H {
		t.Errorf("y = %v, expected %v", p.Y, 500-p.H)
	}
	if p.X != 50 {
		t.Errorf("x = %v, player should not drift without input", p.X)
	}
}

func TestSpeedPowerUpLasts300Ticks(t *testing.T) {
	s, rec := newTestSim(t, func(c *config.ChaosConfig) {
		c.Platformer.Level.PowerUps = []config.PowerUpSpec{{Kind: "speed", X: 60, Y: 420, Duration: 300, Points: 50}}
	})
	st := &core.Stats{Lives: 3}
	p := s.Player()

	s.Step(core.NewInputFrame(), st)

	if p.SpeedBoost != 300 {
		t.Fatalf("SpeedBoost = %d, expected 300", p.SpeedBoost)
	}
	if st.Score != 50 {
		t.Errorf("score = %d, expected 50", st.Score)
	}
	if rec.Count(audio.CuePowerUp) != 1 {
		t.Errorf("expected one powerup cue, got %v", rec.Cues())
	}
	if got := p.CurrentSpeed(); got != 10 {
		t.Errorf("boosted speed = %v, expected 10", got)
	}

	for i := 0; i < 300; i++ {
		s.Step(core.NewInputFrame(), st)
	}

	if p.SpeedBoost != 0 {
		t.Errorf("SpeedBoost = %d after 300 ticks, expected 0", p.SpeedBoost)
	}
	if got := p.CurrentSpeed(); got != 5 {
		t.Errorf("speed = %v, expected base 5", got)
	}
}

func TestPlayerStaysOnScreen(t *testing.T) {
	tests := []struct {
		name   string
		action core.Action
	}{
		{"right", core.ActionRight},
		{"left", core.ActionLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSim(t, nil)
			st := &core.Stats{Lives: 3}
			p := s.Player()
			p.SpeedBoost = 1000

			for i := 0; i < 300; i++ {
				s.Step(core.InputOf(tt.action, core.ActionJump), st)
				if p.X < 0 || p.X > 1000-p.W {
					t.Fatalf("tick %d: x=%v outside [0, %v]", i, p.X, 1000-p.W)
				}
			}
		})
	}
}

func TestReverseControlsSwapDirection(t *testing.T) {
	s, _ := newTestSim(t, nil)
	st := &core.Stats{Lives: 3}
	p := s.Player()
	p.Reverse = 10

	s.Step(core.InputOf(core.ActionRight), st)

	if p.X != 45 {
		t.Errorf("x = %v, right with reversed controls should move left to 45", p.X)
	}
}

func TestBigJump(t *testing.T) {
	s, rec := newTestSim(t, nil)
	st := &core.Stats{Lives: 3}
	p := s.Player()
	p.Y = 450
	p.Grounded = true
	p.BigJump = 10

	s.Step(core.InputOf(core.ActionJump), st)

	if math.Abs(p.VY-(-15*1.5+0.8)) > 1e-9 {
		t.Errorf("vy = %v, expected %v", p.VY, -15*1.5+0.8)
	}
	if rec.Count(audio.CueJump) != 1 {
		t.Error("expected a jump cue")
	}
}

func TestNoJumpInAir(t *testing.T) {
	s, rec := newTestSim(t, nil)
	st := &core.Stats{Lives: 3}
	p := s.Player()

	s.Step(core.InputOf(core.ActionJump), st)

	if p.VY <= 0 {
		t.Errorf("airborne player should keep falling, vy=%v", p.VY)
	}
	if rec.Count(audio.CueJump) != 0 {
		t.Error("no jump cue expected")
	}
}

func TestEnemiesStayInPatrolRange(t *testing.T) {
	lvl, err := BuildLevel(config.DefaultChaosConfig().Platformer, true)
	if err != nil {
		t.Fatal(err)
	}

	for tick := 0; tick < 1000; tick++ {
		for i := range lvl.Enemies {
			e := &lvl.Enemies[i]
			e.Update()
			if e.Rect.X < e.Left || e.Rect.X > e.Right-e.Rect.W {
				t.Fatalf("tick %d enemy %d: x=%v outside [%v, %v]", tick, i, e.Rect.X, e.Left, e.Right-e.Rect.W)
			}
		}
	}
}

func TestMovingPlatformsStayInRange(t *testing.T) {
	lvl, err := BuildLevel(config.DefaultChaosConfig().Platformer, true)
	if err != nil {
		t.Fatal(err)
	}

	moved := false
	for tick := 0; tick < 1000; tick++ {
		for i := range lvl.Platforms {
			p := &lvl.Platforms[i]
			if p.Kind != PlatformMoving {
				continue
			}
			before := p.Rect.X
			p.Update()
			moved = moved || p.Rect.X != before
			if p.Rect.X < p.StartX || p.Rect.X > p.EndX {
				t.Fatalf("tick %d platform %d: x=%v outside [%v, %v]", tick, i, p.Rect.X, p.StartX, p.EndX)
			}
		}
	}
	if !moved {
		t.Error("moving platforms never moved")
	}
}

func TestTriggerDisappearIsIdempotent(t *testing.T) {
	p, err := NewPlatform(config.PlatformSpec{Kind: "disappearing", X: 400, Y: 300, W: 150, H: 20}, config.PlatformRules{DisappearDelay: 60})
	if err != nil {
		t.Fatal(err)
	}

	if !p.TriggerDisappear() {
		t.Fatal("first trigger should start the countdown")
	}
	for i := 0; i < 30; i++ {
		p.Update()
	}
	if p.TriggerDisappear() {
		t.Error("re-trigger while counting down must be a no-op")
	}

	for i := 0; i < 29; i++ {
		p.Update()
	}
	if !p.Visible() {
		t.Fatal("platform hid before its countdown expired")
	}

	p.Update()
	if p.Visible() {
		t.Fatal("platform should hide after 60 ticks")
	}
	if p.Surface().Solid {
		t.Error("hidden platform must not be solid")
	}
	if p.TriggerDisappear() {
		t.Error("hidden platform must ignore triggers")
	}

	for i := 0; i < 200; i++ {
		p.Update()
	}
	if p.Visible() {
		t.Error("hidden platform should stay hidden without a trigger")
	}
}

func TestTriggerOnlyAffectsDisappearing(t *testing.T) {
	p, err := NewPlatform(floorSpec, config.PlatformRules{DisappearDelay: 60})
	if err != nil {
		t.Fatal(err)
	}
	if p.TriggerDisappear() {
		t.Error("static platform should ignore triggers")
	}
}

func TestLandingStartsDisappearCountdown(t *testing.T) {
	s, _ := newTestSim(t, func(c *config.ChaosConfig) {
		c.Platformer.Level.Platforms = append(c.Platformer.Level.Platforms,
			config.PlatformSpec{Kind: "disappearing", X: 400, Y: 300, W: 150, H: 20})
	})
	st := &core.Stats{Lives: 3}
	p := s.Player()
	p.X, p.Y = 410, 249.5

	s.Step(core.NewInputFrame(), st)

	pl := &s.Level().Platforms[1]
	if !p.Grounded || p.Y != 250 {
		t.Fatalf("player should rest on the platform, y=%v grounded=%v", p.Y, p.Grounded)
	}
	if !pl.CountingDown() {
		t.Fatal("landing should start the countdown")
	}

	for i := 0; i < 60; i++ {
		s.Step(core.NewInputFrame(), st)
	}
	if pl.Visible() {
		t.Error("platform should be hidden 60 ticks after landing")
	}

	s.Step(core.NewInputFrame(), st)
	if p.Grounded && p.Y == 250 {
		t.Error("player should fall through the hidden platform")
	}
}

func TestBouncePlatformLaunchesPlayer(t *testing.T) {
	s, rec := newTestSim(t, func(c *config.ChaosConfig) {
		c.Platformer.Level.Platforms = append(c.Platformer.Level.Platforms,
			config.PlatformSpec{Kind: "bounce", X: 750, Y: 250, W: 100, H: 20})
	})
	st := &core.Stats{Lives: 3}
	p := s.Player()
	p.X, p.Y = 760, 199.5

	s.Step(core.NewInputFrame(), st)

	if p.VY != -30 {
		t.Errorf("vy = %v, expected -30", p.VY)
	}
	if p.Grounded {
		t.Error("bounced player should be airborne")
	}
	if rec.Count(audio.CuePowerUp) != 1 {
		t.Error("bounce should play the powerup cue")
	}
}

func TestChaosEvents(t *testing.T) {
	tests := []struct {
		name  string
		draws []int
		check func(t *testing.T, p *Player)
	}{
		{"reverse", []int{0}, func(t *testing.T, p *Player) {
			if p.Reverse != 180 {
				t.Errorf("Reverse = %d, expected 180", p.Reverse)
			}
		}},
		{"boost", []int{1}, func(t *testing.T, p *Player) {
			if p.SpeedBoost != 240 {
				t.Errorf("SpeedBoost = %d, expected 240", p.SpeedBoost)
			}
		}},
		{"teleport", []int{2, 400}, func(t *testing.T, p *Player) {
			if p.X != 500 || p.Y != 300 {
				t.Errorf("teleported to (%v, %v), expected (500, 300)", p.X, p.Y)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSim(t, nil)
			s.rng = &scriptedRand{ints: tt.draws}
			st := &core.Stats{Lives: 3}

			for i := 0; i < 899; i++ {
				s.Step(core.NewInputFrame(), st)
			}
			p := s.Player()
			if p.Reverse != 0 || p.SpeedBoost != 0 || p.X != 50 {
				t.Fatal("no chaos event expected before tick 900")
			}

			s.Step(core.NewInputFrame(), st)
			tt.check(t, p)
		})
	}
}

func TestEnemyHitCostsOneLife(t *testing.T) {
	s, rec := newTestSim(t, func(c *config.ChaosConfig) {
		c.Platformer.Level.Enemies = []config.EnemySpec{
			{X: 60, Y: 420, Left: 0, Right: 200},
			{X: 55, Y: 410, Left: 0, Right: 200},
		}
	})
	st := &core.Stats{Lives: 3}
	p := s.Player()

	s.Step(core.NewInputFrame(), st)

	if st.Lives != 2 {
		t.Fatalf("lives = %d, expected 2 after touching two enemies at once", st.Lives)
	}
	if p.Invulnerable != 120 {
		t.Errorf("Invulnerable = %d, expected 120", p.Invulnerable)
	}
	if p.X != 50 || p.Y != 400 || p.VX != 0 || p.VY != 0 {
		t.Errorf("player should respawn at rest at (50, 400), got (%v, %v) v=(%v, %v)", p.X, p.Y, p.VX, p.VY)
	}
	if rec.Count(audio.CueHit) != 1 {
		t.Errorf("expected one hit cue, got %v", rec.Cues())
	}

	for i := 0; i < 10; i++ {
		s.Step(core.NewInputFrame(), st)
	}
	if st.Lives != 2 {
		t.Errorf("invulnerable player lost a life: lives=%d", st.Lives)
	}
}

func TestInvulnerablePowerUpBlocksDamage(t *testing.T) {
	s, _ := newTestSim(t, func(c *config.ChaosConfig) {
		c.Platformer.Level.Enemies = []config.EnemySpec{{X: 60, Y: 420, Left: 0, Right: 200}}
	})
	st := &core.Stats{Lives: 3}
	s.Player().Invulnerable = 300

	s.Step(core.NewInputFrame(), st)

	if st.Lives != 3 {
		t.Errorf("lives = %d, expected 3", st.Lives)
	}
}

func TestReversePowerUpCostsPoints(t *testing.T) {
	s, rec := newTestSim(t, func(c *config.ChaosConfig) {
		c.Platformer.Level.PowerUps = []config.PowerUpSpec{{Kind: "reverse", X: 60, Y: 420, Duration: 240, Points: -25}}
	})
	st := &core.Stats{Lives: 3, Score: 100}

	s.Step(core.NewInputFrame(), st)

	if st.Score != 75 {
		t.Errorf("score = %d, expected 75", st.Score)
	}
	if s.Player().Reverse != 240 {
		t.Errorf("Reverse = %d, expected 240", s.Player().Reverse)
	}
	if rec.Count(audio.CueHit) != 1 {
		t.Error("reverse pickup should play the hit cue")
	}
}

func TestCoinPickup(t *testing.T) {
	s, rec := newTestSim(t, func(c *config.ChaosConfig) {
		c.Platformer.Level.Coins = []config.PointSpec{{X: 60, Y: 420}, {X: 800, Y: 100}}
	})
	st := &core.Stats{Lives: 3}

	s.Step(core.NewInputFrame(), st)

	if st.Score != 100 {
		t.Errorf("score = %d, expected 100", st.Score)
	}
	if len(s.Level().Coins) != 1 {
		t.Errorf("collected coin should be removed, %d left", len(s.Level().Coins))
	}
	if rec.Count(audio.CueCoin) != 1 {
		t.Error("expected a coin cue")
	}
}

func TestRedCoinRaisesEvent(t *testing.T) {
	s, _ := newTestSim(t, func(c *config.ChaosConfig) {
		c.Platformer.Level.RedCoin = config.PointSpec{X: 60, Y: 420}
	})
	st := &core.Stats{Lives: 3}

	ev := s.Step(core.NewInputFrame(), st)

	if ev != EventRedCoin {
		t.Fatalf("event = %v, expected EventRedCoin", ev)
	}
	if st.Score != 500 {
		t.Errorf("score = %d, expected 500", st.Score)
	}
}

func TestDiscardAndRebuildLevel(t *testing.T) {
	s, err := New(config.DefaultChaosConfig(), &scriptedRand{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if s.Level().RedCoin == nil {
		t.Fatal("fresh level should have a red coin")
	}

	s.DiscardLevel()
	if s.Level() != nil {
		t.Fatal("level should be discarded")
	}
	st := &core.Stats{Lives: 3}
	if ev := s.Step(core.InputOf(core.ActionRight), st); ev != EventNone {
		t.Errorf("step without level returned %v", ev)
	}

	if err := s.RebuildLevel(); err != nil {
		t.Fatal(err)
	}
	lvl := s.Level()
	if lvl == nil || lvl.RedCoin != nil {
		t.Fatal("rebuilt level should exist without a red coin")
	}
	if len(lvl.Platforms) != 7 || len(lvl.Coins) != 5 || len(lvl.PowerUps) != 4 || len(lvl.Enemies) != 3 {
		t.Errorf("rebuilt level has wrong contents: %d platforms %d coins %d power-ups %d enemies",
			len(lvl.Platforms), len(lvl.Coins), len(lvl.PowerUps), len(lvl.Enemies))
	}
}

func TestPlaceRedCoin(t *testing.T) {
	s, _ := newTestSim(t, nil)
	s.PlaceRedCoin(10, 425)
	rc := s.Level().RedCoin
	if rc == nil || rc.Rect.X != 10 || rc.Rect.Y != 425 {
		t.Fatalf("red coin = %+v, want at (10,425)", rc)
	}

	s.DiscardLevel()
	s.PlaceRedCoin(10, 425)
	if s.Level() != nil {
		t.Error("placing a coin must not create a level")
	}
}

func TestDeadSessionFreezes(t *testing.T) {
	s, _ := newTestSim(t, nil)
	st := &core.Stats{Lives: 0}
	p := s.Player()

	s.Step(core.InputOf(core.ActionRight), st)

	if p.X != 50 || p.Y != 400 {
		t.Errorf("player moved while dead: (%v, %v)", p.X, p.Y)
	}
}

func TestTickTimers(t *testing.T) {
	s, _ := newTestSim(t, nil)
	p := s.Player()
	p.SpeedBoost, p.BigJump, p.Invulnerable, p.Reverse = 2, 1, 3, 0

	s.TickTimers()
	s.TickTimers()

	if p.SpeedBoost != 0 || p.BigJump != 0 || p.Invulnerable != 1 || p.Reverse != 0 {
		t.Errorf("timers = %d %d %d %d", p.SpeedBoost, p.BigJump, p.Invulnerable, p.Reverse)
	}
}

func TestPlayerColorPriority(t *testing.T) {
	tests := []struct {
		name  string
		p     Player
		color core.Color
	}{
		{"plain", Player{}, core.ColorRed},
		{"big jump", Player{BigJump: 5}, core.ColorBrightGreen},
		{"reverse over jump", Player{BigJump: 5, Reverse: 5}, core.ColorMagenta},
		{"speed over reverse", Player{SpeedBoost: 5, Reverse: 5}, core.ColorOrange},
		{"invulnerable blink on", Player{Invulnerable: 5, SpeedBoost: 5}, core.ColorBrightWhite},
		{"invulnerable blink off", Player{Invulnerable: 10, SpeedBoost: 5}, core.ColorRed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Color(); got != tt.color {
				t.Errorf("Color() = %v, expected %v", got, tt.color)
			}
		})
	}
}

func TestDeterministicWithSameSeed(t *testing.T) {
	run := func() (float64, float64, int) {
		s, err := New(config.DefaultChaosConfig(), rand.New(rand.NewSource(42)), nil)
		if err != nil {
			t.Fatal(err)
		}
		st := &core.Stats{Lives: 3}
		for i := 0; i < 3000; i++ {
			in := core.NewInputFrame()
			if i%7 < 4 {
				in.Set(core.ActionRight)
			}
			if i%50 == 0 {
				in.Set(core.ActionJump)
			}
			if s.Step(in, st) == EventRedCoin {
				break
			}
		}
		return s.Player().X, s.Player().Y, st.Score
	}

	x1, y1, s1 := run()
	x2, y2, s2 := run()
	if x1 != x2 || y1 != y2 || s1 != s2 {
		t.Errorf("runs diverged: (%v, %v, %d) vs (%v, %v, %d)", x1, y1, s1, x2, y2, s2)
	}
}

func TestUnknownKindsRejected(t *testing.T) {
	cfg := config.DefaultChaosConfig()
	cfg.Platformer.Level.Platforms = []config.PlatformSpec{{Kind: "lava"}}
	if _, err := New(cfg, &scriptedRand{}, nil); err == nil {
		t.Error("unknown platform kind should fail")
	}
}
