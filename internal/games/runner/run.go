package runner

import (
	"fmt"

	"github.com/vovakirdan/chaos-arcade/internal/audio"
	"github.com/vovakirdan/chaos-arcade/internal/config"
	"github.com/vovakirdan/chaos-arcade/internal/core"
	"github.com/vovakirdan/chaos-arcade/internal/physics"
)

// Result is what a finished run hands back to its caller.
type Result struct {
	Score   int
	Restart bool // Player asked to start the whole session over
}

// Run is one runner session: the runner jumps over cacti until it crashes
// or the player backs out. After a crash the run waits for Restart or Back.
type Run struct {
	cfg        config.RunnerConfig
	screen     config.ScreenConfig
	sink       audio.Sink
	body       physics.Body
	groundY    float64
	obstacles  *ObstacleManager
	difficulty *config.DifficultyManager
	score      int
	tickCount  int
	legFrame   int
	crashed    bool
	done       bool
	result     Result
}

// NewRun starts a run.
func NewRun(cfg config.RunnerConfig, screen config.ScreenConfig, rng core.Rand, sink audio.Sink) *Run {
	r := &Run{
		cfg:        cfg,
		screen:     screen,
		sink:       audio.OrNop(sink),
		groundY:    screen.Height - cfg.Player.GroundOffset,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
	r.obstacles = NewObstacleManager(rng, &r.cfg, screen, r.difficulty)
	r.body = physics.NewBody(cfg.Player.X, r.groundY-cfg.Player.Height, cfg.Player.Width, cfg.Player.Height)
	r.body.Grounded = true
	return r
}

// Tick advances the run by one frame. Once the run is over it returns the
// result and true; every later call returns the same result.
func (r *Run) Tick(in core.InputFrame) (Result, bool) {
	if r.done {
		return r.result, true
	}

	if r.crashed {
		switch {
		case in.Has(core.ActionRestart):
			r.finish(true)
		case in.Has(core.ActionBack):
			r.finish(false)
		}
		return r.result, r.done
	}

	if in.Has(core.ActionBack) {
		r.finish(false)
		return r.result, true
	}

	r.tickCount++
	r.legFrame = (r.legFrame + 1) % 12

	if in.Has(core.ActionJump) && r.body.Grounded {
		r.body.VY = r.cfg.Physics.JumpImpulse
		r.body.Grounded = false
		r.sink.Play(audio.CueRunnerJump)
	}

	r.body.Fall(r.cfg.Physics.Gravity)
	if r.body.Y >= r.groundY-r.body.H {
		r.body.RestOn(r.groundY)
	}

	passed := r.obstacles.Update(r.score, r.tickCount)
	r.score += passed * r.cfg.Obstacles.Points

	if r.obstacles.CheckCollision(r.body.Rect()) {
		r.crashed = true
		r.sink.Play(audio.CueHit)
	}

	return Result{}, false
}

func (r *Run) finish(restart bool) {
	r.done = true
	r.result = Result{Score: r.score, Restart: restart}
}

// Score returns the points earned so far.
func (r *Run) Score() int { return r.score }

// Crashed reports whether the runner hit a cactus and awaits a choice.
func (r *Run) Crashed() bool { return r.crashed }

// Done reports whether the run has returned its result.
func (r *Run) Done() bool { return r.done }

// Body returns the runner's body.
func (r *Run) Body() physics.Body { return r.body }

// Cacti returns the live obstacles.
func (r *Run) Cacti() []Cactus { return r.obstacles.Cacti() }

// Speed returns the current scroll speed.
func (r *Run) Speed() float64 {
	return r.difficulty.Speed(r.cfg.Physics.BaseSpeed, r.score, r.tickCount)
}

// Sprites appends the ground, cacti and runner in world coordinates.
func (r *Run) Sprites(dst []core.Sprite) []core.Sprite {
	dst = append(dst, core.Sprite{
		Kind:  core.SpriteGround,
		Rect:  core.NewRect(0, r.groundY, r.screen.Width, r.screen.Height-r.groundY),
		Glyph: '═',
		Color: core.ColorBrown,
	})
	for _, c := range r.obstacles.Cacti() {
		dst = append(dst, core.Sprite{Kind: core.SpriteCactus, Rect: c.Rect, Glyph: '▓', Color: core.ColorGreen})
	}
	glyph := '█'
	if r.body.Grounded && r.legFrame >= 6 {
		glyph = '▙'
	}
	dst = append(dst, core.Sprite{Kind: core.SpriteRunner, Rect: r.body.Rect(), Glyph: glyph, Color: core.ColorRed})
	return dst
}

// Render draws the run and its prompt onto dst.
func (r *Run) Render(dst *core.Screen) {
	v := core.Viewport{WorldW: r.screen.Width, WorldH: r.screen.Height}
	v.Draw(dst, r.Sprites(nil))

	dst.DrawText(2, 0, fmt.Sprintf(" Jump Score: %d ", r.score))
	if r.difficulty.IsEnabled() {
		spd := fmt.Sprintf(" Spd: %.1f ", r.Speed())
		dst.DrawText(dst.Width()-len(spd)-2, 0, spd)
	}

	if r.crashed {
		dst.DrawMessage("GAME OVER", fmt.Sprintf("Jump Score: %d", r.score), "R: play again  Esc: exit")
	}
}
