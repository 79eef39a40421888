// Package hillclimb implements the driving mode of the chaos arcade: a
// fuel-limited car on an endless road with oncoming traffic, a gun, and the
// red and golden coins that lead to the other modes.
package hillclimb

import (
	"math"

	"github.com/vovakirdan/chaos-arcade/internal/audio"
	"github.com/vovakirdan/chaos-arcade/internal/config"
	"github.com/vovakirdan/chaos-arcade/internal/core"
)

// Event reports a mode transition trigger raised during a tick.
type Event int

const (
	EventNone Event = iota
	// EventReturnToPlatformer means the car reached the red coin; the
	// reward has already been added to the score.
	EventReturnToPlatformer
	// EventLaunchRunner means the car reached the golden coin; the reward
	// has already been added to the score.
	EventLaunchRunner
)

// Sim is the hill climb mode simulator.
type Sim struct {
	cfg     config.HillClimbConfig
	screen  config.ScreenConfig
	session config.SessionConfig
	redSize float64
	rng     core.Rand
	sink    audio.Sink

	car           *Car
	obstacles     []Obstacle
	bullets       []Bullet
	effects       []Effect
	red           *Coin
	golden        *Coin
	goldenSpawned bool
	obstacleTimer int
	cooldown      int
}

// New creates a hill climb simulator. Call Enter before stepping.
func New(cfg config.ChaosConfig, rng core.Rand, sink audio.Sink) *Sim {
	s := &Sim{
		cfg:     cfg.HillClimb,
		screen:  cfg.Screen,
		session: cfg.Session,
		redSize: cfg.Platformer.Pickups.RedCoinSize,
		rng:     rng,
		sink:    audio.OrNop(sink),
	}
	s.Enter()
	return s
}

// Enter starts a fresh drive: a new car, empty traffic, bullets and
// effects, and a red coin placed behind the car on the road.
func (s *Sim) Enter() {
	s.car = NewCar(s.cfg)
	s.obstacles = s.obstacles[:0]
	s.bullets = s.bullets[:0]
	s.effects = s.effects[:0]
	s.golden = nil
	s.goldenSpawned = false
	s.obstacleTimer = 0
	s.cooldown = 0

	x := math.Max(s.car.X-s.cfg.Coins.RedCoinBehind, 0)
	s.red = &Coin{Rect: core.NewRect(x, s.cfg.Coins.Y, s.redSize, s.redSize)}
}

// Car returns the current car.
func (s *Sim) Car() *Car { return s.car }

// Obstacles returns the live obstacle cars.
func (s *Sim) Obstacles() []Obstacle { return s.obstacles }

// Bullets returns the bullets in flight.
func (s *Sim) Bullets() []Bullet { return s.bullets }

// Effects returns the active visual effects.
func (s *Sim) Effects() []Effect { return s.effects }

// RedCoin returns the red coin, or nil once collected.
func (s *Sim) RedCoin() *Coin { return s.red }

// GoldenCoin returns the golden coin, or nil when absent.
func (s *Sim) GoldenCoin() *Coin { return s.golden }

// Swap exchanges the positions of the car and the red coin.
func (s *Sim) Swap() bool {
	if s.red == nil {
		return false
	}
	s.car.X, s.red.Rect.X = s.red.Rect.X, s.car.X
	s.car.Y, s.red.Rect.Y = s.red.Rect.Y, s.car.Y
	return true
}

// Step advances the drive by one tick. Nothing moves once the session has
// no lives left.
func (s *Sim) Step(in core.InputFrame, st *core.Stats) Event {
	if st.Dead() {
		return EventNone
	}

	if in.Has(core.ActionFire) {
		s.fire()
	}
	if in.Has(core.ActionSwap) {
		s.Swap()
	}

	if s.car.update(in, s.screen.Width) {
		s.sink.Play(audio.CueEngine)
	}

	if s.updateTraffic() {
		st.Lives = 0
		s.sink.Play(audio.CueHit)
		return EventNone
	}
	s.updateBullets(st)
	s.updateEffects()

	carRect := s.car.Rect()
	if s.red != nil {
		s.red.Phase++
		if carRect.Intersects(s.red.Rect) {
			st.Score += s.session.RedCoinReward
			s.red = nil
			s.sink.Play(audio.CuePowerUp)
			return EventReturnToPlatformer
		}
	}

	if s.car.OutOfFuel() {
		st.LoseLife()
		if st.Dead() {
			return EventNone
		}
		s.car = NewCar(s.cfg)
		carRect = s.car.Rect()
	}

	if !s.goldenSpawned && s.car.Distance >= s.cfg.Coins.GoldenDistance {
		size := s.cfg.Coins.GoldenCoinSize
		s.golden = &Coin{Rect: core.NewRect(s.car.X+s.cfg.Coins.GoldenAhead, s.cfg.Coins.Y, size, size)}
		s.goldenSpawned = true
	}
	if g := s.golden; g != nil {
		g.Phase++
		if carRect.Intersects(g.Rect) {
			st.Score += s.session.GoldenCoinReward
			s.golden = nil
			s.sink.Play(audio.CuePowerUp)
			return EventLaunchRunner
		}
	}

	return EventNone
}

// Camera returns the horizontal scroll of the view.
func (s *Sim) Camera() float64 {
	return s.car.CameraX
}

// Sprites appends the drive's entities in draw order, in world coordinates.
func (s *Sim) Sprites(dst []core.Sprite) []core.Sprite {
	road := s.cfg.Car.RoadY
	dst = append(dst, core.Sprite{
		Kind:  core.SpriteGround,
		Rect:  core.NewRect(s.car.CameraX, road, s.screen.Width, s.screen.Height-road),
		Glyph: '▓',
		Color: core.ColorGray,
	})

	if c := s.red; c != nil {
		dst = append(dst, core.Sprite{Kind: core.SpriteRedCoin, Rect: c.Rect, Glyph: pulse(c.Phase, '◉', '●'), Color: core.ColorBrightRed})
	}
	if c := s.golden; c != nil {
		dst = append(dst, core.Sprite{Kind: core.SpriteGoldenCoin, Rect: c.Rect, Glyph: pulse(c.Phase, '◉', '●'), Color: core.ColorGold})
	}
	for _, o := range s.obstacles {
		dst = append(dst, core.Sprite{Kind: core.SpriteObstacleCar, Rect: o.Rect, Glyph: '█', Color: core.ColorBrown})
	}
	for _, b := range s.bullets {
		dst = append(dst, core.Sprite{Kind: core.SpriteBullet, Rect: b.Rect, Glyph: '-', Color: core.ColorYellow})
	}
	dst = append(dst, core.Sprite{Kind: core.SpriteCar, Rect: s.car.Rect(), Glyph: '█', Color: core.ColorRed})

	for _, e := range s.effects {
		switch e.Kind {
		case EffectMuzzle:
			r := 6 + float64(e.Lifetime-e.Age)
			dst = append(dst, core.Sprite{Kind: core.SpriteMuzzle, Rect: core.NewRect(e.X-r/2, e.Y-r/2, r, r), Glyph: '*', Color: core.ColorBrightYellow})
		case EffectExplosion:
			r := 8 + e.Progress()*48
			dst = append(dst, core.Sprite{Kind: core.SpriteExplosion, Rect: core.NewRect(e.X-r, e.Y-r, 2*r, 2*r), Glyph: '░', Color: core.ColorOrange})
		}
	}
	return dst
}

func pulse(phase int, a, b rune) rune {
	if (phase/15)%2 == 1 {
		return b
	}
	return a
}
