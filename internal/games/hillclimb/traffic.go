package hillclimb

import "github.com/vovakirdan/chaos-arcade/internal/core"

// Obstacle is an oncoming car. Touching one ends the session.
type Obstacle struct {
	Rect  core.Rect
	Speed float64
}

// Bullet travels right from the car's nose.
type Bullet struct {
	Rect  core.Rect
	Speed float64
}

// EffectKind is a purely visual effect.
type EffectKind int

const (
	EffectMuzzle EffectKind = iota
	EffectExplosion
)

// Effect is a short-lived visual anchored at a world point.
type Effect struct {
	Kind     EffectKind
	X, Y     float64
	Age      int
	Lifetime int
}

// Expired reports whether the effect has run its course.
func (e Effect) Expired() bool {
	return e.Age >= e.Lifetime
}

// Progress is the effect's age as a fraction of its lifetime.
func (e Effect) Progress() float64 {
	if e.Lifetime <= 0 {
		return 1
	}
	return float64(e.Age) / float64(e.Lifetime)
}

// Coin is the red or golden coin on the road. Phase only drives the pulse
// animation.
type Coin struct {
	Rect  core.Rect
	Phase int
}

// spawnObstacle places a new obstacle car ahead of the player.
func (s *Sim) spawnObstacle() {
	t := s.cfg.Traffic
	x := s.car.X + s.screen.Width + float64(core.RandRange(s.rng, t.MinAhead, t.MaxAhead))
	s.obstacles = append(s.obstacles, Obstacle{
		Rect:  core.NewRect(x, s.cfg.Car.RoadY-t.Height, t.Width, t.Height),
		Speed: t.BaseSpeed + s.rng.Float64()*t.SpeedJitter,
	})
}

// updateTraffic spawns, moves and culls obstacles. It reports whether one
// hit the car.
func (s *Sim) updateTraffic() bool {
	s.obstacleTimer++
	if s.obstacleTimer > s.cfg.Traffic.SpawnEvery {
		s.obstacleTimer = 0
		s.spawnObstacle()
	}

	carRect := s.car.Rect()
	behind := s.car.X - s.screen.Width
	hit := false
	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		o.Rect.X -= o.Speed
		if o.Rect.Right() < behind {
			continue
		}
		if carRect.Intersects(o.Rect) {
			hit = true
		}
		kept = append(kept, o)
	}
	s.obstacles = kept
	return hit
}
