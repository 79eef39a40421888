package hillclimb

import (
	"github.com/vovakirdan/chaos-arcade/internal/audio"
	"github.com/vovakirdan/chaos-arcade/internal/core"
)

// fire launches a bullet from the car's nose unless the gun is cooling down.
func (s *Sim) fire() bool {
	if s.cooldown > 0 {
		return false
	}
	w := s.cfg.Weapons
	bx := s.car.X + s.car.W
	by := s.car.Y + 10
	s.bullets = append(s.bullets, Bullet{
		Rect:  core.NewRect(bx, by, w.BulletWidth, w.BulletHeight),
		Speed: w.BulletSpeed,
	})
	s.effects = append(s.effects, Effect{Kind: EffectMuzzle, X: bx + 6, Y: by + 2, Lifetime: w.MuzzleLifetime})
	s.cooldown = w.Cooldown
	s.sink.Play(audio.CueShoot)
	return true
}

// updateBullets moves bullets, culls those far ahead and resolves hits.
// A bullet destroys at most one obstacle.
func (s *Sim) updateBullets(st *core.Stats) {
	limit := s.car.X + s.screen.Width*2
	kept := s.bullets[:0]
	for _, b := range s.bullets {
		b.Rect.X += b.Speed
		if b.Rect.X > limit {
			continue
		}
		if i := s.hitObstacle(b.Rect); i >= 0 {
			o := s.obstacles[i]
			s.obstacles = append(s.obstacles[:i], s.obstacles[i+1:]...)
			cx, cy := o.Rect.Center()
			s.effects = append(s.effects, Effect{Kind: EffectExplosion, X: cx, Y: cy, Lifetime: s.cfg.Weapons.ExplosionLifetime})
			s.sink.Play(audio.CueBlast)
			st.Score += s.cfg.Weapons.KillPoints
			s.sink.Play(audio.CueCoin)
			continue
		}
		kept = append(kept, b)
	}
	s.bullets = kept

	if s.cooldown > 0 {
		s.cooldown--
	}
}

func (s *Sim) hitObstacle(r core.Rect) int {
	for i := range s.obstacles {
		if r.Intersects(s.obstacles[i].Rect) {
			return i
		}
	}
	return -1
}

// updateEffects ages visual effects and drops the expired ones.
func (s *Sim) updateEffects() {
	kept := s.effects[:0]
	for _, e := range s.effects {
		e.Age++
		if !e.Expired() {
			kept = append(kept, e)
		}
	}
	s.effects = kept
}
