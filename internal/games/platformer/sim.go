// Package platformer implements the platformer mode of the chaos arcade:
// a player with timed power-ups on a level of static, moving, disappearing
// and bounce platforms, patrolling enemies, coins and periodic chaos events.
package platformer

import (
	"fmt"

	"github.com/vovakirdan/chaos-arcade/internal/audio"
	"github.com/vovakirdan/chaos-arcade/internal/config"
	"github.com/vovakirdan/chaos-arcade/internal/core"
	"github.com/vovakirdan/chaos-arcade/internal/physics"
)

// Event reports a mode transition trigger raised during a tick.
type Event int

const (
	EventNone Event = iota
	// EventRedCoin means the player touched the red coin; the reward has
	// already been added to the score.
	EventRedCoin
)

// Chaos event kinds, indexed by the random draw.
const (
	chaosReverse = iota
	chaosBoost
	chaosTeleport
	chaosKinds
)

// Sim is the platformer mode simulator.
type Sim struct {
	cfg    config.PlatformerConfig
	screen config.ScreenConfig
	reward int
	rng    core.Rand
	sink   audio.Sink

	player     *Player
	level      *Level
	chaosTimer int
	surfaces   []physics.Surface
}

// New creates a platformer simulator with a fresh player and level.
func New(cfg config.ChaosConfig, rng core.Rand, sink audio.Sink) (*Sim, error) {
	s := &Sim{
		cfg:    cfg.Platformer,
		screen: cfg.Screen,
		reward: cfg.Session.RedCoinReward,
		rng:    rng,
		sink:   audio.OrNop(sink),
	}
	if err := s.Reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset restores the starting player and the full level with its red coin.
func (s *Sim) Reset() error {
	lvl, err := BuildLevel(s.cfg, true)
	if err != nil {
		return fmt.Errorf("platformer: build level: %w", err)
	}
	s.player = NewPlayer(s.cfg)
	s.level = lvl
	s.chaosTimer = 0
	return nil
}

// Player returns the player. It persists across mode switches.
func (s *Sim) Player() *Player {
	return s.player
}

// Level returns the current level, or nil while discarded.
func (s *Sim) Level() *Level {
	return s.level
}

// DiscardLevel drops every level entity, as when leaving for hill climb.
func (s *Sim) DiscardLevel() {
	s.level = nil
}

// RebuildLevel restores the level entities without a red coin, as when
// returning from hill climb. It is a no-op while a level exists.
func (s *Sim) RebuildLevel() error {
	if s.level != nil {
		return nil
	}
	lvl, err := BuildLevel(s.cfg, false)
	if err != nil {
		return fmt.Errorf("platformer: rebuild level: %w", err)
	}
	s.level = lvl
	return nil
}

// PlaceRedCoin puts a red coin at (x, y) on the current level, replacing
// any existing one. Used when hill climb is left with its coin uncollected.
func (s *Sim) PlaceRedCoin(x, y float64) {
	if s.level == nil {
		return
	}
	size := s.cfg.Pickups.RedCoinSize
	s.level.RedCoin = &RedCoin{Rect: core.NewRect(x, y, size, size)}
}

// TickTimers advances the player's effect timers without simulating the
// level. Used while another mode is active.
func (s *Sim) TickTimers() {
	s.player.TickTimers()
}

// Step advances the platformer by one tick. Nothing moves once the
// session has no lives left.
func (s *Sim) Step(in core.InputFrame, st *core.Stats) Event {
	if st.Dead() || s.level == nil {
		return EventNone
	}

	s.chaosTimer++
	lvl := s.level
	p := s.player

	for i := range lvl.Platforms {
		lvl.Platforms[i].Update()
	}

	s.surfaces = lvl.surfaces(s.surfaces)
	jumped, hit := p.move(in, s.surfaces, s.screen.Width, s.screen.Height)
	if jumped {
		s.sink.Play(audio.CueJump)
	}
	if hit.Contact == physics.ContactLanded {
		s.onLanded(&lvl.Platforms[hit.Index])
	}

	for i := range lvl.Enemies {
		lvl.Enemies[i].Update()
	}

	if p.Invulnerable <= 0 {
		pr := p.Rect()
		for i := range lvl.Enemies {
			if pr.Intersects(lvl.Enemies[i].Rect) {
				st.LoseLife()
				p.Invulnerable = s.cfg.Player.HitCooldown
				p.Respawn()
				s.sink.Play(audio.CueHit)
				break
			}
		}
	}
	if st.Dead() {
		return EventNone
	}

	ev := s.collect(st)
	s.chaos()

	if p.Y > s.screen.Height {
		st.LoseLife()
		p.Respawn()
	}

	return ev
}

// onLanded applies the special behavior of the platform under the player.
func (s *Sim) onLanded(pl *Platform) {
	switch pl.Kind {
	case PlatformDisappearing:
		pl.TriggerDisappear()
	case PlatformBounce:
		s.player.VY = s.cfg.Physics.JumpStrength * s.cfg.Platform.BounceFactor
		s.player.Grounded = false
		s.sink.Play(audio.CuePowerUp)
	}
}

// collect handles coin, red coin and power-up pickups.
func (s *Sim) collect(st *core.Stats) Event {
	lvl := s.level
	p := s.player
	pr := p.Rect()

	coins := lvl.Coins[:0]
	for _, c := range lvl.Coins {
		if pr.Intersects(c.Rect) {
			st.Score += s.cfg.Pickups.CoinPoints
			s.sink.Play(audio.CueCoin)
			continue
		}
		coins = append(coins, c)
	}
	lvl.Coins = coins

	ev := EventNone
	if rc := lvl.RedCoin; rc != nil {
		rc.Phase++
		if pr.Intersects(rc.Rect) {
			st.Score += s.reward
			s.sink.Play(audio.CuePowerUp)
			ev = EventRedCoin
		}
	}

	ups := lvl.PowerUps[:0]
	for _, u := range lvl.PowerUps {
		if !pr.Intersects(u.Rect) {
			ups = append(ups, u)
			continue
		}
		u.apply(p)
		st.Score += u.Points
		s.sink.Play(audio.CuePowerUp)
		if u.Kind == PowerReverse {
			s.sink.Play(audio.CueHit)
		}
	}
	lvl.PowerUps = ups

	return ev
}

// chaos fires one random disruption every configured interval.
func (s *Sim) chaos() {
	c := s.cfg.Chaos
	if s.chaosTimer%c.Interval != 0 {
		return
	}

	p := s.player
	switch s.rng.Intn(chaosKinds) {
	case chaosReverse:
		p.Reverse = c.ReverseTicks
	case chaosBoost:
		p.SpeedBoost = c.BoostTicks
	case chaosTeleport:
		p.X = float64(core.RandRange(s.rng, c.TeleportMinX, c.TeleportMaxX))
		p.Y = c.TeleportY
	}
}

// Sprites appends the visible entities in draw order.
func (s *Sim) Sprites(dst []core.Sprite, st core.Stats) []core.Sprite {
	if lvl := s.level; lvl != nil {
		for i := range lvl.Platforms {
			if lvl.Platforms[i].Visible() {
				dst = append(dst, lvl.Platforms[i].sprite())
			}
		}
		for _, e := range lvl.Enemies {
			dst = append(dst, core.Sprite{Kind: core.SpriteEnemy, Rect: e.Rect, Glyph: '▲', Color: core.ColorGreen})
		}
		for _, c := range lvl.Coins {
			dst = append(dst, core.Sprite{Kind: core.SpriteCoin, Rect: c.Rect, Glyph: 'o', Color: core.ColorYellow})
		}
		if rc := lvl.RedCoin; rc != nil {
			glyph := '◉'
			if (rc.Phase/15)%2 == 1 {
				glyph = '●'
			}
			dst = append(dst, core.Sprite{Kind: core.SpriteRedCoin, Rect: rc.Rect, Glyph: glyph, Color: core.ColorBrightRed})
		}
		for _, u := range lvl.PowerUps {
			dst = append(dst, core.Sprite{Kind: core.SpritePowerUp, Rect: u.Rect, Glyph: '✦', Color: u.color()})
		}
	}
	if !st.Dead() {
		dst = append(dst, core.Sprite{Kind: core.SpritePlayer, Rect: s.player.Rect(), Glyph: '█', Color: s.player.Color()})
	}
	return dst
}

// Effects lists the labels of the player's active effects for the HUD.
func (s *Sim) Effects() []string {
	p := s.player
	var out []string
	if p.SpeedBoost > 0 {
		out = append(out, "SPEED BOOST")
	}
	if p.BigJump > 0 {
		out = append(out, "BIG JUMP")
	}
	if p.Invulnerable > 0 {
		out = append(out, "INVULNERABLE")
	}
	if p.Reverse > 0 {
		out = append(out, "CONTROLS REVERSED")
	}
	return out
}
