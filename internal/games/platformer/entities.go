package platformer

import (
	"fmt"

	"github.com/vovakirdan/chaos-arcade/internal/config"
	"github.com/vovakirdan/chaos-arcade/internal/core"
	"github.com/vovakirdan/chaos-arcade/internal/physics"
)

// Enemy patrols horizontally. Its x stays within [Left, Right-width].
type Enemy struct {
	Rect        core.Rect
	Left, Right float64
	speed       float64
	dir         float64
}

// Update moves the enemy one step, turning at the patrol bounds.
func (e *Enemy) Update() {
	e.Rect.X += e.speed * e.dir
	if e.Rect.X <= e.Left {
		e.Rect.X = e.Left
		e.dir = 1
	} else if e.Rect.X >= e.Right-e.Rect.W {
		e.Rect.X = e.Right - e.Rect.W
		e.dir = -1
	}
}

// Coin is an ordinary collectible.
type Coin struct {
	Rect core.Rect
}

// RedCoin switches the session into hill climb mode. Phase only drives the
// glow animation.
type RedCoin struct {
	Rect  core.Rect
	Phase int
}

// PowerUpKind is the effect a power-up grants.
type PowerUpKind int

const (
	PowerSpeed PowerUpKind = iota
	PowerJump
	PowerInvulnerable
	PowerReverse
)

// String returns the kind's config name.
func (k PowerUpKind) String() string {
	switch k {
	case PowerSpeed:
		return "speed"
	case PowerJump:
		return "jump"
	case PowerInvulnerable:
		return "invulnerable"
	case PowerReverse:
		return "reverse"
	default:
		return "unknown"
	}
}

// ParsePowerUpKind maps a config name to a kind.
func ParsePowerUpKind(s string) (PowerUpKind, error) {
	switch s {
	case "speed":
		return PowerSpeed, nil
	case "jump":
		return PowerJump, nil
	case "invulnerable":
		return PowerInvulnerable, nil
	case "reverse":
		return PowerReverse, nil
	default:
		return 0, fmt.Errorf("platformer: unknown power-up kind %q", s)
	}
}

// PowerUp grants a timed effect and a score change when collected.
type PowerUp struct {
	Kind     PowerUpKind
	Rect     core.Rect
	Duration int
	Points   int
}

// apply starts the power-up's timer on p.
func (u PowerUp) apply(p *Player) {
	switch u.Kind {
	case PowerSpeed:
		p.SpeedBoost = u.Duration
	case PowerJump:
		p.BigJump = u.Duration
	case PowerInvulnerable:
		p.Invulnerable = u.Duration
	case PowerReverse:
		p.Reverse = u.Duration
	}
}

func (u PowerUp) color() core.Color {
	switch u.Kind {
	case PowerSpeed:
		return core.ColorOrange
	case PowerJump:
		return core.ColorBrightGreen
	case PowerInvulnerable:
		return core.ColorBrightWhite
	default:
		return core.ColorMagenta
	}
}

// Level holds the platformer's entity collections.
type Level struct {
	Platforms []Platform
	Enemies   []Enemy
	Coins     []Coin
	PowerUps  []PowerUp
	RedCoin   *RedCoin
}

// BuildLevel instantiates the configured layout. The red coin is only
// placed when withRedCoin is set.
func BuildLevel(cfg config.PlatformerConfig, withRedCoin bool) (*Level, error) {
	layout := cfg.Level
	lvl := &Level{
		Platforms: make([]Platform, 0, len(layout.Platforms)),
		Enemies:   make([]Enemy, 0, len(layout.Enemies)),
		Coins:     make([]Coin, 0, len(layout.Coins)),
		PowerUps:  make([]PowerUp, 0, len(layout.PowerUps)),
	}

	for _, def := range layout.Platforms {
		p, err := NewPlatform(def, cfg.Platform)
		if err != nil {
			return nil, err
		}
		lvl.Platforms = append(lvl.Platforms, p)
	}

	size := cfg.Pickups.EnemySize
	for _, def := range layout.Enemies {
		lvl.Enemies = append(lvl.Enemies, Enemy{
			Rect:  core.NewRect(def.X, def.Y, size, size),
			Left:  def.Left,
			Right: def.Right,
			speed: cfg.Physics.EnemySpeed,
			dir:   1,
		})
	}

	size = cfg.Pickups.CoinSize
	for _, def := range layout.Coins {
		lvl.Coins = append(lvl.Coins, Coin{Rect: core.NewRect(def.X, def.Y, size, size)})
	}

	size = cfg.Pickups.PowerUpSize
	for _, def := range layout.PowerUps {
		kind, err := ParsePowerUpKind(def.Kind)
		if err != nil {
			return nil, err
		}
		lvl.PowerUps = append(lvl.PowerUps, PowerUp{
			Kind:     kind,
			Rect:     core.NewRect(def.X, def.Y, size, size),
			Duration: def.Duration,
			Points:   def.Points,
		})
	}

	if withRedCoin {
		size = cfg.Pickups.RedCoinSize
		lvl.RedCoin = &RedCoin{Rect: core.NewRect(layout.RedCoin.X, layout.RedCoin.Y, size, size)}
	}

	return lvl, nil
}

// surfaces fills dst with the level's collision surfaces, in level order.
func (l *Level) surfaces(dst []physics.Surface) []physics.Surface {
	dst = dst[:0]
	for i := range l.Platforms {
		dst = append(dst, l.Platforms[i].Surface())
	}
	return dst
}
