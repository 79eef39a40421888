package platformer

import (
	"github.com/vovakirdan/chaos-arcade/internal/config"
	"github.com/vovakirdan/chaos-arcade/internal/core"
	"github.com/vovakirdan/chaos-arcade/internal/physics"
)

// Player is the platformer hero. The four effect timers count down once per
// tick in every mode and are active while positive.
type Player struct {
	physics.Body

	SpeedBoost   int
	BigJump      int
	Invulnerable int
	Reverse      int

	tune config.PlatformerConfig
}

// NewPlayer creates a player at the configured spawn point.
func NewPlayer(cfg config.PlatformerConfig) *Player {
	p := &Player{tune: cfg}
	p.Body = physics.NewBody(cfg.Player.SpawnX, cfg.Player.SpawnY, cfg.Player.Width, cfg.Player.Height)
	return p
}

// TickTimers decrements every active effect timer.
func (p *Player) TickTimers() {
	if p.SpeedBoost > 0 {
		p.SpeedBoost--
	}
	if p.Invulnerable > 0 {
		p.Invulnerable--
	}
	if p.Reverse > 0 {
		p.Reverse--
	}
	if p.BigJump > 0 {
		p.BigJump--
	}
}

// CurrentSpeed is the horizontal speed, doubled during a speed boost.
func (p *Player) CurrentSpeed() float64 {
	if p.SpeedBoost > 0 {
		return p.tune.Physics.MoveSpeed * p.tune.Effects.SpeedMultiplier
	}
	return p.tune.Physics.MoveSpeed
}

// JumpPower is the jump velocity, stronger during a big jump.
func (p *Player) JumpPower() float64 {
	if p.BigJump > 0 {
		return p.tune.Physics.JumpStrength * p.tune.Effects.JumpMultiplier
	}
	return p.tune.Physics.JumpStrength
}

// Respawn puts the player back at the spawn point at rest.
func (p *Player) Respawn() {
	p.MoveTo(p.tune.Player.SpawnX, p.tune.Player.SpawnY)
}

// Color returns the tint for the most important active effect:
// invulnerable, then speed boost, then reverse controls, then big jump.
func (p *Player) Color() core.Color {
	switch {
	case p.Invulnerable > 0:
		if (p.Invulnerable/5)%2 == 1 {
			return core.ColorBrightWhite
		}
		return core.ColorRed
	case p.SpeedBoost > 0:
		return core.ColorOrange
	case p.Reverse > 0:
		return core.ColorMagenta
	case p.BigJump > 0:
		return core.ColorBrightGreen
	default:
		return core.ColorRed
	}
}

// move runs one tick of player motion: timers, input, jump, gravity,
// screen clamp, platform resolution and the floor fallback.
// It reports whether a jump started and which surface resolved the body.
func (p *Player) move(in core.InputFrame, surfaces []physics.Surface, screenW, screenH float64) (bool, physics.Hit) {
	p.TickTimers()

	dir := float64(in.Horizontal())
	if p.Reverse > 0 {
		dir = -dir
	}
	p.VX = dir * p.CurrentSpeed()

	jumped := false
	if in.Has(core.ActionJump) && p.Grounded {
		p.VY = p.JumpPower()
		jumped = true
	}

	p.Fall(p.tune.Physics.Gravity)
	p.ClampX(0, screenW-p.W)

	hit := physics.Resolve(&p.Body, surfaces)

	floorTop := screenH - p.tune.Physics.FloorMargin
	if p.Y >= floorTop-p.H {
		p.RestOn(floorTop)
	}

	return jumped, hit
}
