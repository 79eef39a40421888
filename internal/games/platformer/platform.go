package platformer

import (
	"fmt"

	"github.com/vovakirdan/chaos-arcade/internal/config"
	"github.com/vovakirdan/chaos-arcade/internal/core"
	"github.com/vovakirdan/chaos-arcade/internal/physics"
)

// PlatformKind selects a platform's behavior.
type PlatformKind int

const (
	PlatformStatic PlatformKind = iota
	PlatformMoving
	PlatformDisappearing
	PlatformBounce
)

// String returns the kind's config name.
func (k PlatformKind) String() string {
	switch k {
	case PlatformStatic:
		return "static"
	case PlatformMoving:
		return "moving"
	case PlatformDisappearing:
		return "disappearing"
	case PlatformBounce:
		return "bounce"
	default:
		return "unknown"
	}
}

// ParsePlatformKind maps a config name to a kind.
func ParsePlatformKind(s string) (PlatformKind, error) {
	switch s {
	case "static":
		return PlatformStatic, nil
	case "moving":
		return PlatformMoving, nil
	case "disappearing":
		return PlatformDisappearing, nil
	case "bounce":
		return PlatformBounce, nil
	default:
		return 0, fmt.Errorf("platformer: unknown platform kind %q", s)
	}
}

// Platform is a surface of one of the four kinds. The moving and
// disappearing fields are only meaningful for their kind.
type Platform struct {
	Kind PlatformKind
	Rect core.Rect

	// Moving
	StartX, EndX float64
	Speed        float64
	dir          float64

	// Disappearing
	hidden    bool
	countdown int
	delay     int
}

// NewPlatform builds a platform from its spec.
func NewPlatform(spec config.PlatformSpec, rules config.PlatformRules) (Platform, error) {
	kind, err := ParsePlatformKind(spec.Kind)
	if err != nil {
		return Platform{}, err
	}
	return Platform{
		Kind:   kind,
		Rect:   core.NewRect(spec.X, spec.Y, spec.W, spec.H),
		StartX: spec.StartX,
		EndX:   spec.EndX,
		Speed:  spec.Speed,
		dir:    1,
		delay:  rules.DisappearDelay,
	}, nil
}

// Update advances the platform's own motion or countdown by one tick.
func (p *Platform) Update() {
	switch p.Kind {
	case PlatformMoving:
		p.Rect.X += p.Speed * p.dir
		if p.Rect.X <= p.StartX {
			p.Rect.X = p.StartX
			p.dir = 1
		} else if p.Rect.X >= p.EndX {
			p.Rect.X = p.EndX
			p.dir = -1
		}
	case PlatformDisappearing:
		if p.countdown > 0 {
			p.countdown--
			if p.countdown == 0 {
				p.hidden = !p.hidden
			}
		}
	}
}

// Visible reports whether the platform takes part in collisions.
func (p *Platform) Visible() bool {
	return !p.hidden
}

// CountingDown reports whether a disappear countdown is running.
func (p *Platform) CountingDown() bool {
	return p.countdown > 0
}

// TriggerDisappear starts the disappear countdown. It only acts on a
// visible disappearing platform that is not already counting down, so
// repeated triggers are harmless. Returns whether a countdown started.
func (p *Platform) TriggerDisappear() bool {
	if p.Kind != PlatformDisappearing || p.hidden || p.countdown > 0 {
		return false
	}
	p.countdown = p.delay
	if p.countdown <= 0 {
		p.hidden = true
	}
	return true
}

// Surface returns the platform as a collision surface.
func (p *Platform) Surface() physics.Surface {
	return physics.Surface{Rect: p.Rect, Solid: p.Visible()}
}

func (p *Platform) sprite() core.Sprite {
	sp := core.Sprite{Kind: core.SpritePlatform, Rect: p.Rect, Glyph: '█', Color: core.ColorBrown}
	switch p.Kind {
	case PlatformMoving:
		sp.Color = core.ColorBlue
	case PlatformBounce:
		sp.Color = core.ColorPink
		sp.Glyph = '▀'
	case PlatformDisappearing:
		if p.countdown > 0 {
			sp.Color = core.ColorGray
			sp.Glyph = '▒'
		}
	}
	return sp
}
