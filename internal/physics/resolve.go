package physics

import "github.com/vovakirdan/chaos-arcade/internal/core"

// LandingTolerance is how far past a surface edge a body may travel in one
// tick and still be snapped onto it.
const LandingTolerance = 20.0

// Contact describes how a body met a surface.
type Contact int

const (
	ContactNone    Contact = iota
	ContactLanded          // Fell onto the surface top
	ContactCeiling         // Rose into the surface bottom
)

// Surface is one collidable rectangle. Non-solid surfaces (hidden
// platforms) take part in no test at all.
type Surface struct {
	Rect  core.Rect
	Solid bool
}

// Hit reports the surface that resolved a body this tick.
type Hit struct {
	Index   int // Index into the surface slice, -1 when nothing was hit
	Contact Contact
}

// Landed reports whether the hit put the body on top of surface i.
func (h Hit) Landed(i int) bool {
	return h.Contact == ContactLanded && h.Index == i
}

// Resolve applies the landing and ceiling rules to a body that has already
// moved this tick. Surfaces are tested in order and the first one that
// satisfies a rule wins. Grounded is cleared first and only set by a landing.
func Resolve(b *Body, surfaces []Surface) Hit {
	b.Grounded = false

	for i, s := range surfaces {
		if !s.Solid {
			continue
		}
		r := b.Rect()
		if !r.Intersects(s.Rect) {
			continue
		}

		switch {
		case b.VY > 0 && r.Bottom() <= s.Rect.Y+LandingTolerance:
			b.RestOn(s.Rect.Y)
			return Hit{Index: i, Contact: ContactLanded}
		case b.VY < 0 && r.Y >= s.Rect.Bottom()-LandingTolerance:
			b.Y = s.Rect.Bottom()
			b.VY = 0
			return Hit{Index: i, Contact: ContactCeiling}
		}
	}

	return Hit{Index: -1, Contact: ContactNone}
}

// Overlaps reports whether two rectangles intersect.
func Overlaps(a, b core.Rect) bool {
	return a.Intersects(b)
}
