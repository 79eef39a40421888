// Package physics holds the motion and collision primitives shared by the
// platformer, hill climb and runner simulators.
package physics

import "github.com/vovakirdan/chaos-arcade/internal/core"

// Body is the position, velocity and ground state of one entity.
// A body is owned by its entity and only mutated during that entity's update.
type Body struct {
	X, Y     float64 // Top-left corner in world units
	VX, VY   float64 // Velocity in world units per tick
	W, H     float64 // Collision size
	Grounded bool    // Resting on a surface this tick
}

// NewBody creates a body at rest.
func NewBody(x, y, w, h float64) Body {
	return Body{X: x, Y: y, W: w, H: h}
}

// Rect returns the body's collision rectangle.
func (b *Body) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}

// Fall integrates one platformer tick: gravity first, then position.
func (b *Body) Fall(gravity float64) {
	b.VY += gravity
	b.X += b.VX
	b.Y += b.VY
}

// Drive integrates one vehicle tick. Horizontal velocity is damped by drag
// and limited to maxVX before the position update.
func (b *Body) Drive(drag, gravity, maxVX float64) {
	b.VX *= drag
	b.VY += gravity
	b.VX = core.ClampF(b.VX, -maxVX, maxVX)
	b.X += b.VX
	b.Y += b.VY
}

// ClampX keeps the body horizontally inside [min, max].
func (b *Body) ClampX(min, max float64) {
	b.X = core.ClampF(b.X, min, max)
}

// Stop zeroes the velocity.
func (b *Body) Stop() {
	b.VX, b.VY = 0, 0
}

// MoveTo places the body at (x, y) at rest.
func (b *Body) MoveTo(x, y float64) {
	b.X, b.Y = x, y
	b.Stop()
}

// RestOn snaps the body's bottom edge onto a surface at y.
func (b *Body) RestOn(y float64) {
	b.Y = y - b.H
	b.VY = 0
	b.Grounded = true
}
