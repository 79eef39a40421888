package hillclimb

import (
	"github.com/vovakirdan/chaos-arcade/internal/config"
	"github.com/vovakirdan/chaos-arcade/internal/core"
	"github.com/vovakirdan/chaos-arcade/internal/physics"
)

// Car is the player's vehicle. Fuel only refills when a new car is issued.
type Car struct {
	physics.Body

	Fuel     float64
	Distance float64
	CameraX  float64

	engineTicks int
	tune        config.CarConfig
	camera      config.CameraConfig
}

// NewCar issues a full car resting on the road at the start position.
func NewCar(cfg config.HillClimbConfig) *Car {
	c := cfg.Car
	return &Car{
		Body:   physics.NewBody(c.StartX, c.RoadY-c.Height, c.Width, c.Height),
		Fuel:   c.Fuel,
		tune:   c,
		camera: cfg.Camera,
	}
}

// Accelerating reports whether the frame asks for throttle.
func Accelerating(in core.InputFrame) bool {
	return in.Has(core.ActionRight) || in.Has(core.ActionJump)
}

// Braking reports whether the frame asks for the brake.
func Braking(in core.InputFrame) bool {
	return in.Has(core.ActionLeft) || in.Has(core.ActionBrake)
}

// update runs one tick of driving and reports whether the engine cue is due.
func (c *Car) update(in core.InputFrame, screenW float64) bool {
	engine := false
	switch {
	case Accelerating(in):
		c.VX += c.tune.Accel
		c.Fuel -= c.tune.FuelBurn
		c.engineTicks++
		engine = c.engineTicks%c.tune.EngineCueEvery == 0
	case Braking(in):
		c.VX -= c.tune.Brake
	}

	c.Drive(c.tune.Drag, c.tune.Gravity, c.tune.MaxSpeed)

	target := c.X - screenW*c.camera.Lead
	c.CameraX += (target - c.CameraX) * c.camera.Smoothing

	if c.X < 0 {
		c.X = 0
		c.VX = 0
	}

	if c.Y >= c.tune.RoadY-c.H {
		c.RestOn(c.tune.RoadY)
	}

	if c.VX > 0 {
		c.Distance += c.VX * c.tune.DistanceFactor
	}

	return engine
}

// OutOfFuel reports whether the tank is empty.
func (c *Car) OutOfFuel() bool {
	return c.Fuel <= 0
}
