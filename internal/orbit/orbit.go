package orbit

import (
	"rubik-sketch/internal/camera"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// polarEpsilon keeps the camera off the poles, where the up vector degenerates.
const polarEpsilon = 1e-3

// Options tunes the controls. Zero Damping applies input in full on the next Update.
type Options struct {
	RotateSpeed float32
	ZoomSpeed   float32
	Damping     float32
	MinDistance float32
	MaxDistance float32
}

// Controls orbits a camera around its target. Input handlers only record intent; Update,
// called once per frame, moves the camera.
type Controls struct {
	opts Options
	cam  *camera.Perspective

	viewportHeight int

	deltaTheta float32
	deltaPhi   float32
	scale      float32
}

// New attaches controls to cam. The camera's current position and target define the
// starting orbit.
func New(cam *camera.Perspective, opts Options) *Controls {
	if opts.RotateSpeed == 0 {
		opts.RotateSpeed = 1
	}
	if opts.ZoomSpeed == 0 {
		opts.ZoomSpeed = 1
	}
	if opts.MaxDistance == 0 {
		opts.MaxDistance = math32.Inf(1)
	}
	return &Controls{opts: opts, cam: cam, scale: 1, viewportHeight: 1}
}

// SetViewport tells the controls how tall the drag surface is, so a drag across the full
// height is one full turn.
func (c *Controls) SetViewport(width, height int) {
	if height > 0 {
		c.viewportHeight = height
	}
}

// Drag records a pointer drag of dx, dy pixels.
func (c *Controls) Drag(dx, dy float32) {
	h := float32(c.viewportHeight)
	c.deltaTheta -= 2 * math32.Pi * dx / h * c.opts.RotateSpeed
	c.deltaPhi -= 2 * math32.Pi * dy / h * c.opts.RotateSpeed
}

// Wheel records a scroll; positive values move the camera towards the target.
func (c *Controls) Wheel(delta float32) {
	c.scale *= math32.Pow(0.95, c.opts.ZoomSpeed*delta)
}

// Pending reports whether any input is still waiting to be integrated.
func (c *Controls) Pending() bool {
	const still = 1e-6
	return math32.Abs(c.deltaTheta) > still || math32.Abs(c.deltaPhi) > still || c.scale != 1
}

// Update integrates pending input into the camera and reports whether the camera moved.
func (c *Controls) Update() bool {
	offset := c.cam.Position.Sub(c.cam.Target)
	radius := offset.Len()
	if radius == 0 {
		return false
	}
	theta := math32.Atan2(offset.X(), offset.Z())
	phi := math32.Acos(mgl32.Clamp(offset.Y()/radius, -1, 1))

	damping := c.opts.Damping
	if damping <= 0 {
		damping = 1
	}
	theta += c.deltaTheta * damping
	phi += c.deltaPhi * damping
	phi = mgl32.Clamp(phi, polarEpsilon, math32.Pi-polarEpsilon)
	radius = mgl32.Clamp(radius*c.scale, c.opts.MinDistance, c.opts.MaxDistance)

	sinPhi := math32.Sin(phi)
	next := c.cam.Target.Add(mgl32.Vec3{
		radius * sinPhi * math32.Sin(theta),
		radius * math32.Cos(phi),
		radius * sinPhi * math32.Cos(theta),
	})

	c.deltaTheta *= 1 - damping
	c.deltaPhi *= 1 - damping
	c.scale = 1

	moved := !next.ApproxEqualThreshold(c.cam.Position, 1e-6)
	c.cam.Position = next
	return moved
}
