package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Perspective is a look-at perspective camera. The projection matrix is cached and only
// recomputed by UpdateProjection, so callers that change Fovy, Near, Far or the aspect must
// call it before picking or rendering.
type Perspective struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
	// Fovy is the vertical field of view in degrees.
	Fovy float32
	Near float32
	Far  float32

	aspect float32
	proj   mgl32.Mat4
}

// New returns a camera at position looking at target with +Y up.
func New(position, target mgl32.Vec3, fovy, aspect, near, far float32) *Perspective {
	c := &Perspective{
		Position: position,
		Target:   target,
		Up:       mgl32.Vec3{0, 1, 0},
		Fovy:     fovy,
		Near:     near,
		Far:      far,
		aspect:   aspect,
	}
	c.UpdateProjection()
	return c
}

// Aspect is width/height of the viewport the camera projects onto.
func (c *Perspective) Aspect() float32 {
	return c.aspect
}

// SetAspect stores the aspect ratio; the projection is stale until UpdateProjection.
func (c *Perspective) SetAspect(aspect float32) {
	c.aspect = aspect
}

// UpdateProjection recomputes the cached projection matrix.
func (c *Perspective) UpdateProjection() {
	c.proj = mgl32.Perspective(mgl32.DegToRad(c.Fovy), c.aspect, c.Near, c.Far)
}

// Projection returns the cached projection matrix.
func (c *Perspective) Projection() mgl32.Mat4 {
	return c.proj
}

// View is the world-to-camera matrix.
func (c *Perspective) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}

// ViewProjection is Projection * View.
func (c *Perspective) ViewProjection() mgl32.Mat4 {
	return c.proj.Mul4(c.View())
}

// Forward is the unit vector from Position towards Target.
func (c *Perspective) Forward() mgl32.Vec3 {
	return c.Target.Sub(c.Position).Normalize()
}

// Project maps a world point to normalized device coordinates. ok is false for points
// behind the camera.
func (c *Perspective) Project(p mgl32.Vec3) (ndc mgl32.Vec3, ok bool) {
	clip := c.ViewProjection().Mul4x1(p.Vec4(1))
	if clip.W() <= 0 {
		return mgl32.Vec3{}, false
	}
	return clip.Vec3().Mul(1 / clip.W()), true
}

// Unproject maps normalized device coordinates (x, y in [-1,1], z in [-1,1] near to far)
// back into world space.
func (c *Perspective) Unproject(ndc mgl32.Vec3) mgl32.Vec3 {
	inv := c.ViewProjection().Inv()
	w := inv.Mul4x1(ndc.Vec4(1))
	return w.Vec3().Mul(1 / w.W())
}
