package picking

import (
	"rubik-sketch/internal/camera"
	"rubik-sketch/internal/grid"

	"github.com/go-gl/mathgl/mgl32"
)

// Ray is a half-line; Dir is unit length.
type Ray struct {
	Origin mgl32.Vec3
	Dir    mgl32.Vec3
}

// At returns the point at parameter t.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// ClientToNDC converts a pointer position in pixels (origin top-left) to normalized device
// coordinates with +Y up. A zero-sized viewport maps everything to the center.
func ClientToNDC(x, y float32, width, height int) (ndcX, ndcY float32) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	ndcX = x/float32(width)*2 - 1
	ndcY = -(y/float32(height))*2 + 1
	return ndcX, ndcY
}

// FromNDC casts a ray from the camera through the given normalized device coordinates by
// unprojecting the matching points on the near and far planes.
func FromNDC(ndcX, ndcY float32, cam *camera.Perspective) Ray {
	near := cam.Unproject(mgl32.Vec3{ndcX, ndcY, -1})
	far := cam.Unproject(mgl32.Vec3{ndcX, ndcY, 1})
	return Ray{Origin: near, Dir: far.Sub(near).Normalize()}
}

// IntersectBox is the slab test against an axis-aligned box. It returns the entry
// parameter, or 0 when the origin is already inside.
func IntersectBox(r Ray, min, max mgl32.Vec3) (float32, bool) {
	tNear := float32(0)
	tFar := float32(mgl32.InfPos)
	for a := 0; a < 3; a++ {
		o, d := r.Origin[a], r.Dir[a]
		if d == 0 {
			if o < min[a] || o > max[a] {
				return 0, false
			}
			continue
		}
		inv := 1 / d
		t0 := (min[a] - o) * inv
		t1 := (max[a] - o) * inv
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > tNear {
			tNear = t0
		}
		if t1 < tFar {
			tFar = t1
		}
		if tNear > tFar {
			return 0, false
		}
	}
	return tNear, true
}

// Hit is the nearest piece along a ray.
type Hit struct {
	Piece *grid.Piece
	// T is the distance from the ray origin in world units.
	T float32
}

// Cast intersects r with every piece of g and returns the nearest one. Pieces sit in
// group-local space, so the ray is moved there first; the group transform is rigid, which
// keeps distances unchanged. Equal distances resolve to the piece built first.
func Cast(r Ray, g *grid.Group) (Hit, bool) {
	w2l := g.WorldToLocal()
	local := Ray{
		Origin: w2l.Mul4x1(r.Origin.Vec4(1)).Vec3(),
		Dir:    w2l.Mul4x1(r.Dir.Vec4(0)).Vec3(),
	}

	var best Hit
	found := false
	for _, p := range g.Pieces() {
		min, max := p.Bounds()
		t, ok := IntersectBox(local, min, max)
		if !ok {
			continue
		}
		if !found || t < best.T {
			best = Hit{Piece: p, T: t}
			found = true
		}
	}
	return best, found
}
