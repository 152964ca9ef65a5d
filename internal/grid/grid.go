package grid

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// Options controls how a grid is built.
type Options struct {
	UnitSize float32
	Gap      float32
	// Palette is sampled uniformly with replacement, one pick per piece.
	Palette []color.RGBA
}

// Group owns the 27 pieces and the single orientation shared by all of them.
// Pieces are created once by Build; re-theming or resizing means building a new Group.
type Group struct {
	BuildID  uuid.UUID
	Position mgl32.Vec3
	// Rotation is the yaw about +Y, in radians.
	Rotation float32

	unit   float32
	gap    float32
	pieces []*Piece
	byName map[string]*Piece
}

// Build lays out one piece per lattice coordinate at component*(unit+gap) and colors each
// from the palette using rng.
func Build(opts Options, rng *rand.Rand) (*Group, error) {
	if opts.UnitSize <= 0 {
		return nil, fmt.Errorf("grid: unit size must be positive, got %v", opts.UnitSize)
	}
	if opts.Gap < 0 {
		return nil, fmt.Errorf("grid: gap must not be negative, got %v", opts.Gap)
	}
	if len(opts.Palette) == 0 {
		return nil, errors.New("grid: empty palette")
	}
	if rng == nil {
		return nil, errors.New("grid: nil rand source")
	}

	g := &Group{
		BuildID: uuid.New(),
		unit:    opts.UnitSize,
		gap:     opts.Gap,
		pieces:  make([]*Piece, 0, Size),
		byName:  make(map[string]*Piece, Size),
	}
	step := opts.UnitSize + opts.Gap
	for _, c := range Lattice() {
		home := mgl32.Vec3{float32(c.X) * step, float32(c.Y) * step, float32(c.Z) * step}
		p := &Piece{
			Coord:         c,
			Name:          c.Name(),
			Home:          home,
			Position:      home,
			Size:          opts.UnitSize,
			CastShadow:    true,
			ReceiveShadow: true,
			tint:          tint{base: opts.Palette[rng.IntN(len(opts.Palette))]},
		}
		g.pieces = append(g.pieces, p)
		g.byName[p.Name] = p
	}
	return g, nil
}

// Pieces returns the pieces in construction order. The slice must not be modified.
func (g *Group) Pieces() []*Piece {
	return g.pieces
}

// Piece looks a piece up by its stable name.
func (g *Group) Piece(name string) (*Piece, bool) {
	p, ok := g.byName[name]
	return p, ok
}

// At returns the piece for c, or nil for a coordinate outside the lattice.
func (g *Group) At(c Coord) *Piece {
	if !c.Valid() {
		return nil
	}
	return g.pieces[c.Index()]
}

func (g *Group) UnitSize() float32 { return g.unit }
func (g *Group) Gap() float32      { return g.gap }

// Orientation is Rotation as a quaternion about +Y.
func (g *Group) Orientation() mgl32.Quat {
	return mgl32.QuatRotate(g.Rotation, mgl32.Vec3{0, 1, 0})
}

// LocalToWorld maps group-local space (where pieces live) to world space.
func (g *Group) LocalToWorld() mgl32.Mat4 {
	return mgl32.Translate3D(g.Position.X(), g.Position.Y(), g.Position.Z()).Mul4(g.Orientation().Mat4())
}

// WorldToLocal is the inverse of LocalToWorld.
func (g *Group) WorldToLocal() mgl32.Mat4 {
	invRotate := g.Orientation().Conjugate().Mat4()
	invTranslate := mgl32.Translate3D(-g.Position.X(), -g.Position.Y(), -g.Position.Z())
	return invRotate.Mul4(invTranslate)
}

// PieceToWorld is the full model matrix of p (unit cube scaled to the piece size).
func (g *Group) PieceToWorld(p *Piece) mgl32.Mat4 {
	local := mgl32.Translate3D(p.Position.X(), p.Position.Y(), p.Position.Z()).
		Mul4(mgl32.Scale3D(p.Size, p.Size, p.Size))
	return g.LocalToWorld().Mul4(local)
}

// Highlighted returns the highlighted pieces. A correct caller never sees more than one.
func (g *Group) Highlighted() []*Piece {
	var out []*Piece
	for _, p := range g.pieces {
		if p.Highlighted() {
			out = append(out, p)
		}
	}
	return out
}
