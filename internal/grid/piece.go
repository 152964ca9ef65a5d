package grid

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// tint is the per-piece color state. It is either normal (showing base) or highlighted
// (showing highlight while base is kept for restoration). There is no third state, so a
// highlight can never overwrite the color it has to restore.
type tint struct {
	base        color.RGBA
	highlight   color.RGBA
	highlighted bool
}

// Piece is one lattice cell of the grid.
type Piece struct {
	Coord Coord
	Name  string

	// Home is the rest position in group-local space; Position starts there and is the
	// only transform field the animator writes.
	Home     mgl32.Vec3
	Position mgl32.Vec3
	Size     float32

	CastShadow    bool
	ReceiveShadow bool

	tint tint
}

// Color is what the piece currently displays.
func (p *Piece) Color() color.RGBA {
	if p.tint.highlighted {
		return p.tint.highlight
	}
	return p.tint.base
}

// SavedColor returns the color to restore while highlighted.
func (p *Piece) SavedColor() (color.RGBA, bool) {
	if !p.tint.highlighted {
		return color.RGBA{}, false
	}
	return p.tint.base, true
}

func (p *Piece) Highlighted() bool {
	return p.tint.highlighted
}

// Highlight switches the piece to c. A piece that is already highlighted keeps its saved
// color and only changes the displayed one; it reports whether the state changed.
func (p *Piece) Highlight(c color.RGBA) bool {
	if p.tint.highlighted {
		p.tint.highlight = c
		return false
	}
	p.tint.highlight = c
	p.tint.highlighted = true
	return true
}

// Restore returns the piece to its saved color. No-op when not highlighted.
func (p *Piece) Restore() bool {
	if !p.tint.highlighted {
		return false
	}
	p.tint.highlighted = false
	p.tint.highlight = color.RGBA{}
	return true
}

// SetBaseColor replaces the color shown in the normal state. While highlighted it
// replaces the saved color instead, so the new color appears on restore.
func (p *Piece) SetBaseColor(c color.RGBA) {
	p.tint.base = c
}

// Bounds is the axis-aligned box of the piece in group-local space.
func (p *Piece) Bounds() (min, max mgl32.Vec3) {
	h := p.Size / 2
	half := mgl32.Vec3{h, h, h}
	return p.Position.Sub(half), p.Position.Add(half)
}

// SetAxis overwrites one component of Position.
func (p *Piece) SetAxis(a Axis, v float32) {
	p.Position[a] = v
}

// ResetPosition puts the piece back at Home.
func (p *Piece) ResetPosition() {
	p.Position = p.Home
}
