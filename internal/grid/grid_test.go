package grid

import (
	"image/color"
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	violet = color.RGBA{0x91, 0x60, 0xe6, 0xff}
	yellow = color.RGBA{0xff, 0xeb, 0x23, 0xff}
	white  = color.RGBA{0xff, 0xff, 0xff, 0xff}
	black  = color.RGBA{0, 0, 0, 0xff}
)

func testRand() *rand.Rand { return rand.New(rand.NewPCG(1, 2)) }

func buildTestGrid(t *testing.T) *Group {
	t.Helper()
	g, err := Build(Options{UnitSize: 1, Gap: 0.05, Palette: []color.RGBA{violet, yellow, white}}, testRand())
	require.NoError(t, err)
	return g
}

func TestBuild_Completeness(t *testing.T) {
	g := buildTestGrid(t)
	require.Len(t, g.Pieces(), Size)

	seen := make(map[Coord]bool)
	for _, p := range g.Pieces() {
		assert.True(t, p.Coord.Valid(), "coord %v", p.Coord)
		assert.False(t, seen[p.Coord], "duplicate coord %v", p.Coord)
		seen[p.Coord] = true
	}
	for _, c := range Lattice() {
		assert.True(t, seen[c], "missing coord %v", c)
	}
}

func TestBuild_PositionsAndNames(t *testing.T) {
	g := buildTestGrid(t)

	p, ok := g.Piece("cube1-10")
	require.True(t, ok)
	assert.Equal(t, Coord{1, -1, 0}, p.Coord)
	assert.InDelta(t, 1.05, p.Position.X(), 1e-6)
	assert.InDelta(t, -1.05, p.Position.Y(), 1e-6)
	assert.InDelta(t, 0, p.Position.Z(), 1e-6)
	assert.Equal(t, p.Home, p.Position)
	assert.True(t, p.CastShadow)
	assert.True(t, p.ReceiveShadow)

	center := g.At(Coord{0, 0, 0})
	require.NotNil(t, center)
	assert.Equal(t, mgl32.Vec3{}, center.Position)
	assert.Nil(t, g.At(Coord{2, 0, 0}))
}

func TestBuild_PaletteSampling(t *testing.T) {
	palette := []color.RGBA{violet, yellow, white}
	g := buildTestGrid(t)
	for _, p := range g.Pieces() {
		assert.Contains(t, palette, p.Color())
		assert.False(t, p.Highlighted())
	}

	// Same seed, same colors.
	again, err := Build(Options{UnitSize: 1, Gap: 0.05, Palette: palette}, testRand())
	require.NoError(t, err)
	for i, p := range g.Pieces() {
		assert.Equal(t, p.Color(), again.Pieces()[i].Color())
	}
	assert.NotEqual(t, g.BuildID, again.BuildID)
}

func TestBuild_RejectsBadOptions(t *testing.T) {
	_, err := Build(Options{UnitSize: 0, Palette: []color.RGBA{white}}, testRand())
	assert.Error(t, err)
	_, err = Build(Options{UnitSize: 1, Gap: -1, Palette: []color.RGBA{white}}, testRand())
	assert.Error(t, err)
	_, err = Build(Options{UnitSize: 1}, testRand())
	assert.Error(t, err)
	_, err = Build(Options{UnitSize: 1, Palette: []color.RGBA{white}}, nil)
	assert.Error(t, err)
}

func TestCoordIndexRoundTrip(t *testing.T) {
	for i, c := range Lattice() {
		assert.Equal(t, i, c.Index())
		assert.Equal(t, c, CoordAt(i))
	}
	// Construction-order positions used by the breathing pieces.
	assert.Equal(t, "cube-1-11", CoordAt(2).Name())
	assert.Equal(t, "cube1-11", CoordAt(20).Name())
	assert.Equal(t, "cube11-1", CoordAt(24).Name())
	assert.Equal(t, "cube110", CoordAt(25).Name())
	assert.Panics(t, func() { CoordAt(Size) })
}

func TestParseName(t *testing.T) {
	for _, c := range Lattice() {
		got, ok := ParseName(c.Name())
		require.True(t, ok, c.Name())
		assert.Equal(t, c, got)
	}
	for _, bad := range []string{"", "cube", "cube12-1", "cube-1-1", "cube0000", "box000", "cube-2-11"} {
		_, ok := ParseName(bad)
		assert.False(t, ok, bad)
	}
}

func TestParseAxis(t *testing.T) {
	a, err := ParseAxis("Z")
	require.NoError(t, err)
	assert.Equal(t, AxisZ, a)
	assert.Equal(t, "z", a.String())
	_, err = ParseAxis("w")
	assert.Error(t, err)
}

func TestPiece_HighlightRestoreRoundTrip(t *testing.T) {
	g := buildTestGrid(t)
	p := g.At(Coord{0, 1, -1})
	original := p.Color()

	assert.True(t, p.Highlight(black))
	assert.Equal(t, black, p.Color())
	saved, ok := p.SavedColor()
	require.True(t, ok)
	assert.Equal(t, original, saved)

	// Re-highlighting never touches the saved color.
	assert.False(t, p.Highlight(black))
	saved, _ = p.SavedColor()
	assert.Equal(t, original, saved)

	assert.True(t, p.Restore())
	assert.Equal(t, original, p.Color())
	_, ok = p.SavedColor()
	assert.False(t, ok)
	assert.False(t, p.Restore())
}

func TestPiece_SetBaseColorWhileHighlighted(t *testing.T) {
	g := buildTestGrid(t)
	p := g.At(Coord{0, 0, 1})
	p.Highlight(black)
	p.SetBaseColor(violet)
	assert.Equal(t, black, p.Color())
	p.Restore()
	assert.Equal(t, violet, p.Color())
}

func TestPiece_BoundsAndAxis(t *testing.T) {
	g := buildTestGrid(t)
	p := g.At(Coord{1, 1, 0})
	p.SetAxis(AxisZ, -0.5)
	min, max := p.Bounds()
	assert.InDelta(t, -1.0, min.Z(), 1e-6)
	assert.InDelta(t, 0.0, max.Z(), 1e-6)
	assert.InDelta(t, 0.55, min.X(), 1e-6)
	p.ResetPosition()
	assert.Equal(t, p.Home, p.Position)
}

func TestGroup_Transforms(t *testing.T) {
	g := buildTestGrid(t)
	g.Rotation = mgl32.DegToRad(90)
	p := g.At(Coord{1, 0, 0})

	world := g.LocalToWorld().Mul4x1(p.Position.Vec4(1)).Vec3()
	assert.InDelta(t, 0, world.X(), 1e-5)
	assert.InDelta(t, -1.05, world.Z(), 1e-5)

	back := g.WorldToLocal().Mul4x1(world.Vec4(1)).Vec3()
	assert.InDelta(t, p.Position.X(), back.X(), 1e-5)
	assert.InDelta(t, p.Position.Z(), back.Z(), 1e-5)

	center := g.PieceToWorld(p).Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	assert.InDelta(t, world.Z(), center.Z(), 1e-5)
}

func TestGroup_Highlighted(t *testing.T) {
	g := buildTestGrid(t)
	assert.Empty(t, g.Highlighted())
	g.At(Coord{-1, -1, -1}).Highlight(black)
	require.Len(t, g.Highlighted(), 1)
	assert.Equal(t, "cube-1-1-1", g.Highlighted()[0].Name)
}
