package scene

import (
	"image/color"
	"math/rand/v2"
	"testing"
	"time"

	"rubik-sketch/internal/config"
	"rubik-sketch/internal/grid"
	"rubik-sketch/internal/logger"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScene(t *testing.T) *Scene {
	t.Helper()
	s, err := New(config.Default(), 16.0/9.0, rand.New(rand.NewPCG(4, 2)), logger.Nop())
	require.NoError(t, err)
	return s
}

func TestNew_FromDefaultConfig(t *testing.T) {
	s := newScene(t)
	require.NotNil(t, s.Grid)
	assert.Len(t, s.Grid.Pieces(), grid.Size)
	assert.Equal(t, color.RGBA{0x68, 0x68, 0x68, 0xff}, s.Background)
	assert.Equal(t, mgl32.Vec3{3, 3, 3}, s.Camera.Position)
	assert.Equal(t, float32(75), s.Camera.Fovy)
	assert.Equal(t, float32(16.0/9.0), s.Camera.Aspect())
	assert.Equal(t, color.RGBA{0x08, 0x08, 0x20, 0xff}, s.Lights.GroundColor)
	assert.InDelta(t, 1, s.Lights.Direction().Len(), 1e-6)
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Grid.Palette = nil
	_, err := New(cfg, 1, rand.New(rand.NewPCG(1, 1)), nil)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestRebuild_ReplacesGrid(t *testing.T) {
	s := newScene(t)
	old := s.Grid
	s.Status.Highlighted = "cube000"

	require.NoError(t, s.Rebuild(rand.New(rand.NewPCG(8, 8))))
	assert.NotSame(t, old, s.Grid)
	assert.NotEqual(t, old.BuildID, s.Grid.BuildID)
	assert.Empty(t, s.Status.Highlighted)
	assert.Len(t, s.Grid.Pieces(), grid.Size)
}

func TestIndicatorTransformFollowsSpin(t *testing.T) {
	s := newScene(t)
	size := s.Indicator.Size
	rest := mgl32.Scale3D(size, size, size)
	assert.True(t, s.Indicator.Transform().ApproxEqual(rest))

	s.Indicator.Spin.Advance(time.Second)
	assert.False(t, s.Indicator.Transform().ApproxEqual(rest))
}

func TestIndicatorHiddenByDefault(t *testing.T) {
	s := newScene(t)
	assert.False(t, s.Indicator.Visible)

	cfg := config.Default()
	cfg.Scene.Indicator = true
	shown, err := New(cfg, 1, rand.New(rand.NewPCG(1, 2)), nil)
	require.NoError(t, err)
	assert.True(t, shown.Indicator.Visible)
}

func TestIndicatorEnclosesGrid(t *testing.T) {
	s := newScene(t)
	half := s.Indicator.Size / 2
	for _, p := range s.Grid.Pieces() {
		lo, hi := p.Bounds()
		for a := 0; a < 3; a++ {
			assert.Less(t, hi[a], half, p.Name)
			assert.Greater(t, lo[a], -half, p.Name)
		}
	}
	c, ok := s.Grid.Piece("cube000")
	require.True(t, ok)
	_, hi := c.Bounds()
	assert.Greater(t, half, hi.X(), "no shared faces with the center piece")
}

func TestLightsDirectionFallback(t *testing.T) {
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, Lights{}.Direction())
}
