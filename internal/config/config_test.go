package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"rubik-sketch/internal/grid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Len(t, cfg.Animation.Oscillators, 4)
	assert.Equal(t, []color.RGBA{
		{0x91, 0x60, 0xe6, 0xff},
		{0xff, 0xeb, 0x23, 0xff},
		{0xff, 0xff, 0xff, 0xff},
	}, cfg.Grid.PaletteColors())
}

func TestLoad_MissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverridesOnTopOfDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sketch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
grid:
  gap: 0.1
  palette: ["red", "#00ff00"]
animation:
  oscillators:
    - {piece: cube000, axis: y, min: -0.5, max: 0.5}
debug:
  show_fps: true
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.InDelta(t, 0.1, cfg.Grid.Gap, 1e-6)
	assert.Equal(t, float32(1), cfg.Grid.UnitSize)
	assert.Equal(t, []string{"red", "#00ff00"}, cfg.Grid.Palette)
	require.Len(t, cfg.Animation.Oscillators, 1)
	assert.Equal(t, "cube000", cfg.Animation.Oscillators[0].Piece)
	assert.True(t, cfg.Debug.ShowFPS)
	assert.Equal(t, Default().Camera, cfg.Camera)
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sketch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grid: [unclosed"), 0644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sketch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grid:\n  unit_size: -1\n"), 0644))
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"empty palette":    func(c *Config) { c.Grid.Palette = nil },
		"bad palette":      func(c *Config) { c.Grid.Palette = []string{"#12"} },
		"bad highlight":    func(c *Config) { c.Grid.Highlight = "nope" },
		"negative gap":     func(c *Config) { c.Grid.Gap = -0.1 },
		"zero step":        func(c *Config) { c.Animation.LogicalStep = 0 },
		"unknown axis":     func(c *Config) { c.Animation.Oscillators[0].Axis = "w" },
		"unknown piece":    func(c *Config) { c.Animation.Oscillators[0].Piece = "cube222" },
		"near beyond far":  func(c *Config) { c.Camera.Near = 2000 },
		"fovy":             func(c *Config) { c.Camera.Fovy = 0 },
		"damping":          func(c *Config) { c.Orbit.Damping = 2 },
		"distance range":   func(c *Config) { c.Orbit.MinDistance = 100 },
		"zero window size": func(c *Config) { c.Window.Width = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestValidate_AxisAnyCase(t *testing.T) {
	cfg := Default()
	cfg.Animation.Oscillators[0].Axis = "X"
	cfg.Animation.Oscillators[1].Axis = "Y"
	require.NoError(t, cfg.Validate())

	for _, o := range cfg.Animation.Oscillators {
		_, err := grid.ParseAxis(o.Axis)
		assert.NoError(t, err, o.Axis)
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#686868")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0x68, 0x68, 0x68, 0xff}, c)

	c, err = ParseColor("0x9160e680")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0x91, 0x60, 0xe6, 0x80}, c)

	c, err = ParseColor("Black")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 0, 0, 0xff}, c)

	for _, bad := range []string{"", "#12345", "#gggggg", "9160e6"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, bad)
	}
	assert.Panics(t, func() { MustColor("bogus") })
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "sketch.yaml")
	cfg := Default()
	cfg.Grid.Seed = 42
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.Grid.Seed)
}
