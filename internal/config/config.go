package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"rubik-sketch/internal/grid"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file location, relative to the process working directory.
const DefaultPath = "config/sketch.yaml"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds everything tunable about the sketch. Zero sections fall back to Default().
type Config struct {
	Window    Window    `yaml:"window"`
	Grid      Grid      `yaml:"grid"`
	Animation Animation `yaml:"animation"`
	Camera    Camera    `yaml:"camera"`
	Orbit     Orbit     `yaml:"orbit"`
	Scene     Scene     `yaml:"scene"`
	Debug     Debug     `yaml:"debug"`
}

type Window struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int    `yaml:"target_fps"`
	MSAA      bool   `yaml:"msaa"`
}

type Grid struct {
	UnitSize  float32  `yaml:"unit_size"`
	Gap       float32  `yaml:"gap"`
	Palette   []string `yaml:"palette"`
	Highlight string   `yaml:"highlight"`
	// Seed 0 picks a time-based seed.
	Seed int64 `yaml:"seed"`
}

// Oscillator drives one axis of one named piece between Min and Max.
type Oscillator struct {
	Piece string  `yaml:"piece"`
	Axis  string  `yaml:"axis"`
	Min   float32 `yaml:"min"`
	Max   float32 `yaml:"max"`
}

type Animation struct {
	LogicalStep    float64      `yaml:"logical_step"`
	GroupFrequency float64      `yaml:"group_frequency"`
	PieceFrequency float64      `yaml:"piece_frequency"`
	Oscillators    []Oscillator `yaml:"oscillators"`
}

type Camera struct {
	Fovy     float32    `yaml:"fovy"`
	Near     float32    `yaml:"near"`
	Far      float32    `yaml:"far"`
	Position [3]float32 `yaml:"position"`
	Target   [3]float32 `yaml:"target"`
}

type Orbit struct {
	RotateSpeed float32 `yaml:"rotate_speed"`
	ZoomSpeed   float32 `yaml:"zoom_speed"`
	Damping     float32 `yaml:"damping"`
	MinDistance float32 `yaml:"min_distance"`
	MaxDistance float32 `yaml:"max_distance"`
}

type Scene struct {
	Background     string     `yaml:"background"`
	SkyColor       string     `yaml:"sky_color"`
	GroundColor    string     `yaml:"ground_color"`
	HemiIntensity  float32    `yaml:"hemi_intensity"`
	LightPosition  [3]float32 `yaml:"light_position"`
	LightColor     string     `yaml:"light_color"`
	LightIntensity float32    `yaml:"light_intensity"`

	// Indicator draws the spinning translucent shell around the grid.
	Indicator bool `yaml:"indicator"`
}

type Debug struct {
	ShowFPS     bool   `yaml:"show_fps"`
	ShowOverlay bool   `yaml:"show_overlay"`
	LogDebug    bool   `yaml:"log_debug"`
	LogFile     string `yaml:"log_file,omitempty"`
	// Font is a font file or family name for the overlay; empty uses the raylib default.
	Font string `yaml:"font,omitempty"`
}

// Default is the stock look: violet/yellow/white pieces on a grey background,
// a 75° camera at (3,3,3) and four breathing pieces.
func Default() Config {
	const gap = 0.05
	return Config{
		Window: Window{
			Width:     1280,
			Height:    720,
			Title:     "rubik sketch",
			TargetFPS: 60,
			MSAA:      true,
		},
		Grid: Grid{
			UnitSize:  1,
			Gap:       gap,
			Palette:   []string{"#9160e6", "#ffeb23", "#ffffff"},
			Highlight: "#000000",
		},
		Animation: Animation{
			LogicalStep:    0.05,
			GroupFrequency: 0.05,
			PieceFrequency: 0.25,
			Oscillators: []Oscillator{
				{Piece: "cube-1-11", Axis: "x", Min: -1, Max: -2},
				{Piece: "cube1-11", Axis: "y", Min: -1, Max: -2},
				{Piece: "cube11-1", Axis: "z", Min: -1 - gap, Max: -2},
				{Piece: "cube110", Axis: "z", Min: 0, Max: -1 + gap},
			},
		},
		Camera: Camera{
			Fovy:     75,
			Near:     0.1,
			Far:      1000,
			Position: [3]float32{3, 3, 3},
			Target:   [3]float32{0, 0, 0},
		},
		Orbit: Orbit{
			RotateSpeed: 1,
			ZoomSpeed:   1,
			Damping:     0.1,
			MinDistance: 1.5,
			MaxDistance: 50,
		},
		Scene: Scene{
			Background:     "#686868",
			SkyColor:       "#ffffff",
			GroundColor:    "#080820",
			HemiIntensity:  1,
			LightPosition:  [3]float32{5, 10, 7.5},
			LightColor:     "#ffffff",
			LightIntensity: 1,
		},
	}
}

// Load reads path on top of Default(). A missing file yields Default() with no error;
// a malformed or invalid file is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML, creating the parent directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports the first problem found, wrapped in ErrInvalid.
func (c Config) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return invalid("window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Grid.UnitSize <= 0 {
		return invalid("grid.unit_size must be positive, got %v", c.Grid.UnitSize)
	}
	if c.Grid.Gap < 0 {
		return invalid("grid.gap must not be negative, got %v", c.Grid.Gap)
	}
	if len(c.Grid.Palette) == 0 {
		return invalid("grid.palette is empty")
	}
	for _, s := range c.Grid.Palette {
		if _, err := ParseColor(s); err != nil {
			return invalid("grid.palette: %v", err)
		}
	}
	for _, named := range [][2]string{
		{"grid.highlight", c.Grid.Highlight},
		{"scene.background", c.Scene.Background},
		{"scene.sky_color", c.Scene.SkyColor},
		{"scene.ground_color", c.Scene.GroundColor},
		{"scene.light_color", c.Scene.LightColor},
	} {
		if _, err := ParseColor(named[1]); err != nil {
			return invalid("%s: %v", named[0], err)
		}
	}
	if c.Animation.LogicalStep <= 0 {
		return invalid("animation.logical_step must be positive, got %v", c.Animation.LogicalStep)
	}
	for i, o := range c.Animation.Oscillators {
		if _, err := grid.ParseAxis(o.Axis); err != nil {
			return invalid("animation.oscillators[%d]: %v", i, err)
		}
		if _, ok := grid.ParseName(o.Piece); !ok {
			return invalid("animation.oscillators[%d]: no piece named %q", i, o.Piece)
		}
	}
	if c.Camera.Fovy <= 0 || c.Camera.Fovy >= 180 {
		return invalid("camera.fovy out of range: %v", c.Camera.Fovy)
	}
	if c.Camera.Near <= 0 || c.Camera.Near >= c.Camera.Far {
		return invalid("camera near/far: %v/%v", c.Camera.Near, c.Camera.Far)
	}
	if c.Orbit.Damping < 0 || c.Orbit.Damping > 1 {
		return invalid("orbit.damping must be within [0,1], got %v", c.Orbit.Damping)
	}
	if c.Orbit.MinDistance <= 0 || c.Orbit.MinDistance > c.Orbit.MaxDistance {
		return invalid("orbit distance range: %v..%v", c.Orbit.MinDistance, c.Orbit.MaxDistance)
	}
	return nil
}

// ParseColor accepts "#rrggbb", "#rrggbbaa" or an SVG color name ("black", "rebeccapurple").
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		hex, ok = strings.CutPrefix(s, "0x")
	}
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return color.RGBA{}, fmt.Errorf("bad color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// MustColor is ParseColor for values that already passed Validate.
func MustColor(s string) color.RGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// PaletteColors returns the parsed grid palette.
func (g Grid) PaletteColors() []color.RGBA {
	out := make([]color.RGBA, 0, len(g.Palette))
	for _, s := range g.Palette {
		out = append(out, MustColor(s))
	}
	return out
}
