package scene

import (
	"fmt"
	"image/color"
	"math/rand/v2"

	"rubik-sketch/internal/anim"
	"rubik-sketch/internal/camera"
	"rubik-sketch/internal/config"
	"rubik-sketch/internal/grid"
	"rubik-sketch/internal/logger"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/colornames"
)

// Lights is a sky/ground hemisphere light plus one directional light.
type Lights struct {
	SkyColor      color.RGBA
	GroundColor   color.RGBA
	HemiIntensity float32

	// LightPosition is where the directional light shines from, towards the origin.
	LightPosition  mgl32.Vec3
	LightColor     color.RGBA
	LightIntensity float32
}

// Direction is the unit vector from the origin towards the directional light.
func (l Lights) Direction() mgl32.Vec3 {
	if l.LightPosition.Len() == 0 {
		return mgl32.Vec3{0, 1, 0}
	}
	return l.LightPosition.Normalize()
}

// Indicator is the translucent spinning box centered on the grid. It is decoration: never
// picked, never part of the grid. It spins whether or not it is Visible.
type Indicator struct {
	Spin    anim.Spin
	Size    float32
	Color   color.RGBA
	Visible bool
}

// shellSize is an edge length that encloses the grid's faces, so the indicator never shares
// a surface with a piece.
func shellSize(unit, gap float32) float32 {
	return 3*unit + 2*gap + unit/2
}

// Transform is the model matrix of the indicator.
func (i *Indicator) Transform() mgl32.Mat4 {
	return i.Spin.Orientation().Mat4().Mul4(mgl32.Scale3D(i.Size, i.Size, i.Size))
}

// Status is what the frame loop last did, for overlays and logs.
type Status struct {
	Frames      uint64
	LogicalTime float64
	Highlighted string
}

// Scene owns everything that gets drawn. One Scene is shared by the frame loop, the
// animator and the highlighter; there is no global scene state.
type Scene struct {
	Grid       *grid.Group
	Indicator  *Indicator
	Camera     *camera.Perspective
	Background color.RGBA
	Lights     Lights
	Status     Status

	gridOpts grid.Options
	log      logger.Logger
}

// New builds the scene described by cfg. aspect is the initial viewport width/height.
func New(cfg config.Config, aspect float32, rng *rand.Rand, log logger.Logger) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Scene{
		Camera: camera.New(
			mgl32.Vec3(cfg.Camera.Position),
			mgl32.Vec3(cfg.Camera.Target),
			cfg.Camera.Fovy, aspect, cfg.Camera.Near, cfg.Camera.Far,
		),
		Indicator: &Indicator{
			Spin:    anim.Spin{Rate: mgl32.Vec3{0, 1, 1}},
			Size:    shellSize(cfg.Grid.UnitSize, cfg.Grid.Gap),
			Color:   withAlpha(colornames.Lightskyblue, 0x30),
			Visible: cfg.Scene.Indicator,
		},
		Background: config.MustColor(cfg.Scene.Background),
		Lights: Lights{
			SkyColor:       config.MustColor(cfg.Scene.SkyColor),
			GroundColor:    config.MustColor(cfg.Scene.GroundColor),
			HemiIntensity:  cfg.Scene.HemiIntensity,
			LightPosition:  mgl32.Vec3(cfg.Scene.LightPosition),
			LightColor:     config.MustColor(cfg.Scene.LightColor),
			LightIntensity: cfg.Scene.LightIntensity,
		},
		gridOpts: grid.Options{
			UnitSize: cfg.Grid.UnitSize,
			Gap:      cfg.Grid.Gap,
			Palette:  cfg.Grid.PaletteColors(),
		},
		log: logger.OrNop(log),
	}
	if err := s.Rebuild(rng); err != nil {
		return nil, err
	}
	return s, nil
}

// Rebuild replaces the grid with a freshly built one. Callers holding pieces of the old
// grid (a highlighter, for one) must drop them first.
func (s *Scene) Rebuild(rng *rand.Rand) error {
	g, err := grid.Build(s.gridOpts, rng)
	if err != nil {
		return fmt.Errorf("build grid: %w", err)
	}
	s.Grid = g
	s.Status.Highlighted = ""
	s.log.Infof("grid built: id=%s pieces=%d", g.BuildID, len(g.Pieces()))
	return nil
}

func withAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}
