// Package frameloop orders the per-frame work of the sketch and routes resize and pointer
// events to the parts that care about them.
package frameloop

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand/v2"
	"time"

	"rubik-sketch/internal/anim"
	"rubik-sketch/internal/config"
	"rubik-sketch/internal/grid"
	"rubik-sketch/internal/logger"
	"rubik-sketch/internal/picking"
	"rubik-sketch/internal/scene"
)

// ErrNoSurface is returned when the loop is asked to drive a viewport with no area.
var ErrNoSurface = errors.New("frameloop: no drawing surface")

// Renderer draws a scene into a surface of a given size.
type Renderer interface {
	SetSize(width, height int)
	Size() (width, height int)
	Render(s *scene.Scene)
}

// CameraControl integrates user camera input once per frame.
type CameraControl interface {
	SetViewport(width, height int)
	Update() bool
}

// Options configures a Loop. Animator and LogicalStep are required; a nil Highlighter
// highlights in black.
type Options struct {
	LogicalStep float64
	Animator    *anim.Animator
	Highlighter *picking.Highlighter
	// Now defaults to time.Now.
	Now func() time.Time
	Log logger.Logger
}

// OptionsFromConfig builds the animator and highlighter described by cfg.
func OptionsFromConfig(cfg config.Config, log logger.Logger) (Options, error) {
	drives := make([]anim.Drive, 0, len(cfg.Animation.Oscillators))
	for i, o := range cfg.Animation.Oscillators {
		axis, err := grid.ParseAxis(o.Axis)
		if err != nil {
			return Options{}, fmt.Errorf("oscillator %d: %w", i, err)
		}
		drives = append(drives, anim.Drive{Piece: o.Piece, Axis: axis, Min: o.Min, Max: o.Max})
	}
	animator, err := anim.NewAnimator(cfg.Animation.GroupFrequency, cfg.Animation.PieceFrequency, drives)
	if err != nil {
		return Options{}, err
	}
	highlight, err := config.ParseColor(cfg.Grid.Highlight)
	if err != nil {
		return Options{}, fmt.Errorf("highlight color: %w", err)
	}
	return Options{
		LogicalStep: cfg.Animation.LogicalStep,
		Animator:    animator,
		Highlighter: picking.NewHighlighter(highlight, log),
		Log:         log,
	}, nil
}

// Loop drives one scene. All methods must be called from the same goroutine.
type Loop struct {
	scene    *scene.Scene
	renderer Renderer
	controls CameraControl

	animator    *anim.Animator
	highlighter *picking.Highlighter
	logical     *anim.LogicalClock
	wall        anim.WallClock
	now         func() time.Time

	width, height int

	log logger.Logger
}

// New wires a loop for s. The scene must already hold a built grid. controls may be nil.
func New(s *scene.Scene, r Renderer, controls CameraControl, width, height int, opts Options) (*Loop, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: viewport %dx%d", ErrNoSurface, width, height)
	}
	if s == nil || s.Grid == nil {
		return nil, errors.New("frameloop: scene has no grid")
	}
	if r == nil {
		return nil, errors.New("frameloop: renderer is required")
	}
	if opts.Animator == nil {
		return nil, errors.New("frameloop: animator is required")
	}
	if opts.LogicalStep <= 0 {
		return nil, fmt.Errorf("frameloop: logical step must be positive, got %v", opts.LogicalStep)
	}
	if opts.Highlighter == nil {
		opts.Highlighter = picking.NewHighlighter(color.RGBA{A: 0xff}, opts.Log)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	l := &Loop{
		scene:       s,
		renderer:    r,
		controls:    controls,
		animator:    opts.Animator,
		highlighter: opts.Highlighter,
		logical:     anim.NewLogicalClock(opts.LogicalStep),
		now:         opts.Now,
		log:         logger.OrNop(opts.Log),
	}
	l.OnResize(width, height)
	return l, nil
}

// OnFrame runs one frame. Animation is applied before the camera moves, and exactly one
// render closes the frame.
func (l *Loop) OnFrame() {
	dt := l.wall.Tick(l.now())
	l.logical.Advance()

	t := l.logical.T()
	l.animator.Tick(t).Apply(l.scene.Grid)

	l.scene.Indicator.Spin.Advance(dt)

	if l.controls != nil {
		l.controls.Update()
	}

	l.scene.Status.Frames = l.logical.Frames()
	l.scene.Status.LogicalTime = t
	l.renderer.Render(l.scene)
}

// OnResize propagates a new viewport size. Zero-sized viewports (a minimized window) are
// ignored so the camera never gets a degenerate aspect.
func (l *Loop) OnResize(width, height int) {
	if width <= 0 || height <= 0 {
		l.log.Debugf("resize to %dx%d ignored", width, height)
		return
	}
	l.width, l.height = width, height
	l.renderer.SetSize(width, height)
	l.scene.Camera.SetAspect(float32(width) / float32(height))
	l.scene.Camera.UpdateProjection()
	if l.controls != nil {
		l.controls.SetViewport(width, height)
	}
	l.log.Infof("viewport %dx%d", width, height)
}

// OnPointerMove re-evaluates the highlight for a pointer at client pixel coordinates.
func (l *Loop) OnPointerMove(clientX, clientY float32) {
	ndcX, ndcY := picking.ClientToNDC(clientX, clientY, l.width, l.height)
	l.highlighter.OnPointerMove(ndcX, ndcY, l.scene.Camera, l.scene.Grid)
	l.scene.Status.Highlighted = ""
	if p := l.highlighter.Current(); p != nil {
		l.scene.Status.Highlighted = p.Name
	}
}

// OnPointerLeave clears the highlight when the pointer leaves the viewport.
func (l *Loop) OnPointerLeave() {
	l.highlighter.Clear()
	l.scene.Status.Highlighted = ""
}

// Rebuild regenerates the grid with fresh colors. The highlight is restored first, so a
// failed rebuild leaves the old grid as it was before the pointer touched it.
func (l *Loop) Rebuild(rng *rand.Rand) error {
	l.highlighter.Clear()
	l.scene.Status.Highlighted = ""
	if err := l.scene.Rebuild(rng); err != nil {
		return err
	}
	l.animator.Tick(l.logical.T()).Apply(l.scene.Grid)
	return nil
}

// Size is the current viewport size.
func (l *Loop) Size() (width, height int) {
	return l.width, l.height
}

// Highlighter exposes the highlighter driven by pointer events.
func (l *Loop) Highlighter() *picking.Highlighter {
	return l.highlighter
}

// LogicalTime is the animation time of the last frame.
func (l *Loop) LogicalTime() float64 {
	return l.logical.T()
}
