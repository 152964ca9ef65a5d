package debug

import (
	"fmt"

	"rubik-sketch/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug holds runtime overlays. All overlays are off by default.
type Debug struct {
	ShowFPS     bool
	ShowOverlay bool

	font        rl.Font
	frameCount  uint32
	lastFPSText string
	lastHover   string
	lastLines   [3]string
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetFont sets the font used for overlays. A zero font uses the raylib default.
func (d *Debug) SetFont(font rl.Font) {
	d.font = font
}

// Font is the overlay font.
func (d *Debug) Font() rl.Font {
	return d.font
}

func (d *Debug) measure(text string) int32 {
	if d.font.Texture.ID != 0 {
		return int32(rl.MeasureTextEx(d.font, text, fontSize, 1).X)
	}
	return rl.MeasureText(text, fontSize)
}

func (d *Debug) text(text string, x, y int32, c rl.Color) {
	if d.font.Texture.ID != 0 {
		rl.DrawTextEx(d.font, text, rl.NewVector2(float32(x), float32(y)), fontSize, 1, c)
		return
	}
	rl.DrawText(text, x, y, fontSize, c)
}

// Lines formats the scene status for the overlay: logical time, highlighted piece and the
// build id of the grid.
func Lines(s *scene.Scene) [3]string {
	highlighted := s.Status.Highlighted
	if highlighted == "" {
		highlighted = "-"
	}
	return [3]string{
		fmt.Sprintf("t: %.2f (frame %d)", s.Status.LogicalTime, s.Status.Frames),
		fmt.Sprintf("hover: %s", highlighted),
		fmt.Sprintf("grid: %s", s.Grid.BuildID),
	}
}

// Draw renders enabled overlays: FPS top-right in green, scene status top-left.
func (d *Debug) Draw(s *scene.Scene) {
	d.frameCount++
	update := d.frameCount%updateInterval == 0

	if d.ShowFPS {
		if update || d.lastFPSText == "" {
			d.lastFPSText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		w := d.measure(d.lastFPSText)
		d.text(d.lastFPSText, int32(rl.GetScreenWidth())-w-padding, padding, rl.Green)
	}

	if d.ShowOverlay {
		// Highlight changes are event driven; refresh them without waiting for the interval.
		if update || d.lastLines[0] == "" || d.lastHover != s.Status.Highlighted {
			d.lastLines = Lines(s)
			d.lastHover = s.Status.Highlighted
		}
		y := int32(padding)
		for _, line := range d.lastLines {
			d.text(line, padding, y, rl.RayWhite)
			y += lineHeight
		}
	}
}
