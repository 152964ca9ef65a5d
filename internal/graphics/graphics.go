package graphics

import (
	"fmt"

	"rubik-sketch/internal/frameloop"
	"rubik-sketch/internal/logger"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Window describes the window to open.
type Window struct {
	Width     int
	Height    int
	Title     string
	TargetFPS int
	MSAA      bool
}

// Handler receives the display-refresh callback and input events, all on the main thread.
type Handler interface {
	OnFrame()
	OnResize(width, height int)
	OnPointerMove(x, y float32)
	OnPointerLeave()
	OnDrag(dx, dy float32)
	OnWheel(delta float32)
	OnKey(key int32)
}

// Run opens the window, calls setup with the real surface size and then drives the handler
// once per displayed frame until the window is closed. A handler with a Close method is
// closed before the window. A window without area is a fatal ErrNoSurface.
func Run(win Window, setup func(width, height int) (Handler, error), log logger.Logger) error {
	log = logger.OrNop(log)

	flags := uint32(rl.FlagWindowResizable)
	if win.MSAA {
		flags |= rl.FlagMsaa4xHint
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(win.Width), int32(win.Height), win.Title)
	defer rl.CloseWindow()

	width, height := rl.GetScreenWidth(), rl.GetScreenHeight()
	if !rl.IsWindowReady() || width <= 0 || height <= 0 {
		return fmt.Errorf("open window: %w", frameloop.ErrNoSurface)
	}
	rl.SetTargetFPS(int32(win.TargetFPS))
	log.Infof("window %dx%d", width, height)

	h, err := setup(width, height)
	if err != nil {
		return err
	}
	if c, ok := h.(interface{ Close() }); ok {
		defer c.Close()
	}

	var (
		lastMouse rl.Vector2
		onScreen  bool
	)
	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			h.OnResize(rl.GetScreenWidth(), rl.GetScreenHeight())
		}

		if rl.IsCursorOnScreen() {
			if m := rl.GetMousePosition(); !onScreen || m != lastMouse {
				h.OnPointerMove(m.X, m.Y)
				lastMouse = m
			}
			onScreen = true
		} else if onScreen {
			h.OnPointerLeave()
			onScreen = false
		}

		if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
			if d := rl.GetMouseDelta(); d.X != 0 || d.Y != 0 {
				h.OnDrag(d.X, d.Y)
			}
		}
		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			h.OnWheel(wheel)
		}
		for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
			h.OnKey(key)
		}

		h.OnFrame()
	}
	return nil
}
