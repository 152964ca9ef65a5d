package main

import (
	"flag"
	"math/rand/v2"
	"os"
	"time"

	"rubik-sketch/internal/config"
	"rubik-sketch/internal/debug"
	"rubik-sketch/internal/fonts"
	"rubik-sketch/internal/frameloop"
	"rubik-sketch/internal/graphics"
	"rubik-sketch/internal/logger"
	"rubik-sketch/internal/orbit"
	"rubik-sketch/internal/render"
	"rubik-sketch/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// app routes window events to the frame loop and the orbit controls.
type app struct {
	*frameloop.Loop
	controls *orbit.Controls
	renderer *render.Renderer
	overlay  *debug.Debug
	rng      *rand.Rand
	log      logger.Logger
}

// Close releases GPU resources while the window is still open.
func (a *app) Close() {
	if font := a.overlay.Font(); font.Texture.ID != 0 {
		rl.UnloadFont(font)
	}
	a.renderer.Close()
}

func (a *app) OnDrag(dx, dy float32) { a.controls.Drag(dx, dy) }
func (a *app) OnWheel(delta float32) { a.controls.Wheel(delta) }

func (a *app) OnKey(key int32) {
	if key != rl.KeyR {
		return
	}
	if err := a.Rebuild(a.rng); err != nil {
		a.log.Errorf("rebuild: %v", err)
	}
}

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the YAML config")
	writeConfig := flag.String("write-config", "", "write the effective config to this path and exit")
	flag.Parse()

	log := logger.New("sketch", false)
	defer log.Close()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Errorf("config: %v", err)
		os.Exit(1)
	}
	log.SetDebug(cfg.Debug.LogDebug)
	if cfg.Debug.LogFile != "" {
		if err := log.TeeFile(cfg.Debug.LogFile); err != nil {
			log.Warnf("log file: %v", err)
		}
	}
	log.Infof("config loaded from %s", *configPath)

	if *writeConfig != "" {
		if err := config.Save(*writeConfig, cfg); err != nil {
			log.Errorf("write config: %v", err)
			os.Exit(1)
		}
		log.Infof("config written to %s", *writeConfig)
		return
	}

	seed := uint64(cfg.Grid.Seed)
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed>>32))

	window := graphics.Window{
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Title:     cfg.Window.Title,
		TargetFPS: cfg.Window.TargetFPS,
		MSAA:      cfg.Window.MSAA,
	}
	overlay := debug.New()
	overlay.ShowFPS = cfg.Debug.ShowFPS
	overlay.ShowOverlay = cfg.Debug.ShowOverlay
	renderer := render.New(overlay, log)

	setup := func(width, height int) (graphics.Handler, error) {
		if cfg.Debug.Font != "" {
			if path, err := fonts.Find(cfg.Debug.Font); err != nil {
				log.Warnf("overlay font %q not found, using default", cfg.Debug.Font)
			} else {
				overlay.SetFont(rl.LoadFont(path))
				log.Infof("overlay font %s", path)
			}
		}
		scn, err := scene.New(cfg, float32(width)/float32(height), rng, log)
		if err != nil {
			return nil, err
		}
		controls := orbit.New(scn.Camera, orbit.Options{
			RotateSpeed: cfg.Orbit.RotateSpeed,
			ZoomSpeed:   cfg.Orbit.ZoomSpeed,
			Damping:     cfg.Orbit.Damping,
			MinDistance: cfg.Orbit.MinDistance,
			MaxDistance: cfg.Orbit.MaxDistance,
		})
		opts, err := frameloop.OptionsFromConfig(cfg, log)
		if err != nil {
			return nil, err
		}
		loop, err := frameloop.New(scn, renderer, controls, width, height, opts)
		if err != nil {
			return nil, err
		}
		return &app{Loop: loop, controls: controls, renderer: renderer, overlay: overlay, rng: rng, log: log}, nil
	}

	if err := graphics.Run(window, setup, log); err != nil {
		log.Errorf("%v", err)
		log.Close()
		os.Exit(1)
	}
}
