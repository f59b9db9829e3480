// Package app wires the host, the scene and the parameter panel together.
package app

import (
	"fmt"
	"image/png"
	"os"

	"scrollscene/hal"
	"scrollscene/internal/assets"
	"scrollscene/internal/buildinfo"
	"scrollscene/internal/experience"
	"scrollscene/internal/panel"
	"scrollscene/internal/softgl"
)

// Config is the application configuration assembled by main.
type Config struct {
	Scene experience.Config

	// Assets is the directory textures are resolved against.
	Assets string
	// Snapshot, when set, is the PNG path the last frame is written to on
	// Close.
	Snapshot string
	// Wireframe starts the renderer in wireframe mode.
	Wireframe bool
}

// App is one running scene.
type App struct {
	h     hal.HAL
	log   hal.Logger
	cfg   Config
	loop  *experience.Loop
	panel *panel.Panel
	frame *frameRenderer
}

// New builds the scene on h and returns it ready to Step.
func New(h hal.HAL, cfg Config) *App {
	a := &App{h: h, log: h.Logger(), cfg: cfg}
	a.logf("scrollscene %s", buildinfo.Short())

	normalMap := a.loadTextures()
	world := experience.Build(&cfg.Scene.Params, normalMap)

	a.panel = newPanel()
	a.frame = newFrameRenderer(h.Display().Framebuffer(), a.panel)
	if cfg.Wireframe {
		a.frame.r.SetRenderMode(softgl.RenderWireframe)
	}

	a.loop = experience.NewLoop(cfg.Scene, world, h.Clock(), a.frame, a.log)
	bindPanel(a.panel, a.loop.Params())
	a.loop.OnKey = a.handleKey
	a.loop.OnResize = a.frame.resize
	return a
}

// Step drains pending input and advances one frame.
func (a *App) Step() error {
	a.drain()
	return a.loop.Tick()
}

// StepFunc returns Step wrapped for the hal runners: a panic is reported on
// screen and in the log, then returned as an error.
func (a *App) StepFunc() func() error {
	return func() (err error) {
		defer a.recoverPanic(&err)
		return a.Step()
	}
}

// Loop exposes the frame loop.
func (a *App) Loop() *experience.Loop { return a.loop }

// Panel exposes the parameter panel.
func (a *App) Panel() *panel.Panel { return a.panel }

// Close writes the snapshot, if one was requested.
func (a *App) Close() error {
	if a.cfg.Snapshot == "" {
		return nil
	}
	if err := a.writeSnapshot(a.cfg.Snapshot); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	a.logf("wrote %s", a.cfg.Snapshot)
	return nil
}

func (a *App) drain() {
	in := a.h.Input()
	if in == nil {
		return
	}
	ch := in.Events()
	for {
		select {
		case ev := <-ch:
			a.loop.Dispatch(ev)
		default:
			return
		}
	}
}

func (a *App) handleKey(e hal.KeyEvent) bool {
	if a.panel.HandleKey(e) {
		return true
	}
	if !e.Press {
		return false
	}
	switch e.Rune {
	case 'w', 'W':
		mode := softgl.RenderSolid
		name := "solid"
		if a.frame.r.Mode == softgl.RenderSolid {
			mode, name = softgl.RenderWireframe, "wireframe"
		}
		a.frame.r.SetRenderMode(mode)
		a.logf("render mode %s", name)
		return true
	}
	return false
}

func (a *App) loadTextures() softgl.NormalSampler {
	m := &assets.LoadingManager{
		OnStart: func(url string, loaded, total int) {
			a.logf("loading started: %s (%d/%d)", url, loaded, total)
		},
		OnProgress: func(url string, loaded, total int) {
			a.logf("loading: %s (%d/%d)", url, loaded, total)
		},
		OnLoad: func() {
			a.logf("loading finished")
		},
		OnError: func(url string, err error) {
			a.logf("loading failed: %v", err)
		},
	}
	if a.cfg.Scene.NormalMap == "" {
		return nil
	}
	loader := assets.NewTextureLoader(a.cfg.Assets, m)
	return loader.Load(a.cfg.Scene.NormalMap, nil, nil, nil)
}

func (a *App) writeSnapshot(path string) error {
	fb := a.h.Display().Framebuffer()
	if fb == nil {
		return hal.ErrNotImplemented
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, fb.Image()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (a *App) logf(format string, args ...any) {
	if a.log == nil {
		return
	}
	a.log.WriteLineString("app: " + fmt.Sprintf(format, args...))
}
