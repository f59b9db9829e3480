// Package experience drives the scroll-linked scene: cursor parallax on the
// camera rig, section tracking with spin tweens, rotation drift and the
// per-frame tick.
package experience

import (
	"fmt"

	"scrollscene/hal"
	"scrollscene/internal/softgl"
	"scrollscene/internal/tween"
)

// Renderer draws one frame of the scene.
type Renderer interface {
	Render(s *softgl.Scene) error
}

// Loop owns the input state, the motion controllers and the world, and
// advances them one frame per Tick. Events are fed through Dispatch between
// ticks; nothing here is safe for concurrent use.
type Loop struct {
	cfg    Config
	world  *World
	clock  hal.Clock
	render Renderer
	log    hal.Logger

	input    InputState
	page     Page
	sections SectionTracker
	parallax *ParallaxController
	tweens   tween.Engine
	ease     tween.Ease

	width, height int
	prevElapsed   float64

	// last pointer position in pixels, re-normalized on resize
	pointerX, pointerY float64
	hasPointer         bool

	// OnKey receives key events first; returning true consumes them.
	OnKey func(hal.KeyEvent) bool
	// OnResize runs after the viewport size changes.
	OnResize func(w, h int)
}

// NewLoop wires a loop over a built world. logger may be nil.
func NewLoop(cfg Config, w *World, clock hal.Clock, r Renderer, logger hal.Logger) *Loop {
	ease, ok := tween.ByName(cfg.TweenEase)
	if !ok {
		ease = tween.InOutCubic
	}
	l := &Loop{
		cfg:      cfg,
		world:    w,
		clock:    clock,
		render:   r,
		log:      logger,
		page:     Page{Sections: cfg.Sections, WheelStep: cfg.WheelStep},
		parallax: NewParallaxController(cfg.Sensitivity, cfg.Smoothing),
		ease:     ease,
	}
	if !ok {
		l.logf("unknown ease %q, using power2.inOut", cfg.TweenEase)
	}
	return l
}

// Input returns a copy of the current input state.
func (l *Loop) Input() InputState { return l.input }

// Section returns the current section index.
func (l *Loop) Section() int { return l.sections.Current() }

// Params returns the live parameters the world is synced from each tick.
func (l *Loop) Params() *Params { return &l.cfg.Params }

// World returns the scene handles.
func (l *Loop) World() *World { return l.world }

// Parallax returns the rig controller.
func (l *Loop) Parallax() *ParallaxController { return l.parallax }

// Tweens reports how many section tweens are still running.
func (l *Loop) Tweens() int { return l.tweens.Active() }

// Dispatch applies one input event.
func (l *Loop) Dispatch(ev hal.Event) {
	switch e := ev.(type) {
	case hal.WheelEvent:
		if off, moved := l.page.Wheel(e.DY); moved {
			l.Dispatch(hal.ScrollEvent{Offset: off})
		}
	case hal.ScrollEvent:
		l.scrollTo(e.Offset)
	case hal.PointerEvent:
		l.pointerX, l.pointerY, l.hasPointer = e.X, e.Y, true
		l.input.CursorX, l.input.CursorY = normalizeCursor(e.X, e.Y, l.width, l.height)
	case hal.ResizeEvent:
		l.resize(e.W, e.H)
	case hal.KeyEvent:
		if l.OnKey != nil {
			l.OnKey(e)
		}
	}
}

// scrollTo moves the page, clamped to its sections, and reports a section
// change to the tracker.
func (l *Loop) scrollTo(offset float64) {
	offset, _ = l.page.ScrollTo(offset)
	l.input.ScrollOffset = offset

	changed, idx := l.sections.OnScroll(offset, float64(l.height))
	if !changed {
		return
	}
	n := len(l.world.SectionMeshes)
	mi := MeshIndex(idx, n)
	if mi < 0 {
		return
	}
	m := l.world.SectionMeshes[mi]
	l.logf("section %d, spinning %s", idx, m.Name)

	spin := float32(l.cfg.TweenSpin)
	l.tweens.Animate(
		tween.Options{Duration: l.cfg.TweenDuration, Ease: l.ease},
		tween.Prop{Ptr: &m.Rotation.Transient.X, By: spin},
		tween.Prop{Ptr: &m.Rotation.Transient.Y, By: spin},
	)
}

func (l *Loop) resize(w, h int) {
	if w <= 0 || h <= 0 || (w == l.width && h == l.height) {
		return
	}
	l.width, l.height = w, h
	l.world.Camera.SetAspect(w, h)
	if l.hasPointer {
		l.input.CursorX, l.input.CursorY = normalizeCursor(l.pointerX, l.pointerY, w, h)
	}
	l.page.Resize(h)
	l.scrollTo(l.page.Offset())
	if l.OnResize != nil {
		l.OnResize(w, h)
	}
}

// Tick advances one frame and renders it. A render error is returned as is;
// the host stops calling Tick after an error.
func (l *Loop) Tick() error {
	elapsed := l.clock.Elapsed()
	dt := elapsed - l.prevElapsed
	l.prevElapsed = elapsed

	l.world.Camera.Position.Y = float32(-l.input.ScrollOffset * l.cfg.ScrollScale)

	l.parallax.Update(elapsed, dt, l.input.Cursor())
	off := l.parallax.Offset()
	l.world.Rig.Position.X = float32(off.X)
	l.world.Rig.Position.Y = float32(off.Y)

	l.tweens.Step(dt)
	l.world.Drift(dt)
	l.world.Apply(&l.cfg.Params)

	return l.render.Render(l.world.Scene)
}

func (l *Loop) logf(format string, args ...any) {
	if l.log == nil {
		return
	}
	l.log.WriteLineString("experience: " + fmt.Sprintf(format, args...))
}
