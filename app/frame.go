package app

import (
	"fmt"

	"scrollscene/hal"
	"scrollscene/internal/panel"
	"scrollscene/internal/softgl"
)

// frameRenderer draws the scene and the panel into the host framebuffer and
// presents it.
type frameRenderer struct {
	fb    hal.Framebuffer
	r     *softgl.Renderer
	panel *panel.Panel
}

func newFrameRenderer(fb hal.Framebuffer, p *panel.Panel) *frameRenderer {
	return &frameRenderer{fb: fb, r: softgl.NewRenderer(), panel: p}
}

func (f *frameRenderer) Render(s *softgl.Scene) error {
	if f.fb == nil {
		return nil
	}
	t := softgl.NewRGBATarget(f.fb.Image())
	f.r.Render(t, s)
	if f.panel != nil {
		f.panel.Draw(panel.Canvas{T: t})
	}
	if err := f.fb.Present(); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	return nil
}

func (f *frameRenderer) resize(w, h int) {
	if f.fb == nil || (f.fb.Width() == w && f.fb.Height() == h) {
		return
	}
	f.fb.Resize(w, h)
}
