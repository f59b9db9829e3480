package hal

import (
	"image"
	"sync"
)

type hostFramebuffer struct {
	mu    sync.Mutex
	back  *image.RGBA
	front *image.RGBA
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	f := &hostFramebuffer{}
	f.Resize(width, height)
	return f
}

func (f *hostFramebuffer) Width() int          { return f.back.Bounds().Dx() }
func (f *hostFramebuffer) Height() int         { return f.back.Bounds().Dy() }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatRGBA8888 }
func (f *hostFramebuffer) Image() *image.RGBA  { return f.back }

func (f *hostFramebuffer) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	if f.back != nil && f.back.Bounds().Dx() == w && f.back.Bounds().Dy() == h {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.back = image.NewRGBA(image.Rect(0, 0, w, h))
	f.front = image.NewRGBA(image.Rect(0, 0, w, h))
}

// Present copies the back buffer to the front buffer read by the window.
func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(f.front.Pix, f.back.Pix)
	return nil
}

// snapshot copies the presented frame into dst, reallocating it when the
// size changed.
func (f *hostFramebuffer) snapshot(dst *image.RGBA) *image.RGBA {
	f.mu.Lock()
	defer f.mu.Unlock()
	if dst == nil || dst.Bounds() != f.front.Bounds() {
		dst = image.NewRGBA(f.front.Bounds())
	}
	copy(dst.Pix, f.front.Pix)
	return dst
}
