package softgl

import "image"

// Target is a minimal pixel target for software rendering.
//
// Implementations should clip out-of-bounds coordinates.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c Color)
	Clear(c Color)
}

// RGBATarget renders into an *image.RGBA.
type RGBATarget struct {
	Img *image.RGBA
}

func NewRGBATarget(img *image.RGBA) *RGBATarget { return &RGBATarget{Img: img} }

func (t *RGBATarget) Size() (w, h int) {
	if t == nil || t.Img == nil {
		return 0, 0
	}
	b := t.Img.Bounds()
	return b.Dx(), b.Dy()
}

func (t *RGBATarget) Clear(c Color) {
	if t == nil || t.Img == nil {
		return
	}
	pix := t.Img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i+0] = c.R
		pix[i+1] = c.G
		pix[i+2] = c.B
		pix[i+3] = 0xFF
	}
}

// SetPixel writes c, blending over the existing pixel when c is translucent.
func (t *RGBATarget) SetPixel(x, y int, c Color) {
	if t == nil || t.Img == nil {
		return
	}
	b := t.Img.Bounds()
	if x < 0 || y < 0 || x >= b.Dx() || y >= b.Dy() {
		return
	}
	off := y*t.Img.Stride + x*4
	if off < 0 || off+3 >= len(t.Img.Pix) {
		return
	}
	p := t.Img.Pix[off : off+4 : off+4]
	if c.A == 0xFF {
		p[0], p[1], p[2], p[3] = c.R, c.G, c.B, 0xFF
		return
	}
	a := uint32(c.A)
	blend := func(dst, src uint8) uint8 {
		return uint8((uint32(src)*a + uint32(dst)*(255-a)) / 255)
	}
	p[0] = blend(p[0], c.R)
	p[1] = blend(p[1], c.G)
	p[2] = blend(p[2], c.B)
	p[3] = 0xFF
}

// RenderMode selects the rasterization mode.
type RenderMode uint8

const (
	RenderSolid RenderMode = iota
	RenderWireframe
)
