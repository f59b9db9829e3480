package panel

import (
	"image/color"

	"scrollscene/internal/softgl"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Width is the panel width in pixels when open.
const Width = 210

var (
	colBackground = color.RGBA{R: 0x1F, G: 0x1F, B: 0x1F, A: 0xD8}
	colTitle      = color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xF0}
	colSelected   = color.RGBA{R: 0x2C, G: 0x3E, B: 0x55, A: 0xF0}
	colText       = color.RGBA{R: 0xEB, G: 0xEB, B: 0xEB, A: 0xFF}
	colMuted      = color.RGBA{R: 0x9A, G: 0x9A, B: 0x9A, A: 0xFF}
	colNumber     = color.RGBA{R: 0x2C, G: 0xC9, B: 0xFF, A: 0xFF}
)

// Canvas adapts a softgl target to the tinyfont display contract.
type Canvas struct {
	T softgl.Target
}

var _ drivers.Displayer = Canvas{}

func (c Canvas) Size() (x, y int16) {
	w, h := c.T.Size()
	return int16(w), int16(h)
}

func (c Canvas) SetPixel(x, y int16, col color.RGBA) {
	c.T.SetPixel(int(x), int(y), softgl.RGBA(col.R, col.G, col.B, col.A))
}

func (c Canvas) Display() error { return nil }

func fillRect(d drivers.Displayer, x, y, w, h int16, c color.RGBA) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			d.SetPixel(xx, yy, c)
		}
	}
}

// Draw renders the panel in the top-right corner of d.
func (p *Panel) Draw(d drivers.Displayer) {
	font := &proggy.TinySZ8pt7b
	lineH := int16(font.GetYAdvance()) + 3
	dw, _ := d.Size()

	if p.closed {
		label := p.Title + " [Tab]"
		_, tw := tinyfont.LineWidth(font, label)
		w := int16(tw) + 12
		x := dw - w - 4
		fillRect(d, x, 0, w, lineH, colTitle)
		tinyfont.WriteLine(d, font, x+6, lineH-4, label, colText)
		return
	}

	x := dw - Width - 4
	if x < 0 {
		x = 0
	}
	rows := p.rows()
	fillRect(d, x, 0, Width, lineH, colTitle)
	tinyfont.WriteLine(d, font, x+6, lineH-4, p.Title, colText)

	y := lineH
	for i, r := range rows {
		bg := colBackground
		if i == p.sel {
			bg = colSelected
		}
		fillRect(d, x, y, Width, lineH, bg)
		base := y + lineH - 4

		if r.folder != nil {
			marker := "v "
			if r.folder.closed {
				marker = "> "
			}
			tinyfont.WriteLine(d, font, x+4, base, marker+r.folder.title, colText)
			y += lineH
			continue
		}

		indent := int16(6)
		if r.nested {
			indent = 14
		}
		tinyfont.WriteLine(d, font, x+indent, base, r.control.Name(), colMuted)
		valX := x + Width*11/20
		if cc, ok := r.control.(*ColorControl); ok {
			s := cc.Swatch()
			fillRect(d, valX, y+2, 10, lineH-4, color.RGBA{R: s.R, G: s.G, B: s.B, A: 0xFF})
			valX += 14
		}
		tinyfont.WriteLine(d, font, valX, base, r.control.Value(), colNumber)
		y += lineH
	}
}
