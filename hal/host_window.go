//go:build cgo

package hal

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
	// Scale is the window-pixel to framebuffer-pixel ratio (1 or 2).
	Scale int
	TPS   int
	Quiet bool
}

// RunWindow starts a desktop window that displays the framebuffer and
// forwards wheel, cursor, resize and keyboard input. It blocks until the
// window closes or the step returns an error.
func RunWindow(newApp func(HAL) func() error, cfg WindowConfig) error {
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	h := newHost(Options{Width: cfg.Width / cfg.Scale, Height: cfg.Height / cfg.Scale, Quiet: cfg.Quiet})
	step := newApp(h)

	g := &hostGame{h: h, step: step, scale: cfg.Scale}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(h.fb.Width()*cfg.Scale, h.fb.Height()*cfg.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h     *hostHAL
	step  func() error
	scale int

	img   *image.RGBA
	fbImg *ebiten.Image

	layoutW, layoutH int
}

func (g *hostGame) Update() error {
	g.h.in.resized(g.layoutW, g.layoutH)
	g.h.in.poll()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	g.img = g.h.fb.snapshot(g.img)
	b := g.img.Bounds()
	if g.fbImg == nil || g.fbImg.Bounds().Dx() != b.Dx() || g.fbImg.Bounds().Dy() != b.Dy() {
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(b.Dx(), b.Dy())
	}
	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := outsideWidth / g.scale
	h := outsideHeight / g.scale
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	g.layoutW, g.layoutH = w, h
	return w, h
}
