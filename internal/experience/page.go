package experience

// Page turns wheel movement into an absolute scroll offset, the way a
// browser page of Sections viewport-tall sections would.
type Page struct {
	Sections  int
	WheelStep float64 // pixels per wheel notch

	offset    float64
	viewportH float64
}

// Offset returns the current scroll offset in pixels.
func (p *Page) Offset() float64 { return p.offset }

// MaxOffset is the largest reachable offset: the last section aligned with
// the top of the viewport.
func (p *Page) MaxOffset() float64 {
	if p.Sections <= 1 || p.viewportH <= 0 {
		return 0
	}
	return float64(p.Sections-1) * p.viewportH
}

// Wheel applies dy notches and returns the new offset and whether it moved.
func (p *Page) Wheel(dy float64) (float64, bool) {
	return p.ScrollTo(p.offset + dy*p.WheelStep)
}

// ScrollTo sets the offset, clamped to [0, MaxOffset].
func (p *Page) ScrollTo(offset float64) (float64, bool) {
	next := clamp(offset, 0, p.MaxOffset())
	if next == p.offset {
		return p.offset, false
	}
	p.offset = next
	return p.offset, true
}

// Resize updates the viewport height and re-clamps the offset.
func (p *Page) Resize(h int) (float64, bool) {
	if h <= 0 {
		return p.offset, false
	}
	p.viewportH = float64(h)
	return p.ScrollTo(p.offset)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo || v != v {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
