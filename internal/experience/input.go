package experience

// InputState is the latest user input. Only Loop.Dispatch writes it.
type InputState struct {
	ScrollOffset float64 // px, >= 0
	CursorX      float64 // [-0.5, 0.5]
	CursorY      float64 // [-0.5, 0.5]
}

// Cursor returns the normalized cursor.
func (s InputState) Cursor() Vec2 { return Vec2{X: s.CursorX, Y: s.CursorY} }

// normalizeCursor maps a pixel position to [-0.5, 0.5] on each axis. A
// degenerate viewport yields the center.
func normalizeCursor(x, y float64, w, h int) (float64, float64) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	nx := clamp(x/float64(w), 0, 1) - 0.5
	ny := clamp(y/float64(h), 0, 1) - 0.5
	return nx, ny
}
