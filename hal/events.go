package hal

// Event is one host input event.
type Event interface {
	event()
}

// WheelEvent is a vertical wheel movement in notches. Positive DY scrolls
// the page down (towards later sections).
type WheelEvent struct {
	DY float64
}

// ScrollEvent carries the absolute page scroll offset in pixels.
type ScrollEvent struct {
	Offset float64
}

// PointerEvent is a cursor move in viewport pixels.
type PointerEvent struct {
	X, Y float64
}

// ResizeEvent reports the new viewport size in pixels.
type ResizeEvent struct {
	W, H int
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyTab
)

// KeyEvent is a keyboard event. Text input arrives with Code == KeyUnknown
// and Rune set.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Shift bool
	Rune  rune
}

func (WheelEvent) event()   {}
func (ScrollEvent) event()  {}
func (PointerEvent) event() {}
func (ResizeEvent) event()  {}
func (KeyEvent) event()     {}
