//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var polledKeys = [...]struct {
	key  ebiten.Key
	code KeyCode
}{
	{ebiten.KeyArrowUp, KeyUp},
	{ebiten.KeyArrowDown, KeyDown},
	{ebiten.KeyArrowLeft, KeyLeft},
	{ebiten.KeyArrowRight, KeyRight},
	{ebiten.KeyEnter, KeyEnter},
	{ebiten.KeyEscape, KeyEscape},
	{ebiten.KeyTab, KeyTab},
}

// poll turns the current ebiten input state into events: cursor first, then
// wheel, then keys, so a frame's events keep a stable order.
func (in *hostInput) poll() {
	in.cursorMoved(ebiten.CursorPosition())

	// ebiten reports positive yoff when the wheel moves away from the user,
	// which scrolls a page up.
	if _, yoff := ebiten.Wheel(); yoff != 0 {
		in.emit(WheelEvent{DY: -yoff})
	}

	shift := ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)

	for _, r := range ebiten.AppendInputChars(nil) {
		in.emit(KeyEvent{Press: true, Rune: r, Shift: shift})
	}

	// Page keys act as wheel notches, like a browser page.
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		in.emit(WheelEvent{DY: 5})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		in.emit(WheelEvent{DY: -5})
	}

	for _, k := range polledKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			in.emit(KeyEvent{Code: k.code, Press: true, Shift: shift})
		}
		if inpututil.IsKeyJustReleased(k.key) {
			in.emit(KeyEvent{Code: k.code, Press: false, Shift: shift})
		}
	}
}
