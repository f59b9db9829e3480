package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"scrollscene/hal"
	"scrollscene/internal/panel"
	"scrollscene/internal/softgl"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// recoverPanic turns a panic in a step into an error. The panic and its
// stack are logged line by line and painted over the last frame.
func (a *App) recoverPanic(err *error) {
	v := recover()
	if v == nil {
		return
	}
	stack := debug.Stack()
	*err = fmt.Errorf("panic: %v", v)

	lines := []string{"scrollscene panic:", fmt.Sprintf("panic: %v", v)}
	if len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line != "" {
				lines = append(lines, line)
			}
		}
	} else {
		lines = append(lines, "stack: unavailable")
	}

	if a.log != nil {
		for _, line := range lines {
			a.log.WriteLineString(line)
		}
	}

	var fb hal.Framebuffer
	if d := a.h.Display(); d != nil {
		fb = d.Framebuffer()
	}
	if fb == nil {
		return
	}
	drawPanicScreen(fb, lines)
	_ = fb.Present()
}

func drawPanicScreen(fb hal.Framebuffer, lines []string) {
	t := softgl.NewRGBATarget(fb.Image())
	t.Clear(softgl.RGB(255, 255, 255))
	d := panel.Canvas{T: t}

	font := &proggy.TinySZ8pt7b
	const fontHeight, fontOffset = int16(10), int16(8)
	_, outboxWidth := tinyfont.LineWidth(font, "0")
	fontWidth := int16(outboxWidth)
	if fontWidth <= 0 {
		return
	}

	fg := color.RGBA{A: 255}
	maxW, maxH := fb.Width(), fb.Height()
	cols := int16(maxW) / fontWidth
	if cols <= 0 {
		cols = 1
	}

	y := int16(0)
	for _, line := range lines {
		for len(line) > 0 {
			if int(y+fontHeight) > maxH {
				return
			}
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(d, font, 0, y+fontOffset, chunk, fg)
			y += fontHeight
			line = strings.TrimLeft(rest, " \t")
		}
	}
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
