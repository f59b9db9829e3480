// Package hal is the only contact point between the scene and the host:
// window, framebuffer, input devices, clock and log output.
package hal

import (
	"errors"
	"image"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGBA8888 is 32bpp, byte order R, G, B, A.
	PixelFormatRGBA8888 PixelFormat = iota + 1
)

// Framebuffer is a resizable pixel buffer plus a "present" hook.
//
// Image returns the back buffer; Present publishes it to the display. The
// image is replaced by Resize, so callers must not keep it across frames.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	Image() *image.RGBA
	Resize(w, h int)
	Present() error
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input delivers host input events in arrival order.
type Input interface {
	Events() <-chan Event
}

// Clock supplies monotonically increasing elapsed seconds.
type Clock interface {
	Elapsed() float64
}

// HAL bundles the host services.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Clock() Clock
}
