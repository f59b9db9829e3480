package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Options configures the host HAL.
type Options struct {
	Width  int
	Height int
	Quiet  bool
	// FixedHz makes the clock advance by 1/FixedHz per tick instead of
	// following wall time. Zero selects the wall clock.
	FixedHz int
}

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	in     *hostInput
	clock  *hostClock
}

// New returns a host HAL implementation.
func New(opts Options) HAL {
	return newHost(opts)
}

func newHost(opts Options) *hostHAL {
	if opts.Width <= 0 {
		opts.Width = 800
	}
	if opts.Height <= 0 {
		opts.Height = 600
	}
	var w io.Writer = os.Stdout
	if opts.Quiet {
		w = io.Discard
	}
	clock := newWallClock()
	if opts.FixedHz > 0 {
		clock = newFixedClock(opts.FixedHz)
	}
	return &hostHAL{
		logger: &hostLogger{w: w},
		fb:     newHostFramebuffer(opts.Width, opts.Height),
		in:     newHostInput(),
		clock:  clock,
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return h.in }
func (h *hostHAL) Clock() Clock     { return h.clock }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

// hostInput queues events for the app. Events are dropped when the queue is
// full rather than blocking the host loop.
type hostInput struct {
	ch chan Event

	// Last values reported, so only changes become events.
	cursorX, cursorY int
	cursorSeen       bool
	w, h             int
}

func newHostInput() *hostInput {
	return &hostInput{ch: make(chan Event, 256)}
}

func (in *hostInput) Events() <-chan Event { return in.ch }

func (in *hostInput) emit(ev Event) {
	select {
	case in.ch <- ev:
	default:
	}
}

// resized emits a ResizeEvent when the viewport size changed.
func (in *hostInput) resized(w, h int) {
	if w <= 0 || h <= 0 || (w == in.w && h == in.h) {
		return
	}
	in.w, in.h = w, h
	in.emit(ResizeEvent{W: w, H: h})
}

// cursorMoved emits a PointerEvent when the cursor position changed.
func (in *hostInput) cursorMoved(x, y int) {
	if in.cursorSeen && x == in.cursorX && y == in.cursorY {
		return
	}
	in.cursorSeen = true
	in.cursorX, in.cursorY = x, y
	in.emit(PointerEvent{X: float64(x), Y: float64(y)})
}
