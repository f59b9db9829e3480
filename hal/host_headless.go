package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64
	Width   int
	Height  int
	Quiet   bool

	// Autoscroll emits wheel movement at this many notches per second.
	Autoscroll float64
}

// RunHeadless runs the scene without opening a window.
//
// The clock advances exactly 1/Hz per tick, so a run with a tick limit is
// deterministic. newApp receives the HAL and returns the per-tick step.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h := newHost(Options{Width: cfg.Width, Height: cfg.Height, Quiet: cfg.Quiet, FixedHz: cfg.Hz})
	h.in.resized(h.fb.Width(), h.fb.Height())
	step := newApp(h)

	t := time.NewTicker(d)
	defer t.Stop()

	wheelPerTick := cfg.Autoscroll / float64(cfg.Hz)

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if wheelPerTick != 0 {
				h.in.emit(WheelEvent{DY: wheelPerTick})
			}
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			h.clock.step()
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
