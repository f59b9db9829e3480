// Package tween runs fire-and-forget property animations.
//
// A tween adds a fixed delta to one or more float32 fields over a duration,
// following an easing curve. Each step applies only the increment since the
// previous step, so tweens targeting the same field superimpose and never
// overwrite writes made by anything else.
package tween

import (
	"math"

	"github.com/tanema/gween"
)

// Prop is one animated field and the total amount to add to it.
type Prop struct {
	Ptr *float32
	By  float32
}

// Options configures a tween.
type Options struct {
	Duration float64 // seconds
	Ease     Ease
}

type tween struct {
	props    []Prop
	progress *gween.Tween // eases 0 -> 1
	applied  float32      // eased progress already written
}

// Engine owns the running tweens. The zero value is ready to use.
type Engine struct {
	active []*tween
}

// Animate starts a tween. There is no handle: the tween runs to completion
// on subsequent Step calls and is then dropped.
func (e *Engine) Animate(opts Options, props ...Prop) {
	live := props[:0:0]
	for _, p := range props {
		if p.Ptr != nil && p.By != 0 {
			live = append(live, p)
		}
	}
	if len(live) == 0 {
		return
	}
	ease := opts.Ease
	if ease == nil {
		ease = InOutCubic
	}
	if opts.Duration <= 0 {
		for _, p := range live {
			*p.Ptr += p.By
		}
		return
	}
	tw := &tween{props: live, progress: gween.New(0, 1, float32(opts.Duration), ease)}
	e.active = append(e.active, tw)
}

// Step advances every running tween by dt seconds. Non-positive or NaN dt
// is ignored.
func (e *Engine) Step(dt float64) {
	if !(dt > 0) || math.IsInf(dt, 0) {
		return
	}
	kept := e.active[:0]
	for _, tw := range e.active {
		if !tw.advance(dt) {
			kept = append(kept, tw)
		}
	}
	for i := len(kept); i < len(e.active); i++ {
		e.active[i] = nil
	}
	e.active = kept
}

// Active reports how many tweens are still running.
func (e *Engine) Active() int { return len(e.active) }

// advance moves the tween forward and reports whether it finished.
func (tw *tween) advance(dt float64) bool {
	eased, done := tw.progress.Update(float32(dt))
	if done {
		eased = 1
	}
	step := eased - tw.applied
	tw.applied = eased
	for _, pr := range tw.props {
		*pr.Ptr += pr.By * step
	}
	return done
}
