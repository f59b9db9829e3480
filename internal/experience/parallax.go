package experience

import "math"

// Vec2 is a 2D offset or cursor position.
type Vec2 struct {
	X, Y float64
}

// ParallaxController eases the camera rig toward a cursor-driven target.
//
// It is a first-order low-pass filter scaled by dt, so the convergence rate
// is the same in wall-clock time at any frame rate.
type ParallaxController struct {
	Sensitivity float64
	Smoothing   float64

	offset Vec2
}

// NewParallaxController returns a controller with the given sensitivity and
// smoothing rate (per second).
func NewParallaxController(sensitivity, smoothing float64) *ParallaxController {
	return &ParallaxController{Sensitivity: sensitivity, Smoothing: smoothing}
}

// Offset returns the current smoothed rig offset.
func (p *ParallaxController) Offset() Vec2 { return p.offset }

// Target returns the offset the controller is converging to for a cursor.
// Screen Y grows downward, world Y upward.
func (p *ParallaxController) Target(cursor Vec2) Vec2 {
	return Vec2{X: cursor.X * p.Sensitivity, Y: -cursor.Y * p.Sensitivity}
}

// Update advances the filter by dt seconds and returns the change applied to
// the offset. dt <= 0 (including the first frame) or a non-finite dt leaves
// the offset untouched.
func (p *ParallaxController) Update(_ float64, dt float64, cursor Vec2) Vec2 {
	if !(dt > 0) || math.IsInf(dt, 0) {
		return Vec2{}
	}
	k := p.Smoothing * dt
	if k > 1 {
		k = 1
	}
	if !(k > 0) {
		return Vec2{}
	}
	target := p.Target(cursor)
	delta := Vec2{
		X: (target.X - p.offset.X) * k,
		Y: (target.Y - p.offset.Y) * k,
	}
	p.offset.X += delta.X
	p.offset.Y += delta.Y
	return delta
}
