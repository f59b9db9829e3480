package tween

import "github.com/tanema/gween/ease"

// Ease is an easing curve in gween form: f(t, begin, change, duration).
type Ease = ease.TweenFunc

var (
	Linear     Ease = ease.Linear
	InOutQuad  Ease = ease.InOutQuad
	InOutCubic Ease = ease.InOutCubic
	InOutSine  Ease = ease.InOutSine
)

// ByName resolves the ease names accepted in configuration files.
func ByName(name string) (Ease, bool) {
	switch name {
	case "linear", "none":
		return ease.Linear, true
	case "inOutQuad", "power1.inOut":
		return ease.InOutQuad, true
	case "inOutCubic", "power2.inOut", "":
		return ease.InOutCubic, true
	case "inOutQuart", "power3.inOut":
		return ease.InOutQuart, true
	case "inOutSine", "sine.inOut":
		return ease.InOutSine, true
	case "outCubic", "power2.out":
		return ease.OutCubic, true
	case "outBounce", "bounce.out":
		return ease.OutBounce, true
	default:
		return nil, false
	}
}
