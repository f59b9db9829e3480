package panel

import (
	"fmt"
	"math"

	"scrollscene/internal/softgl"
)

// Control is one adjustable row of the panel.
type Control interface {
	Name() string
	Value() string
	// Adjust moves the value by n steps (negative to decrease).
	Adjust(n int)
}

// Slider binds a float32 field. Limits and step are optional and chainable:
//
//	f.Add("intensity", &light.Intensity).Min(0).Max(10).Step(0.01)
type Slider struct {
	name     string
	ptr      *float32
	min, max float32
	hasMin   bool
	hasMax   bool
	step     float32
	onChange func(float32)
}

func (s *Slider) Min(v float32) *Slider  { s.min, s.hasMin = v, true; return s }
func (s *Slider) Max(v float32) *Slider  { s.max, s.hasMax = v, true; return s }
func (s *Slider) Step(v float32) *Slider { s.step = v; return s }

// Label overrides the displayed name.
func (s *Slider) Label(name string) *Slider { s.name = name; return s }

// OnChange registers a callback run after every adjustment.
func (s *Slider) OnChange(fn func(float32)) *Slider { s.onChange = fn; return s }

func (s *Slider) Name() string { return s.name }

func (s *Slider) Value() string { return fmt.Sprintf("%.2f", *s.ptr) }

func (s *Slider) stepSize() float32 {
	if s.step > 0 {
		return s.step
	}
	if s.hasMin && s.hasMax && s.max > s.min {
		return (s.max - s.min) / 100
	}
	return 0.01
}

func (s *Slider) Adjust(n int) {
	if n == 0 {
		return
	}
	step := s.stepSize()
	v := *s.ptr + step*float32(n)
	if s.hasMin {
		// Snap to the step grid anchored at min.
		v = s.min + float32(math.Round(float64((v-s.min)/step)))*step
	}
	if s.hasMin && v < s.min {
		v = s.min
	}
	if s.hasMax && v > s.max {
		v = s.max
	}
	*s.ptr = v
	if s.onChange != nil {
		s.onChange(v)
	}
}

// HueStep is the hue rotation applied per step on the hue channel.
const HueStep = 15

// ChannelStep is the change per step on the R, G and B channels.
const ChannelStep = 8

// Channel is the part of a color a ColorControl currently edits.
type Channel uint8

const (
	ChannelR Channel = iota
	ChannelG
	ChannelB
	ChannelHue
	numChannels
)

func (ch Channel) String() string {
	switch ch {
	case ChannelR:
		return "R"
	case ChannelG:
		return "G"
	case ChannelB:
		return "B"
	default:
		return "H"
	}
}

// ColorControl binds a color. Adjust changes the selected channel; Cycle
// moves to the next channel (R, G, B, hue).
type ColorControl struct {
	name     string
	ptr      *softgl.Color
	channel  Channel
	onChange func(softgl.Color)
}

// OnChange registers a callback run after every adjustment.
func (c *ColorControl) OnChange(fn func(softgl.Color)) *ColorControl {
	c.onChange = fn
	return c
}

func (c *ColorControl) Name() string  { return c.name }
func (c *ColorControl) Value() string { return c.ptr.String() + " " + c.channel.String() }

// Channel returns the channel Adjust edits.
func (c *ColorControl) Channel() Channel { return c.channel }

// Cycle selects the next channel.
func (c *ColorControl) Cycle() { c.channel = (c.channel + 1) % numChannels }

func (c *ColorControl) Adjust(n int) {
	if n == 0 {
		return
	}
	col := *c.ptr
	switch c.channel {
	case ChannelR:
		col.R = stepChannel(col.R, n)
	case ChannelG:
		col.G = stepChannel(col.G, n)
	case ChannelB:
		col.B = stepChannel(col.B, n)
	default:
		col = col.RotateHue(float64(n * HueStep))
	}
	*c.ptr = col
	if c.onChange != nil {
		c.onChange(col)
	}
}

func stepChannel(v uint8, n int) uint8 {
	x := int(v) + n*ChannelStep
	if x < 0 {
		return 0
	}
	if x > 0xFF {
		return 0xFF
	}
	return uint8(x)
}

// Swatch returns the current color.
func (c *ColorControl) Swatch() softgl.Color { return *c.ptr }
