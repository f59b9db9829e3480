package softgl

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Color is an RGBA color in 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color     { return Color{R: r, G: g, B: b, A: 0xFF} }
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

// Hex builds an opaque color from a 0xRRGGBB literal. Bits above 24 are ignored.
func Hex(v uint32) Color {
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v))
}

// ParseHexColor parses "#rrggbb", "rrggbb" or "0xrrggbb".
func ParseHexColor(s string) (Color, error) {
	t := strings.TrimSpace(s)
	t = strings.TrimPrefix(t, "#")
	t = strings.TrimPrefix(strings.TrimPrefix(t, "0x"), "0X")
	if len(t) != 6 {
		return Color{}, fmt.Errorf("color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(t, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return Hex(uint32(v)), nil
}

// String returns the "#rrggbb" form.
func (c Color) String() string { return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B) }

func (c Color) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Color) UnmarshalText(b []byte) error {
	v, err := ParseHexColor(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func (c Color) MulScalar(s float32) Color {
	t := uint32(Clamp01(s) * 255)
	mul := func(ch uint8) uint8 {
		return uint8((uint32(ch) * t) / 255)
	}
	return Color{R: mul(c.R), G: mul(c.G), B: mul(c.B), A: c.A}
}

func (c Color) WithAlpha(a uint8) Color { c.A = a; return c }

// Vec returns the color as linear-ish 0..1 floats.
func (c Color) Vec() Vec3 {
	return Vec3{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
}

// RotateHue shifts the hue by deg degrees, keeping saturation and value.
func (c Color) RotateHue(deg float64) Color {
	h, s, v := rgbToHSV(c)
	h = math.Mod(h+deg, 360)
	if h < 0 {
		h += 360
	}
	out := hsvToRGB(h, s, v)
	out.A = c.A
	return out
}

// colorFromVec maps unbounded radiance to 8-bit with a Reinhard curve.
func colorFromVec(v Vec3) Color {
	tone := func(x float32) uint8 {
		if x <= 0 || x != x {
			return 0
		}
		return uint8(clampF32(x/(1+x)*255+0.5, 0, 255))
	}
	return Color{R: tone(v.X), G: tone(v.Y), B: tone(v.Z), A: 0xFF}
}

func rgbToHSV(c Color) (h, s, v float64) {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255
	mx := math.Max(r, math.Max(g, b))
	mn := math.Min(r, math.Min(g, b))
	v = mx
	d := mx - mn
	if mx == 0 || d == 0 {
		return 0, 0, v
	}
	s = d / mx
	switch mx {
	case r:
		h = math.Mod((g-b)/d, 6)
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	return h, s, v
}

func hsvToRGB(h, s, v float64) Color {
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	ch := func(f float64) uint8 { return uint8(math.Round((f + m) * 255)) }
	return RGB(ch(r), ch(g), ch(b))
}
