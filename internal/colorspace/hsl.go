package colorspace

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a straight-alpha RGBA colour with every channel in [0, 1].
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// HSL holds hue, saturation and lightness, all normalised to [0, 1].
// Hue 0 and hue 1 are both red.
type HSL struct {
	H, S, L float64
}

var (
	Black = Color{0, 0, 0, 1}
	White = Color{1, 1, 1, 1}
)

// RGBA is the straight-alpha constructor.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// ToHSL converts the RGB channels of c. Achromatic colours (r == g == b)
// report hue 0 and saturation 0.
func ToHSL(c Color) HSL {
	if c.R == c.G && c.G == c.B {
		return HSL{H: 0, S: 0, L: c.R}
	}
	h, s, l := colorful.Color{R: c.R, G: c.G, B: c.B}.Hsl()
	h /= 360
	if h >= 1 {
		h -= 1
	}
	return HSL{H: h, S: s, L: l}
}

// FromHSL converts hsl back to RGB and attaches alpha.
func FromHSL(hsl HSL, alpha float64) Color {
	c := colorful.Hsl(hsl.H*360, hsl.S, hsl.L)
	return Color{R: c.R, G: c.G, B: c.B, A: alpha}
}

// SetHSL overwrites the RGB channels of c, leaving alpha untouched.
func (c *Color) SetHSL(hsl HSL) {
	n := FromHSL(hsl, c.A)
	c.R, c.G, c.B = n.R, n.G, n.B
}

// Opaque returns c with alpha forced to 1.
func (c Color) Opaque() Color {
	c.A = 1
	return c
}

// Lerp mixes a and b per channel; t is clamped to [0, 1].
func Lerp(a, b Color, t float64) Color {
	t = clamp01(t)
	return Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}

// NRGBA quantises c to 8 bits per channel.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA64{R: to16(c.R), G: to16(c.G), B: to16(c.B), A: to16(c.A)}.RGBA()
}

func to8(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}

func to16(v float64) uint16 {
	return uint16(clamp01(v)*0xffff + 0.5)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
