package colorer

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an HSV color with alpha. H is in degrees [0, 360); S, V and A are
// in [0, 1]. Differences between colors are also Colors, so S, V and A may
// leave their range during arithmetic; Normalized brings them back.
type Color struct {
	H, S, V, A float64
}

// HSV returns an opaque color
func HSV(h, s, v float64) Color {
	return Color{H: wrapHue(h), S: s, V: v, A: 1}
}

func HSVA(h, s, v, a float64) Color {
	return Color{H: wrapHue(h), S: s, V: v, A: a}
}

// FromHSL converts a hue/saturation/lightness triple
func FromHSL(h, s, l float64) Color {
	return FromColorful(colorful.Hsl(wrapHue(h), s, l), 1)
}

// FromColorful converts an RGB color from go-colorful
func FromColorful(c colorful.Color, alpha float64) Color {
	h, s, v := c.Hsv()
	return Color{H: wrapHue(h), S: s, V: v, A: alpha}
}

// Add sums component-wise; the hue wraps around the circle
func (c Color) Add(d Color) Color {
	return Color{H: wrapHue(c.H + d.H), S: c.S + d.S, V: c.V + d.V, A: c.A + d.A}
}

// Sub returns the difference c - o. The hue difference is the shortest signed
// arc, in (-180, 180].
func (c Color) Sub(o Color) Color {
	return Color{H: hueDelta(c.H, o.H), S: c.S - o.S, V: c.V - o.V, A: c.A - o.A}
}

// Scale multiplies every component; meant for differences
func (c Color) Scale(f float64) Color {
	return Color{H: c.H * f, S: c.S * f, V: c.V * f, A: c.A * f}
}

// Lerp blends towards o, t = 0 giving c and t = 1 giving o
func (c Color) Lerp(o Color, t float64) Color {
	return c.Add(o.Sub(c).Scale(t))
}

// Normalized wraps the hue and clamps the other channels to [0, 1]
func (c Color) Normalized() Color {
	return Color{H: wrapHue(c.H), S: clamp01(c.S), V: clamp01(c.V), A: clamp01(c.A)}
}

// Colorful converts to an RGB color, dropping alpha
func (c Color) Colorful() colorful.Color {
	n := c.Normalized()
	return colorful.Hsv(n.H, n.S, n.V).Clamped()
}

// RGBA implements image/color.Color with alpha premultiplied
func (c Color) RGBA() (r, g, b, a uint32) {
	rgb := c.Colorful()
	alpha := clamp01(c.A)
	a = uint32(alpha*0xffff + 0.5)
	r = uint32(rgb.R*alpha*0xffff + 0.5)
	g = uint32(rgb.G*alpha*0xffff + 0.5)
	b = uint32(rgb.B*alpha*0xffff + 0.5)
	return r, g, b, a
}

// Hex returns the #rrggbb form
func (c Color) Hex() string {
	return c.Colorful().Hex()
}

func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// Tiny negative remainders round up to a full turn
	if h >= 360 {
		h = 0
	}
	return h
}

func hueDelta(to, from float64) float64 {
	d := wrapHue(to - from)
	if d > 180 {
		d -= 360
	}
	return d
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}

// Gradient is a two stop blend in HSV space
type Gradient struct {
	Start, End Color
}

// At samples the gradient; t is clamped to [0, 1]
func (g Gradient) At(t float64) Color {
	return g.Start.Lerp(g.End, clamp01(t))
}

// Span is the difference between the end and start of the gradient
func (g Gradient) Span() Color {
	return g.At(1).Sub(g.At(0))
}
