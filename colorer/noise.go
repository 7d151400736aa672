package colorer

import (
	"math"

	"github.com/pkg/errors"

	"github.com/olivierh59500/sketchbook/noise"
)

const (
	// The saturation and value samples are taken far away from the hue sample
	// so the three channels do not move together.
	saturationNoiseOffset = 1000.0
	valueNoiseOffset      = 10000.0
	// Noise deltas are divided down to keep changes between frames small
	noiseDamping = 100.0
	// Distance travelled along the drift axis per Update
	driftStep = 0.01
)

// Noise perturbs a current color with coherent noise keyed on the cell
// position. Update drifts the current color itself, so the palette wanders
// over time while staying inside the permitted hue range.
type Noise struct {
	base    Color
	current Color
	hueMin  float64
	hueMax  float64
	noise   noise.Source
	tick    int
}

// NewNoise fails if the hue range is inverted or does not contain the base hue
func NewNoise(base Color, hueMin, hueMax float64, src noise.Source) (*Noise, error) {
	if hueMin > hueMax || base.H < hueMin || base.H > hueMax {
		return nil, errors.Wrapf(ErrHueOutOfBounds, "hue %.2f not in [%.2f, %.2f]", base.H, hueMin, hueMax)
	}
	return &Noise{
		base:    base,
		current: base,
		hueMin:  hueMin,
		hueMax:  hueMax,
		noise:   src,
	}, nil
}

func (n *Noise) Color(p Params) Color {
	return n.perturb(n.current, float64(p.Index.Col), float64(p.Index.Row))
}

func (n *Noise) Update() {
	n.tick++
	d := float64(n.tick) * driftStep
	n.current = n.perturb(n.current, d, d)
}

// Current is the color the next queries are perturbed from
func (n *Noise) Current() Color { return n.current }

// Base is the color the colorer started from
func (n *Noise) Base() Color { return n.base }

func (n *Noise) perturb(c Color, x, y float64) Color {
	hue := c.H * math.Pi / 180
	dh := n.noise.Noise3D(x, y, hue) / noiseDamping
	ds := n.noise.Noise3D(x+saturationNoiseOffset, y+saturationNoiseOffset, c.S) / noiseDamping
	dv := n.noise.Noise3D(x+valueNoiseOffset, y+valueNoiseOffset, c.V) / noiseDamping

	return Color{
		H: n.boundHue((hue + dh) * 180 / math.Pi),
		S: clamp01(c.S + ds),
		V: clamp01(c.V + dv),
		A: c.A,
	}
}

// boundHue wraps h into [hueMin, hueMax)
func (n *Noise) boundHue(h float64) float64 {
	span := n.hueMax - n.hueMin
	if span <= 0 {
		return n.hueMin
	}
	if h >= n.hueMin && h <= n.hueMax {
		return h
	}
	off := math.Mod(h-n.hueMin, span)
	if off < 0 {
		off += span
	}
	return n.hueMin + off
}
