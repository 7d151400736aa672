package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Rect is an axis-aligned rectangle described by its center and size.
// The y axis grows upwards, so Top is greater than Bottom.
type Rect struct {
	X, Y float64 // Center
	W, H float64 // Width and height
}

// FromXYWH builds a rectangle centered at (x, y)
func FromXYWH(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// FromWH builds a rectangle centered at the origin
func FromWH(w, h float64) Rect {
	return Rect{W: w, H: h}
}

func (r Rect) Left() float64   { return r.X - r.W/2 }
func (r Rect) Right() float64  { return r.X + r.W/2 }
func (r Rect) Top() float64    { return r.Y + r.H/2 }
func (r Rect) Bottom() float64 { return r.Y - r.H/2 }

func (r Rect) Center() r2.Vec      { return r2.Vec{X: r.X, Y: r.Y} }
func (r Rect) Size() r2.Vec        { return r2.Vec{X: r.W, Y: r.H} }
func (r Rect) TopLeft() r2.Vec     { return r2.Vec{X: r.Left(), Y: r.Top()} }
func (r Rect) BottomLeft() r2.Vec  { return r2.Vec{X: r.Left(), Y: r.Bottom()} }
func (r Rect) BottomRight() r2.Vec { return r2.Vec{X: r.Right(), Y: r.Bottom()} }

// Diagonal returns the distance between opposite corners
func (r Rect) Diagonal() float64 {
	return r2.Norm(r2.Sub(r.TopLeft(), r.BottomRight()))
}

// Contains reports whether p lies inside the rectangle, edges included
func (r Rect) Contains(p r2.Vec) bool {
	return p.X >= r.Left() && p.X <= r.Right() && p.Y >= r.Bottom() && p.Y <= r.Top()
}

// Pad shrinks the rectangle by pad on every side, never below zero size
func (r Rect) Pad(pad float64) Rect {
	return Rect{
		X: r.X,
		Y: r.Y,
		W: math.Max(r.W-2*pad, 0),
		H: math.Max(r.H-2*pad, 0),
	}
}

// MapRange linearly maps v from [inMin, inMax] onto [outMin, outMax].
// Values outside the input range extrapolate. A degenerate input range maps to outMin.
func MapRange(v, inMin, inMax, outMin, outMax float64) float64 {
	if inMax == inMin {
		return outMin
	}
	return outMin + (v-inMin)/(inMax-inMin)*(outMax-outMin)
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
