package physics

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/olivierh59500/sketchbook/geom"
	"github.com/olivierh59500/sketchbook/noise"
)

// Force field constants
const (
	Resolution = 10.0 // Side of a lattice cell
	// The smoothers scale noise inputs down so neighbouring lattice cells and
	// successive ticks sample close together.
	AngleSmoother     = 500.0
	MagnitudeSmoother = 100.0
	TimeSmoother      = 3.0
	// Offset between the angle and magnitude samples so they vary independently
	AngleMagnitudeOffset = 40000.0
	MagnitudeScale       = 2.0
)

var ErrInvalidResolution = errors.New("force field resolution must be positive and finite")

// ForceField is a lattice of accelerations resampled from time varying noise.
// Build it once and call Update every tick.
type ForceField struct {
	rect       geom.Rect
	resolution float64
	forces     [][]r2.Vec // [row][col], row 0 at the bottom
	noise      noise.Source
}

// NewForceField samples a field with the default resolution at time t
func NewForceField(rect geom.Rect, t float64, src noise.Source) *ForceField {
	f, _ := NewForceFieldWithResolution(rect, Resolution, t, src)
	return f
}

func NewForceFieldWithResolution(rect geom.Rect, resolution, t float64, src noise.Source) (*ForceField, error) {
	if !(resolution > 0) || math.IsInf(resolution, 0) {
		return nil, errors.Wrapf(ErrInvalidResolution, "resolution=%v", resolution)
	}
	f := &ForceField{resolution: resolution, noise: src}
	f.Update(rect, t)
	return f, nil
}

// Update resamples the whole lattice at time t. The lattice is resized when
// the rectangle changed size.
func (f *ForceField) Update(rect geom.Rect, t float64) {
	cols, rows := f.latticeDims(rect)
	if len(f.forces) != rows || len(f.forces[0]) != cols {
		f.forces = make([][]r2.Vec, rows)
		for i := range f.forces {
			f.forces[i] = make([]r2.Vec, cols)
		}
	}
	f.rect = rect

	origin := rect.BottomLeft()
	for i := range f.forces {
		for j := range f.forces[i] {
			f.forces[i][j] = f.sample(t,
				origin.X+float64(j)*f.resolution,
				origin.Y+float64(i)*f.resolution,
			)
		}
	}
}

// Dims returns the number of lattice columns and rows
func (f *ForceField) Dims() (cols, rows int) {
	return len(f.forces[0]), len(f.forces)
}

func (f *ForceField) Rect() geom.Rect { return f.rect }

// AccelerationAt snaps p to its lattice cell. Positions outside the rectangle
// use the nearest edge cell.
func (f *ForceField) AccelerationAt(p r2.Vec) r2.Vec {
	cols, rows := f.Dims()
	col := latticeIndex(p.X, f.rect.Left(), f.resolution, cols)
	row := latticeIndex(p.Y, f.rect.Bottom(), f.resolution, rows)
	return f.forces[row][col]
}

// Each visits every lattice vector with the position it is anchored at
func (f *ForceField) Each(fn func(origin, force r2.Vec)) {
	origin := f.rect.BottomLeft()
	for i := range f.forces {
		for j, force := range f.forces[i] {
			fn(r2.Vec{
				X: origin.X + float64(j)*f.resolution,
				Y: origin.Y + float64(i)*f.resolution,
			}, force)
		}
	}
}

// The lattice always holds at least one cell so queries have an answer
func (f *ForceField) latticeDims(rect geom.Rect) (cols, rows int) {
	cols = int(math.Max(math.Ceil(rect.W/f.resolution), 1))
	rows = int(math.Max(math.Ceil(rect.H/f.resolution), 1))
	return cols, rows
}

func (f *ForceField) sample(t, x, y float64) r2.Vec {
	angle := f.noise.Noise3D(x/AngleSmoother, y/AngleSmoother, t/TimeSmoother) * 2 * math.Pi
	magnitude := f.noise.Noise3D(
		x/MagnitudeSmoother+AngleMagnitudeOffset,
		y/MagnitudeSmoother+AngleMagnitudeOffset,
		t/TimeSmoother,
	)
	return r2.Scale(magnitude*MagnitudeScale, r2.Vec{X: math.Cos(angle), Y: math.Sin(angle)})
}

// latticeIndex maps v onto one of n cells of the given size starting at lo
func latticeIndex(v, lo, size float64, n int) int {
	if math.IsNaN(v) {
		return 0
	}
	hi := lo + float64(n)*size
	i := geom.Clamp(geom.MapRange(v, lo, hi, 0, float64(n)), 0, float64(n-1))
	return int(i)
}
