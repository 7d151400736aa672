package physics

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/olivierh59500/sketchbook/geom"
	"github.com/olivierh59500/sketchbook/noise"
)

type constNoise float64

func (n constNoise) Noise2D(x, y float64) float64    { return float64(n) }
func (n constNoise) Noise3D(x, y, z float64) float64 { return float64(n) }

func TestForceField(t *testing.T) {
	Convey("When the resolution is not usable", t, func() {
		for _, res := range []float64{0, -5, math.NaN(), math.Inf(1)} {
			_, err := NewForceFieldWithResolution(geom.FromWH(100, 100), res, 0, constNoise(0))
			So(errors.Is(err, ErrInvalidResolution), ShouldBeTrue)
		}
	})

	Convey("Given a field over a rectangle that is not a multiple of the resolution", t, func() {
		rect := geom.FromXYWH(20, -10, 95, 40)
		f := NewForceField(rect, 0, noise.NewPerlin(3))

		Convey("The lattice covers the rectangle rounding up", func() {
			cols, rows := f.Dims()
			So(cols, ShouldEqual, 10)
			So(rows, ShouldEqual, 4)
		})

		Convey("Positions snap to the lattice cell they fall in", func() {
			f.Each(func(origin, force r2.Vec) {
				p := r2.Add(origin, r2.Vec{X: Resolution / 2, Y: Resolution / 2})
				So(f.AccelerationAt(p), ShouldResemble, force)
			})
		})

		Convey("Queries far outside never panic and use the edge cells", func() {
			cols, rows := f.Dims()
			var corner r2.Vec
			n := 0
			f.Each(func(origin, force r2.Vec) {
				if n == cols*rows-1 {
					corner = force
				}
				n++
			})
			So(n, ShouldEqual, cols*rows)

			So(func() {
				f.AccelerationAt(r2.Vec{X: 1e12, Y: 1e12})
				f.AccelerationAt(r2.Vec{X: -1e12, Y: -1e12})
				f.AccelerationAt(r2.Vec{X: math.Inf(1), Y: math.Inf(-1)})
				f.AccelerationAt(r2.Vec{X: math.NaN(), Y: math.NaN()})
			}, ShouldNotPanic)
			So(f.AccelerationAt(r2.Vec{X: 1e12, Y: 1e12}), ShouldResemble, corner)
		})

		Convey("Updating at a later time changes the field", func() {
			before := f.AccelerationAt(rect.Center())
			f.Update(rect, 10)
			So(f.AccelerationAt(rect.Center()), ShouldNotResemble, before)
		})

		Convey("Updating with a new rectangle resizes the lattice", func() {
			f.Update(geom.FromWH(200, 31), 0)
			cols, rows := f.Dims()
			So(cols, ShouldEqual, 20)
			So(rows, ShouldEqual, 4)
			So(f.Rect(), ShouldResemble, geom.FromWH(200, 31))
		})
	})

	Convey("An empty rectangle still answers queries", t, func() {
		f := NewForceField(geom.FromWH(0, 0), 0, constNoise(0))
		cols, rows := f.Dims()
		So(cols, ShouldEqual, 1)
		So(rows, ShouldEqual, 1)
		So(func() { f.AccelerationAt(r2.Vec{X: 3, Y: 4}) }, ShouldNotPanic)
	})

	Convey("Forces point along the noise angle with a scaled magnitude", t, func() {
		// A quarter turn and a magnitude of 0.25 * 2
		f := NewForceField(geom.FromWH(50, 50), 0, constNoise(0.25))
		got := f.AccelerationAt(r2.Vec{})
		So(got.X, ShouldAlmostEqual, 0.0, 1e-9)
		So(got.Y, ShouldAlmostEqual, 0.5, 1e-9)
	})
}

func TestWind(t *testing.T) {
	Convey("Wind blows horizontally", t, func() {
		w := Wind(constNoise(0.5), 1, r2.Vec{X: 3, Y: 4})
		So(w, ShouldResemble, r2.Vec{X: 0.5})

		Convey("A negative direction sample flips it", func() {
			w := Wind(constNoise(-0.5), 1, r2.Vec{})
			So(w.X, ShouldEqual, 0.5)
			So(w.Y, ShouldEqual, 0)
		})

		Convey("Perlin wind stays bounded", func() {
			src := noise.NewPerlin(8)
			for i := 0; i < 50; i++ {
				w := Wind(src, float64(i)*0.1, r2.Vec{X: float64(i) * 1.3, Y: 2})
				So(math.Abs(w.X), ShouldBeLessThanOrEqualTo, 2.0)
				So(w.Y, ShouldEqual, 0)
			}
		})
	})
}
