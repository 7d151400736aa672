package colorer

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestColorArithmetic(t *testing.T) {
	Convey("Hue differences take the shortest arc", t, func() {
		So(HSV(10, 0, 0).Sub(HSV(350, 0, 0)).H, ShouldAlmostEqual, 20.0, 1e-9)
		So(HSV(350, 0, 0).Sub(HSV(10, 0, 0)).H, ShouldAlmostEqual, -20.0, 1e-9)
		So(HSV(90, 0, 0).Sub(HSV(30, 0, 0)).H, ShouldAlmostEqual, 60.0, 1e-9)
	})

	Convey("Hue sums wrap around the circle", t, func() {
		So(HSV(350, 0, 0).Add(Color{H: 20}).H, ShouldAlmostEqual, 10.0, 1e-9)
		So(HSV(10, 0, 0).Add(Color{H: -20}).H, ShouldAlmostEqual, 350.0, 1e-9)
		So(HSV(-90, 0, 0).H, ShouldAlmostEqual, 270.0, 1e-9)
		So(HSV(720, 0, 0).H, ShouldEqual, 0)
	})

	Convey("Lerp hits both ends", t, func() {
		a := HSVA(200, 0.2, 0.4, 1)
		b := HSVA(260, 0.8, 0.6, 0.5)
		So(a.Lerp(b, 0), ShouldResemble, a)
		end := a.Lerp(b, 1)
		So(end.H, ShouldAlmostEqual, b.H, 1e-9)
		So(end.S, ShouldAlmostEqual, b.S, 1e-9)
		So(end.V, ShouldAlmostEqual, b.V, 1e-9)
		So(end.A, ShouldAlmostEqual, b.A, 1e-9)
		mid := a.Lerp(b, 0.5)
		So(mid.H, ShouldAlmostEqual, 230.0, 1e-9)
	})

	Convey("Normalized clamps saturation, value and alpha", t, func() {
		c := Color{H: -30, S: 1.4, V: -0.2, A: 2}.Normalized()
		So(c, ShouldResemble, Color{H: 330, S: 1, V: 0, A: 1})
	})

	Convey("Colors convert to RGB", t, func() {
		So(HSV(0, 1, 1).Hex(), ShouldEqual, "#ff0000")
		So(HSV(120, 1, 1).Hex(), ShouldEqual, "#00ff00")

		r, g, b, a := HSVA(240, 1, 1, 0.5).RGBA()
		So(r, ShouldEqual, 0)
		So(g, ShouldEqual, 0)
		So(b, ShouldEqual, a)
		So(a, ShouldEqual, uint32(0x8000))
	})

	Convey("HSL colors keep their hue", t, func() {
		c := FromHSL(200, 0.5, 0.5)
		So(c.H, ShouldAlmostEqual, 200.0, 1e-6)
		So(c.V, ShouldAlmostEqual, 0.75, 1e-6)
		So(c.S, ShouldAlmostEqual, 2.0/3.0, 1e-6)
		So(c.A, ShouldEqual, 1)
	})
}

func TestGradient(t *testing.T) {
	Convey("Given a gradient", t, func() {
		g := Gradient{Start: HSV(0, 0, 0), End: HSV(100, 1, 1)}

		Convey("Samples are clamped to the stops", func() {
			So(g.At(-1), ShouldResemble, g.At(0))
			So(g.At(2).H, ShouldAlmostEqual, 100.0, 1e-9)
		})

		Convey("The span is the end minus the start", func() {
			span := g.Span()
			So(span.H, ShouldAlmostEqual, 100.0, 1e-9)
			So(span.S, ShouldAlmostEqual, 1.0, 1e-9)
			So(span.V, ShouldAlmostEqual, 1.0, 1e-9)
		})
	})
}
