package physics

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/olivierh59500/sketchbook/geom"
)

func rawConfig(b Boundary) MoverConfig {
	cfg := DefaultMoverConfig()
	cfg.Boundary = b
	cfg.ScaleByMass = false
	return cfg
}

func TestNewMover(t *testing.T) {
	Convey("New movers start at rest somewhere inside the rectangle", t, func() {
		rect := geom.FromXYWH(50, -20, 300, 200)
		rng := rand.New(rand.NewSource(1))
		for i := 0; i < 100; i++ {
			m := NewMover(rect, DefaultMoverConfig(), rng)
			So(rect.Contains(m.Position()), ShouldBeTrue)
			So(m.Velocity(), ShouldResemble, r2.Vec{})
			So(m.Mass(), ShouldBeGreaterThanOrEqualTo, DefaultMinMass)
			So(m.Mass(), ShouldBeLessThan, DefaultMaxMass)
		}
	})

	Convey("Swapped limits are put back in order", t, func() {
		cfg := DefaultMoverConfig()
		cfg.MinSpeed, cfg.TopSpeed = 2, -2
		m := NewMover(geom.FromWH(100, 100), cfg, rand.New(rand.NewSource(1)))
		m.ApplyForce(r2.Vec{X: 100})
		m.Update(geom.FromWH(1000, 1000))
		So(m.Velocity().X, ShouldBeLessThanOrEqualTo, 2.0)
	})
}

func TestMoverUpdate(t *testing.T) {
	rect := geom.FromWH(1000, 1000)

	Convey("Given a mover at the origin with no inherent force", t, func() {
		m := NewMover(rect, DefaultMoverConfig(), rand.New(rand.NewSource(3)))
		m.SetPosition(r2.Vec{})

		Convey("A single force moves it by exactly its new velocity", func() {
			m.ApplyForce(r2.Vec{X: 1})
			m.Update(rect)

			v := m.Velocity()
			So(v.X, ShouldBeGreaterThan, 0)
			So(v.X, ShouldAlmostEqual, 1/m.Mass(), 1e-12)
			So(v.Y, ShouldEqual, 0)
			So(m.Position(), ShouldResemble, v)
		})

		Convey("Forces only last for one tick", func() {
			m.ApplyForce(r2.Vec{X: 1})
			m.Update(rect)
			v := m.Velocity()
			m.Update(rect)
			So(m.Velocity(), ShouldResemble, v)
		})

		Convey("Friction slows it down but never at rest", func() {
			m.ApplyFriction()
			m.Update(rect)
			So(m.Velocity(), ShouldResemble, r2.Vec{})

			m.ApplyForce(r2.Vec{X: 2 * m.Mass()})
			m.Update(rect)
			before := m.Velocity().X
			m.ApplyFriction()
			m.Update(rect)
			So(m.Velocity().X, ShouldBeLessThan, before)
			So(m.Velocity().X, ShouldAlmostEqual, before-FrictionConstant/m.Mass(), 1e-12)
		})
	})

	Convey("Given a mover with buoyancy", t, func() {
		cfg := DefaultMoverConfig()
		cfg.InherentForce = r2.Vec{Y: 0.3}
		m := NewMover(rect, cfg, rand.New(rand.NewSource(4)))
		m.SetPosition(r2.Vec{})

		Convey("The inherent force is applied once per tick", func() {
			m.Update(rect)
			So(m.Velocity().Y, ShouldAlmostEqual, 0.3, 1e-12)
			m.Update(rect)
			So(m.Velocity().Y, ShouldAlmostEqual, 0.6, 1e-12)
		})
	})

	Convey("Velocity always stays inside the speed limits", t, func() {
		rng := rand.New(rand.NewSource(9))
		for _, b := range []Boundary{Wrap, Clamp, Bounce} {
			m := NewMover(rect, rawConfig(b), rng)
			for i := 0; i < 500; i++ {
				for j := 0; j < 3; j++ {
					m.ApplyForce(r2.Vec{X: rng.NormFloat64() * 10, Y: rng.NormFloat64() * 10})
				}
				m.Update(rect)
				v := m.Velocity()
				So(v.X, ShouldBeBetweenOrEqual, DefaultMinSpeed, DefaultTopSpeed)
				So(v.Y, ShouldBeBetweenOrEqual, DefaultMinSpeed, DefaultTopSpeed)
				So(rect.Contains(m.Position()), ShouldBeTrue)
			}
		}
	})

	Convey("Asymmetric limits survive a bounce", t, func() {
		cfg := rawConfig(Bounce)
		cfg.MinSpeed = 0
		m := NewMover(rect, cfg, rand.New(rand.NewSource(2)))
		m.SetPosition(r2.Vec{X: rect.Right() - 1})
		m.ApplyForce(r2.Vec{X: 3})
		m.Update(rect)
		So(m.Velocity().X, ShouldEqual, 0)
	})
}

func TestBoundaries(t *testing.T) {
	rect := geom.FromWH(100, 100)
	push := func(b Boundary) *Mover {
		m := NewMover(rect, rawConfig(b), rand.New(rand.NewSource(5)))
		m.SetPosition(r2.Vec{X: rect.Right() - 1, Y: 10})
		m.ApplyForce(r2.Vec{X: 3})
		m.Update(rect)
		return m
	}

	Convey("Wrapping movers reappear on the opposite edge", t, func() {
		m := push(Wrap)
		So(m.Position().X, ShouldEqual, rect.Left())
		So(m.Velocity().X, ShouldEqual, 3)
	})

	Convey("Clamped movers stop at the edge", t, func() {
		m := push(Clamp)
		So(m.Position().X, ShouldEqual, rect.Right())
		So(m.Velocity().X, ShouldEqual, 0)
	})

	Convey("Bouncing movers reflect and lose speed", t, func() {
		m := push(Bounce)
		So(m.Position().X, ShouldEqual, rect.Right())
		So(m.Velocity().X, ShouldAlmostEqual, -3*DefaultDamping, 1e-12)
		So(m.Position().Y, ShouldEqual, 10)
	})

	Convey("Boundary names parse back", t, func() {
		for _, b := range []Boundary{Wrap, Clamp, Bounce} {
			got, err := ParseBoundary(b.String())
			So(err, ShouldBeNil)
			So(got, ShouldEqual, b)
		}
		got, err := ParseBoundary(" Bounce ")
		So(err, ShouldBeNil)
		So(got, ShouldEqual, Bounce)

		_, err = ParseBoundary("teleport")
		So(errors.Is(err, ErrUnknownBoundary), ShouldBeTrue)
	})
}
