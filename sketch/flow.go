package sketch

import (
	"math/rand"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/olivierh59500/sketchbook/config"
	"github.com/olivierh59500/sketchbook/geom"
	"github.com/olivierh59500/sketchbook/noise"
	"github.com/olivierh59500/sketchbook/physics"
)

// Flow moves a swarm of movers through gravity, wind and an optional force field
type Flow struct {
	rect     geom.Rect
	movers   []*physics.Mover
	field    *physics.ForceField // nil when disabled
	noise    noise.Source
	gravity  r2.Vec
	friction bool
	wind     bool
	time     float64
}

func NewFlow(rect geom.Rect, mc config.MoversConfig, fc config.FieldConfig, src noise.Source, rng *rand.Rand) (*Flow, error) {
	boundary, err := physics.ParseBoundary(mc.Boundary)
	if err != nil {
		return nil, err
	}
	moverCfg := physics.MoverConfig{
		TopSpeed:      mc.TopSpeed,
		MinSpeed:      mc.MinSpeed,
		MinMass:       mc.MinMass,
		MaxMass:       mc.MaxMass,
		InherentForce: r2.Vec{X: mc.Inherent.X, Y: mc.Inherent.Y},
		Boundary:      boundary,
		Damping:       mc.Damping,
		ScaleByMass:   true,
	}

	f := &Flow{
		rect:     rect,
		movers:   make([]*physics.Mover, mc.Count),
		noise:    src,
		gravity:  r2.Vec{X: mc.Gravity.X, Y: mc.Gravity.Y},
		friction: mc.Friction,
		wind:     mc.Wind,
	}
	for i := range f.movers {
		f.movers[i] = physics.NewMover(rect, moverCfg, rng)
	}
	if fc.Enabled {
		f.field, err = physics.NewForceFieldWithResolution(rect, fc.Resolution, 0, src)
		if err != nil {
			return nil, errors.Wrap(err, "force field")
		}
	}
	return f, nil
}

// Step advances the clock by dt, resamples the field and integrates every mover once
func (f *Flow) Step(dt float64) {
	f.time += dt
	if f.field != nil {
		f.field.Update(f.rect, f.time)
	}
	for _, m := range f.movers {
		m.ApplyForce(f.gravity)
		if f.field != nil {
			// Accelerations do not depend on mass
			m.ApplyForce(r2.Scale(m.Mass(), f.field.AccelerationAt(m.Position())))
		}
		if f.wind {
			m.ApplyForce(physics.Wind(f.noise, f.time, m.Position()))
		}
		if f.friction {
			m.ApplyFriction()
		}
		m.Update(f.rect)
	}
}

func (f *Flow) Movers() []*physics.Mover   { return f.movers }
func (f *Flow) Field() *physics.ForceField { return f.field }
func (f *Flow) Time() float64              { return f.time }
func (f *Flow) Rect() geom.Rect            { return f.rect }
