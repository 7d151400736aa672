// Package physics integrates point masses and samples noise driven force fields.
package physics

import (
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/olivierh59500/sketchbook/geom"
)

// Mover defaults
const (
	FrictionConstant = 0.3
	DefaultTopSpeed  = 4.0
	DefaultMinSpeed  = -4.0
	DefaultMinMass   = 1.0
	DefaultMaxMass   = 10.0
	DefaultDamping   = 0.8 // Fraction of speed kept when bouncing
)

var ErrUnknownBoundary = errors.New("unknown boundary policy")

// Boundary decides what happens when a mover leaves its rectangle
type Boundary int

const (
	Wrap   Boundary = iota // Teleport to the opposite edge
	Clamp                  // Stop at the edge
	Bounce                 // Reflect off the edge, losing some speed
)

func (b Boundary) String() string {
	switch b {
	case Wrap:
		return "wrap"
	case Clamp:
		return "clamp"
	case Bounce:
		return "bounce"
	default:
		return "unknown"
	}
}

// ParseBoundary accepts the names returned by String, in any case
func ParseBoundary(s string) (Boundary, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wrap":
		return Wrap, nil
	case "clamp":
		return Clamp, nil
	case "bounce":
		return Bounce, nil
	}
	return Wrap, errors.Wrapf(ErrUnknownBoundary, "%q", s)
}

// MoverConfig holds the parameters shared by a family of movers
type MoverConfig struct {
	TopSpeed, MinSpeed float64 // Per axis velocity limits
	MinMass, MaxMass   float64
	// InherentForce is exerted every tick by the mover itself,
	// for instance the buoyancy of a helium balloon.
	InherentForce r2.Vec
	Boundary      Boundary
	Damping       float64
	ScaleByMass   bool // Divide applied forces by the mass
}

func DefaultMoverConfig() MoverConfig {
	return MoverConfig{
		TopSpeed:    DefaultTopSpeed,
		MinSpeed:    DefaultMinSpeed,
		MinMass:     DefaultMinMass,
		MaxMass:     DefaultMaxMass,
		Boundary:    Bounce,
		Damping:     DefaultDamping,
		ScaleByMass: true,
	}
}

// Mover is a point mass advanced once per tick with semi-implicit Euler steps
type Mover struct {
	position r2.Vec
	velocity r2.Vec
	mass     float64
	force    r2.Vec // Accumulated during the current tick
	cfg      MoverConfig
}

// NewMover places a mover uniformly at random inside rect, at rest, with a
// random mass. A nil rng is seeded from the clock.
func NewMover(rect geom.Rect, cfg MoverConfig, rng *rand.Rand) *Mover {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.MinSpeed > cfg.TopSpeed {
		cfg.MinSpeed, cfg.TopSpeed = cfg.TopSpeed, cfg.MinSpeed
	}
	if cfg.MinMass > cfg.MaxMass {
		cfg.MinMass, cfg.MaxMass = cfg.MaxMass, cfg.MinMass
	}
	if cfg.MinMass <= 0 {
		cfg.MinMass = DefaultMinMass
		cfg.MaxMass = math.Max(cfg.MaxMass, cfg.MinMass)
	}
	return &Mover{
		position: r2.Vec{
			X: geom.MapRange(rng.Float64(), 0, 1, rect.Left(), rect.Right()),
			Y: geom.MapRange(rng.Float64(), 0, 1, rect.Bottom(), rect.Top()),
		},
		mass:  geom.MapRange(rng.Float64(), 0, 1, cfg.MinMass, cfg.MaxMass),
		force: cfg.InherentForce,
		cfg:   cfg,
	}
}

func (m *Mover) Position() r2.Vec { return m.position }
func (m *Mover) Velocity() r2.Vec { return m.velocity }
func (m *Mover) Mass() float64    { return m.mass }

// SetPosition moves the mover without touching its velocity
func (m *Mover) SetPosition(p r2.Vec) { m.position = p }

// ApplyForce must be called before Update in the same tick to take effect
func (m *Mover) ApplyForce(f r2.Vec) {
	if m.cfg.ScaleByMass {
		f = r2.Scale(1/m.mass, f)
	}
	m.force = r2.Add(m.force, f)
}

// ApplyFriction pushes against the current direction of travel
func (m *Mover) ApplyFriction() {
	if r2.Norm(m.velocity) == 0 {
		return
	}
	m.ApplyForce(r2.Scale(-FrictionConstant, r2.Unit(m.velocity)))
}

// Update integrates one tick and resets the force to the inherent force
func (m *Mover) Update(rect geom.Rect) {
	m.velocity = m.clampSpeed(r2.Add(m.velocity, m.force))
	m.position = r2.Add(m.position, m.velocity)
	m.checkEdges(rect)
	// Reflections can leave asymmetric limits
	m.velocity = m.clampSpeed(m.velocity)
	m.force = m.cfg.InherentForce
}

func (m *Mover) clampSpeed(v r2.Vec) r2.Vec {
	return r2.Vec{
		X: geom.Clamp(v.X, m.cfg.MinSpeed, m.cfg.TopSpeed),
		Y: geom.Clamp(v.Y, m.cfg.MinSpeed, m.cfg.TopSpeed),
	}
}

func (m *Mover) checkEdges(rect geom.Rect) {
	m.position.X, m.velocity.X = m.resolve(m.position.X, m.velocity.X, rect.Left(), rect.Right())
	m.position.Y, m.velocity.Y = m.resolve(m.position.Y, m.velocity.Y, rect.Bottom(), rect.Top())
}

// resolve applies the boundary policy along one axis
func (m *Mover) resolve(p, v, lo, hi float64) (float64, float64) {
	if p >= lo && p <= hi {
		return p, v
	}
	switch m.cfg.Boundary {
	case Wrap:
		if p > hi {
			return lo, v
		}
		return hi, v
	case Clamp:
		return geom.Clamp(p, lo, hi), 0
	default:
		return geom.Clamp(p, lo, hi), -v * m.cfg.Damping
	}
}
