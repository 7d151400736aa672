// Package sketch assembles grids, colorers and movers into frames, independently
// of the window they are drawn in.
package sketch

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/olivierh59500/sketchbook/config"
	"github.com/olivierh59500/sketchbook/geom"
	"github.com/olivierh59500/sketchbook/grid"
	"github.com/olivierh59500/sketchbook/noise"
	"github.com/olivierh59500/sketchbook/physics"
)

// Scene is everything a frame needs. World coordinates are centered on the
// window with y pointing up.
type Scene struct {
	cfg    config.Config
	seed   int64
	rect   geom.Rect
	noise  noise.Source
	mosaic *Mosaic
	flow   *Flow
	frame  int
}

func New(cfg config.Config) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	src := noise.NewPerlin(seed)
	rect := geom.FromWH(float64(cfg.Width), float64(cfg.Height))

	g, err := newGrid(rect.Pad(cfg.Grid.Padding), cfg.Grid)
	if err != nil {
		return nil, err
	}
	c, err := NewColorer(cfg.Colorer, src, rng)
	if err != nil {
		return nil, errors.Wrap(err, "colorer")
	}
	flow, err := NewFlow(rect, cfg.Movers, cfg.Field, src, rng)
	if err != nil {
		return nil, errors.Wrap(err, "movers")
	}

	return &Scene{
		cfg:    cfg,
		seed:   seed,
		rect:   rect,
		noise:  src,
		mosaic: NewMosaic(g, c),
		flow:   flow,
	}, nil
}

func newGrid(rect geom.Rect, gc config.GridConfig) (*grid.Grid, error) {
	if gc.CellSize > 0 {
		return grid.NewWithCellSize(rect, gc.CellSize)
	}
	return grid.New(rect, gc.Rows, gc.Cols)
}

// Step advances the movers by dt. The colorer is advanced every
// UpdateEvery frames when that is set.
func (s *Scene) Step(dt float64) {
	s.frame++
	s.flow.Step(dt)
	if n := s.cfg.Colorer.UpdateEvery; n > 0 && s.frame%n == 0 {
		s.mosaic.Advance()
	}
}

// ToScreen converts a world position to pixels, origin at the top left
func (s *Scene) ToScreen(p r2.Vec) r2.Vec {
	return r2.Vec{
		X: p.X - s.rect.Left(),
		Y: s.rect.Top() - p.Y,
	}
}

// FieldHue picks a hue in degrees for the field vector anchored at origin
func (s *Scene) FieldHue(origin r2.Vec) float64 {
	n := s.noise.Noise3D(
		origin.X/physics.AngleSmoother,
		origin.Y/physics.AngleSmoother,
		s.flow.Time()/physics.TimeSmoother,
	)
	return geom.Clamp(geom.MapRange(n, -1, 1, 0, 360), 0, 359.999)
}

func (s *Scene) Config() config.Config { return s.cfg }
func (s *Scene) Seed() int64           { return s.seed }
func (s *Scene) Rect() geom.Rect       { return s.rect }
func (s *Scene) Mosaic() *Mosaic       { return s.mosaic }
func (s *Scene) Flow() *Flow           { return s.flow }
func (s *Scene) Frame() int            { return s.frame }
