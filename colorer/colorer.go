// Package colorer holds the strategies that pick a color for each cell of a grid.
//
// Every strategy implements Colorer. Color is a query and never needs to mutate
// anything; Update advances whatever state a strategy keeps (rotation, iteration
// count, noise drift) and is a no-op for the stateless ones. Strategies compose:
// Rotating and Modulo wrap other colorers.
package colorer

import (
	"github.com/pkg/errors"

	"github.com/olivierh59500/sketchbook/geom"
	"github.com/olivierh59500/sketchbook/grid"
)

var (
	ErrEmptyPalette   = errors.New("colorer needs at least one color")
	ErrHueOutOfBounds = errors.New("base hue outside of the permitted hue range")
	ErrInvalidModulo  = errors.New("modulo must be positive")
)

// Params describes the cell being colored
type Params struct {
	Index    grid.CellIndex // Position of the cell
	Dims     grid.CellIndex // Total rows and columns
	CellRect geom.Rect
	GridRect geom.Rect
}

// ParamsFor builds the query for a cell of g
func ParamsFor(g *grid.Grid, c grid.Cell) Params {
	return Params{
		Index:    c.Index,
		Dims:     g.Dims(),
		CellRect: c.Rect(),
		GridRect: g.Rect(),
	}
}

// Colorer maps a cell to a color
type Colorer interface {
	Color(p Params) Color
	Update()
}
