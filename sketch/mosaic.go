package sketch

import (
	"github.com/olivierh59500/sketchbook/colorer"
	"github.com/olivierh59500/sketchbook/grid"
)

// Tile is a grid cell with the color it is painted in this frame
type Tile struct {
	Cell  grid.Cell
	Color colorer.Color
}

// Mosaic paints every cell of a grid with a colorer
type Mosaic struct {
	grid    *grid.Grid
	colorer colorer.Colorer
	tiles   []Tile
}

func NewMosaic(g *grid.Grid, c colorer.Colorer) *Mosaic {
	return &Mosaic{
		grid:    g,
		colorer: c,
		tiles:   make([]Tile, 0, g.Len()),
	}
}

// Tiles colors the grid in row-major order. The returned slice is reused by
// the next call.
func (m *Mosaic) Tiles() []Tile {
	m.tiles = m.tiles[:0]
	for cell := range m.grid.RowMajor() {
		m.tiles = append(m.tiles, Tile{
			Cell:  cell,
			Color: m.colorer.Color(colorer.ParamsFor(m.grid, cell)),
		})
	}
	return m.tiles
}

// Advance moves the colorer on to its next state
func (m *Mosaic) Advance() {
	m.colorer.Update()
}

func (m *Mosaic) Grid() *grid.Grid         { return m.grid }
func (m *Mosaic) Colorer() colorer.Colorer { return m.colorer }
