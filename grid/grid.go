// Package grid partitions a rectangle into a lattice of cells.
//
// A Grid is immutable once built and is meant to be constructed once per sketch
// (or per parameter change) and traversed every frame:
//
//	g, err := grid.New(rect, rows, cols)
//	for cell := range g.RowMajor() {
//		...
//	}
package grid

import (
	"iter"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/olivierh59500/sketchbook/geom"
)

var (
	ErrEmptyDimensions = errors.New("grid needs at least one row and one column")
	ErrInvalidCellSize = errors.New("grid cell size must be positive and finite")
)

// CellIndex is the (row, column) position of a cell. Row 0 is the top row.
type CellIndex struct {
	Row, Col int
}

// Cell is one rectangular block of a Grid
type Cell struct {
	Center r2.Vec // Center of the cell, not its corner
	Size   r2.Vec
	Index  CellIndex
}

func (c Cell) Left() float64   { return c.Center.X - c.Size.X/2 }
func (c Cell) Right() float64  { return c.Center.X + c.Size.X/2 }
func (c Cell) Top() float64    { return c.Center.Y + c.Size.Y/2 }
func (c Cell) Bottom() float64 { return c.Center.Y - c.Size.Y/2 }

// Rect returns the cell's extent
func (c Cell) Rect() geom.Rect {
	return geom.FromXYWH(c.Center.X, c.Center.Y, c.Size.X, c.Size.Y)
}

// Grid is a rows x cols lattice anchored at the top left of its rectangle.
// Cells are computed on demand rather than stored.
type Grid struct {
	rect         geom.Rect
	dims         CellIndex // Number of rows and columns
	cellW, cellH float64
}

// New splits rect into rows x cols equally sized cells
func New(rect geom.Rect, rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrEmptyDimensions, "rows=%d cols=%d", rows, cols)
	}
	return &Grid{
		rect:  rect,
		dims:  CellIndex{Row: rows, Col: cols},
		cellW: rect.W / float64(cols),
		cellH: rect.H / float64(rows),
	}, nil
}

// NewWithCellSize covers rect with square cells of the given side. Counts are
// rounded up, and the last row and column are truncated to the rectangle.
func NewWithCellSize(rect geom.Rect, side float64) (*Grid, error) {
	if !(side > 0) || math.IsInf(side, 0) {
		return nil, errors.Wrapf(ErrInvalidCellSize, "side=%v", side)
	}
	rows := int(math.Ceil(rect.H / side))
	cols := int(math.Ceil(rect.W / side))
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrEmptyDimensions, "rect %vx%v with side %v", rect.W, rect.H, side)
	}
	return &Grid{
		rect:  rect,
		dims:  CellIndex{Row: rows, Col: cols},
		cellW: side,
		cellH: side,
	}, nil
}

func (g *Grid) Rect() geom.Rect { return g.rect }

// Dims returns the number of rows and columns
func (g *Grid) Dims() CellIndex { return g.dims }

// Len returns the number of cells
func (g *Grid) Len() int { return g.dims.Row * g.dims.Col }

// DiagonalLength is used by sketches to normalize distance based effects
func (g *Grid) DiagonalLength() float64 {
	return g.rect.Diagonal()
}

// Cell returns the cell at (row, col)
func (g *Grid) Cell(row, col int) (Cell, bool) {
	if row < 0 || col < 0 || row >= g.dims.Row || col >= g.dims.Col {
		return Cell{}, false
	}
	return g.cell(row, col), true
}

// Edges are computed from the lattice lines so neighbours share them exactly
func (g *Grid) cell(row, col int) Cell {
	left := g.rect.Left() + float64(col)*g.cellW
	right := math.Min(g.rect.Left()+float64(col+1)*g.cellW, g.rect.Right())
	top := g.rect.Top() - float64(row)*g.cellH
	bottom := math.Max(g.rect.Top()-float64(row+1)*g.cellH, g.rect.Bottom())
	return Cell{
		Center: r2.Vec{X: (left + right) / 2, Y: (top + bottom) / 2},
		Size:   r2.Vec{X: right - left, Y: top - bottom},
		Index:  CellIndex{Row: row, Col: col},
	}
}

// RowMajor traverses from the top left cell to the bottom right, going cell by
// cell along each row. Every call starts a fresh traversal.
func (g *Grid) RowMajor() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for row := 0; row < g.dims.Row; row++ {
			for col := 0; col < g.dims.Col; col++ {
				if !yield(g.cell(row, col)) {
					return
				}
			}
		}
	}
}
