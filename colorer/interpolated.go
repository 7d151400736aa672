package colorer

import "github.com/olivierh59500/sketchbook/geom"

// Interpolated colors each row with its own gradient. Row r starts at the base
// gradient sampled at r/rows and ends one full base span further, so the
// starting color walks down the base gradient row after row. The result is a
// diagonal staircase, not a bilinear blend.
type Interpolated struct {
	base Gradient
}

func NewInterpolated(start, end Color) *Interpolated {
	return &Interpolated{base: Gradient{Start: start, End: end}}
}

func (c *Interpolated) Color(p Params) Color {
	t := geom.MapRange(float64(p.Index.Col), 0, float64(p.Dims.Col), 0, 1)
	return c.rowGradient(p.Index.Row, p.Dims.Row).At(t)
}

// TODO: rows are rebuilt on every query; cache them per row count once the
// grid dimensions are known up front.
func (c *Interpolated) rowGradient(row, rows int) Gradient {
	start := c.base.At(geom.MapRange(float64(row), 0, float64(rows), 0, 1))
	return Gradient{Start: start, End: start.Add(c.base.Span())}
}

func (c *Interpolated) Update() {}
