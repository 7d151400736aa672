package colorer

import "github.com/pkg/errors"

// Alternating walks its colors along the diagonals of the grid
type Alternating struct {
	colors []Color
}

func NewAlternating(colors ...Color) (*Alternating, error) {
	if len(colors) == 0 {
		return nil, errors.Wrap(ErrEmptyPalette, "alternating colorer")
	}
	return &Alternating{colors: append([]Color(nil), colors...)}, nil
}

func (a *Alternating) Color(p Params) Color {
	n := len(a.colors)
	return a.colors[((p.Index.Row+p.Index.Col)%n+n)%n]
}

func (a *Alternating) Update() {}
