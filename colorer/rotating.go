package colorer

import "github.com/pkg/errors"

// Rotating answers with the colorer at the front of its queue. Update moves
// the front colorer to the back.
type Rotating struct {
	colorers []Colorer
	front    int
}

func NewRotating(colorers ...Colorer) (*Rotating, error) {
	if len(colorers) == 0 {
		return nil, errors.Wrap(ErrEmptyPalette, "rotating colorer")
	}
	return &Rotating{colorers: append([]Colorer(nil), colorers...)}, nil
}

func (r *Rotating) Color(p Params) Color {
	return r.colorers[r.front].Color(p)
}

func (r *Rotating) Update() {
	r.front = (r.front + 1) % len(r.colorers)
}

// Current returns the colorer answering queries
func (r *Rotating) Current() Colorer {
	return r.colorers[r.front]
}
