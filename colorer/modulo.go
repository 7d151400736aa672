package colorer

import "github.com/pkg/errors"

// Modulo delegates to its child on every nth iteration and returns the base
// color otherwise. Iterations are counted by Update, starting at zero.
type Modulo struct {
	base      Color
	colorer   Colorer
	iteration int
	n         int
}

func NewModulo(child Colorer, base Color, n int) (*Modulo, error) {
	if n <= 0 {
		return nil, errors.Wrapf(ErrInvalidModulo, "n=%d", n)
	}
	return &Modulo{base: base, colorer: child, n: n}, nil
}

func (m *Modulo) Color(p Params) Color {
	if m.iteration%m.n == 0 {
		return m.colorer.Color(p)
	}
	return m.base
}

func (m *Modulo) Update() {
	m.iteration++
}
