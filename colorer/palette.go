package colorer

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
)

// Palette picks hue, saturation and value independently and uniformly at
// random from its candidate lists on every call.
type Palette struct {
	hues        []float64
	saturations []float64
	values      []float64
	rng         *rand.Rand
}

// NewPalette fails if any candidate list is empty. A nil rng is seeded from
// the clock.
func NewPalette(hues, saturations, values []float64, rng *rand.Rand) (*Palette, error) {
	if len(hues) == 0 || len(saturations) == 0 || len(values) == 0 {
		return nil, errors.Wrapf(ErrEmptyPalette, "hues=%d saturations=%d values=%d",
			len(hues), len(saturations), len(values))
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Palette{
		hues:        append([]float64(nil), hues...),
		saturations: append([]float64(nil), saturations...),
		values:      append([]float64(nil), values...),
		rng:         rng,
	}, nil
}

// NewPastel is a Palette over every whole hue degree with soft saturation
func NewPastel(rng *rand.Rand) *Palette {
	hues := make([]float64, 360)
	for i := range hues {
		hues[i] = float64(i)
	}
	p, _ := NewPalette(hues, []float64{0.6}, []float64{1.0}, rng)
	return p
}

func (p *Palette) Color(Params) Color {
	return Color{
		H: p.hues[p.rng.Intn(len(p.hues))],
		S: p.saturations[p.rng.Intn(len(p.saturations))],
		V: p.values[p.rng.Intn(len(p.values))],
		A: 1,
	}
}

func (p *Palette) Update() {}
