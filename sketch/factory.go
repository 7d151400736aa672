package sketch

import (
	"math/rand"
	"strings"

	"github.com/pkg/errors"

	"github.com/olivierh59500/sketchbook/colorer"
	"github.com/olivierh59500/sketchbook/config"
	"github.com/olivierh59500/sketchbook/noise"
)

var ErrUnknownColorer = errors.New("unknown colorer kind")

// NewColorer builds the colorer described by cfg, recursing into children
func NewColorer(cfg config.ColorerConfig, src noise.Source, rng *rand.Rand) (colorer.Colorer, error) {
	switch strings.ToLower(cfg.Kind) {
	case "palette":
		p, err := colorer.NewPalette(cfg.Hues, cfg.Saturations, cfg.Values, rng)
		if err != nil {
			return nil, err
		}
		return p, nil
	case "pastel":
		return colorer.NewPastel(rng), nil
	case "alternating":
		colors := make([]colorer.Color, len(cfg.Colors))
		for i, c := range cfg.Colors {
			colors[i] = toColor(c)
		}
		a, err := colorer.NewAlternating(colors...)
		if err != nil {
			return nil, err
		}
		return a, nil
	case "interpolated":
		return colorer.NewInterpolated(toColor(cfg.Start), toColor(cfg.End)), nil
	case "noise":
		n, err := colorer.NewNoise(toColor(cfg.Base), cfg.HueMin, cfg.HueMax, src)
		if err != nil {
			return nil, err
		}
		return n, nil
	case "rotating":
		children, err := newChildren(cfg, src, rng)
		if err != nil {
			return nil, err
		}
		r, err := colorer.NewRotating(children...)
		if err != nil {
			return nil, err
		}
		return r, nil
	case "modulo":
		children, err := newChildren(cfg, src, rng)
		if err != nil {
			return nil, err
		}
		if len(children) != 1 {
			return nil, errors.Errorf("modulo colorer wants exactly one child, got %d", len(children))
		}
		m, err := colorer.NewModulo(children[0], toColor(cfg.Base), cfg.N)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
	return nil, errors.Wrapf(ErrUnknownColorer, "%q", cfg.Kind)
}

func newChildren(cfg config.ColorerConfig, src noise.Source, rng *rand.Rand) ([]colorer.Colorer, error) {
	children := make([]colorer.Colorer, 0, len(cfg.Children))
	for i, child := range cfg.Children {
		c, err := NewColorer(child, src, rng)
		if err != nil {
			return nil, errors.Wrapf(err, "%s child %d", cfg.Kind, i)
		}
		children = append(children, c)
	}
	return children, nil
}

func toColor(c config.HSV) colorer.Color {
	return colorer.HSV(c.H, c.S, c.V)
}
