// Package noise provides the coherent noise shared by colorers and force fields.
package noise

import (
	"github.com/aquilax/go-perlin"
)

// Perlin parameters: alpha is the weight of each octave, beta the frequency
// step between octaves.
const (
	Alpha   = 2.0
	Beta    = 2.0
	Octaves = 3
)

// Source is a smooth, deterministic noise function. Nearby inputs give nearby
// outputs, roughly within [-1, 1].
type Source interface {
	Noise2D(x, y float64) float64
	Noise3D(x, y, z float64) float64
}

// NewPerlin returns a Perlin generator; the same seed always yields the same field
func NewPerlin(seed int64) *perlin.Perlin {
	return perlin.NewPerlin(Alpha, Beta, Octaves, seed)
}

var _ Source = (*perlin.Perlin)(nil)
