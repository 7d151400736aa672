package physics

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/olivierh59500/sketchbook/noise"
)

// Offset between the direction and magnitude samples of the wind
const windMagnitudeOffset = 5000.0

// Wind is a horizontal gust at p and time t. One noise sample picks the
// direction, a second one far away picks the strength.
func Wind(src noise.Source, t float64, p r2.Vec) r2.Vec {
	direction := 1.0
	if src.Noise3D(p.X, p.Y, t) < 0 {
		direction = -1.0
	}
	magnitude := src.Noise3D(p.X+windMagnitudeOffset, p.Y+windMagnitudeOffset, t)
	return r2.Vec{X: direction * magnitude}
}
