package colorer

import (
	"math/rand"

	"github.com/olivierh59500/sketchbook/geom"
)

// Saturation and lightness used when only a hue range is given
const (
	DefaultSaturation = 0.5
	DefaultLightness  = 0.5
)

// RandomInHueRange picks a hue uniformly in [hueMin, hueMax) with fixed
// saturation and lightness
func RandomInHueRange(rng *rand.Rand, hueMin, hueMax float64) Color {
	hue := geom.MapRange(rng.Float64(), 0, 1, hueMin, hueMax)
	return FromHSL(hue, DefaultSaturation, DefaultLightness)
}

// RandomInRange picks hue and saturation uniformly with fixed lightness
func RandomInRange(rng *rand.Rand, hueMin, hueMax, satMin, satMax float64) Color {
	hue := geom.MapRange(rng.Float64(), 0, 1, hueMin, hueMax)
	sat := geom.MapRange(rng.Float64(), 0, 1, satMin, satMax)
	return FromHSL(hue, sat, DefaultLightness)
}
