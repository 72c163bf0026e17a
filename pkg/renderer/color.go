package renderer

import (
	"image/color"
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// vec3ToColor converts an averaged linear color to 8 bit sRGB-ish output.
// Gamma 2 is applied before clamping to [0, 0.999] so 1.0 maps to 255.
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	gamma := core.NewVec3(nonNegative(colorVec.X), nonNegative(colorVec.Y), nonNegative(colorVec.Z)).
		GammaCorrect(2.0).
		Clamp(0, 0.999)

	return color.RGBA{
		R: uint8(256 * gamma.X),
		G: uint8(256 * gamma.Y),
		B: uint8(256 * gamma.Z),
		A: 255,
	}
}

// nonNegative maps NaN from a degenerate path and negative values to 0
func nonNegative(linear float64) float64 {
	if math.IsNaN(linear) || linear < 0 {
		return 0
	}
	return linear
}
