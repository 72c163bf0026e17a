package material

import (
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// ColorSource provides spatially-varying colors for materials
type ColorSource interface {
	// Evaluate returns color at given UV coordinates and 3D point
	// UV is used for surface mapped textures, point for solid textures
	Evaluate(uv core.Vec2, point core.Vec3) core.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of UV or position
func (s *SolidColor) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	return s.Color
}

// CheckerTexture is a solid 3D checker that alternates between two color sources
type CheckerTexture struct {
	Even      ColorSource
	Odd       ColorSource
	Frequency float64 // Checks per 2π world units along each axis
}

// NewCheckerTexture creates a checker alternating between two solid colors
func NewCheckerTexture(even, odd core.Vec3, frequency float64) *CheckerTexture {
	return &CheckerTexture{
		Even:      NewSolidColor(even),
		Odd:       NewSolidColor(odd),
		Frequency: frequency,
	}
}

// Evaluate picks the even or odd source by the sign of the product of sines
func (c *CheckerTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	sines := math.Sin(c.Frequency*point.X) * math.Sin(c.Frequency*point.Y) * math.Sin(c.Frequency*point.Z)
	if sines < 0 {
		return c.Odd.Evaluate(uv, point)
	}
	return c.Even.Evaluate(uv, point)
}
