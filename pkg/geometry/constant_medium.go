package geometry

import (
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// ConstantMedium is a volume of uniform density bounded by a convex shape,
// such as smoke or fog inside a sphere.
type ConstantMedium struct {
	Boundary      core.Hittable
	PhaseFunction core.Material
	Density       float64
	negInvDensity float64
	sampler       core.Sampler
}

// NewConstantMedium creates a medium filling boundary with the given density.
// A density of zero or less makes an empty medium that is never hit. The sampler draws free path lengths and must not be shared across goroutines.
func NewConstantMedium(boundary core.Hittable, density float64, albedo core.Vec3, sampler core.Sampler) *ConstantMedium {
	return NewTexturedConstantMedium(boundary, density, material.NewSolidColor(albedo), sampler)
}

// NewTexturedConstantMedium creates a medium whose isotropic albedo comes from a texture
func NewTexturedConstantMedium(boundary core.Hittable, density float64, albedo material.ColorSource, sampler core.Sampler) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		PhaseFunction: material.NewTexturedIsotropic(albedo),
		Density:       density,
		negInvDensity: -1 / density,
		sampler:       sampler,
	}
}

// Hit finds where the ray enters and leaves the boundary, then scatters at
// an exponentially distributed distance inside it, if that is before the exit.
func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	// Also rejects NaN
	if !(m.Density > 0) {
		return nil, false
	}
	if box, ok := m.Boundary.BoundingBox(ray.Time, ray.Time); ok && !box.Hit(ray, math.Inf(-1), math.Inf(1)) {
		return nil, false
	}

	enter, ok := m.Boundary.Hit(ray, math.Inf(-1), math.Inf(1))
	if !ok {
		return nil, false
	}
	exit, ok := m.Boundary.Hit(ray, enter.T+0.0001, math.Inf(1))
	if !ok {
		return nil, false
	}

	t0 := math.Max(enter.T, tMin)
	t1 := math.Min(exit.T, tMax)
	if t0 >= t1 {
		return nil, false
	}
	t0 = math.Max(t0, 0)

	rayLength := ray.Direction.Length()
	distanceInside := (t1 - t0) * rayLength
	hitDistance := m.negInvDensity * math.Log(1-m.sampler.Get1D())
	if hitDistance > distanceInside {
		return nil, false
	}

	t := t0 + hitDistance/rayLength
	return &core.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0), // arbitrary
		FrontFace: true,                  // arbitrary
		Material:  m.PhaseFunction,
	}, true
}

// BoundingBox is the boundary's box
func (m *ConstantMedium) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return m.Boundary.BoundingBox(time0, time1)
}
