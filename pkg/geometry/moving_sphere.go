package geometry

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// MovingSphere is a sphere whose center travels linearly from Center0 at
// Time0 to Center1 at Time1. Rays sample the position at their own time,
// which produces motion blur.
type MovingSphere struct {
	Center0, Center1 core.Vec3
	Time0, Time1     float64
	Radius           float64
	Material         core.Material
}

// NewMovingSphere creates a new moving sphere
func NewMovingSphere(center0, center1 core.Vec3, time0, time1, radius float64, material core.Material) *MovingSphere {
	return &MovingSphere{
		Center0:  center0,
		Center1:  center1,
		Time0:    time0,
		Time1:    time1,
		Radius:   radius,
		Material: material,
	}
}

// CenterAt returns the sphere center at the given time
func (m *MovingSphere) CenterAt(time float64) core.Vec3 {
	if m.Time1 == m.Time0 {
		return m.Center0
	}
	frac := (time - m.Time0) / (m.Time1 - m.Time0)
	return m.Center0.Add(m.Center1.Subtract(m.Center0).Multiply(frac))
}

// Hit tests the ray against the sphere at the ray's time
func (m *MovingSphere) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	return hitSphere(ray, m.CenterAt(ray.Time), m.Radius, m.Material, tMin, tMax)
}

// BoundingBox encloses the sphere at both ends of the interval
func (m *MovingSphere) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box0 := sphereBox(m.CenterAt(time0), m.Radius)
	box1 := sphereBox(m.CenterAt(time1), m.Radius)
	return box0.Union(box1), true
}
