package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Hittable is anything a ray can be tested against
type Hittable interface {
	// Hit returns the nearest intersection with t in [tMin, tMax]
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)

	// BoundingBox returns a box enclosing the object over the shutter interval.
	// The bool is false for unbounded objects.
	BoundingBox(time0, time1 float64) (AABB, bool)
}

// Material scatters incoming rays at a hit point
type Material interface {
	// Scatter returns false when the ray is absorbed
	Scatter(rayIn Ray, hit HitRecord, sampler Sampler) (ScatterResult, bool)
}

// Emitter is implemented by materials that emit light
type Emitter interface {
	Emitted(uv Vec2, point Vec3) Vec3
}

// Emitted returns the light emitted by a material, black for non-emitters
func Emitted(material Material, uv Vec2, point Vec3) Vec3 {
	if emitter, ok := material.(Emitter); ok {
		return emitter.Emitted(uv, point)
	}
	return Vec3{}
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray  // The scattered ray
	Attenuation Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Unit surface normal, always facing against the ray
	Material  Material // Material of the hit object, shared with other objects
	T         float64  // Parameter t along the ray
	UV        Vec2     // Texture coordinates
	FrontFace bool     // Whether ray hit the front face
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal must be unit length.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
