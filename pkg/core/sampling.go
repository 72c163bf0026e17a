package core

import (
	"math"
	"math/rand"
)

// Sampler is the source of uniform [0, 1) numbers for everything stochastic:
// pixel jitter, lens and shutter samples, scatter directions, free paths.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler draws from a math/rand generator. Not safe for concurrent use.
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler wraps an existing generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler returns a sampler with its own generator seeded with seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

func (r *RandomSampler) Get2D() Vec2 {
	x := r.Get1D()
	return NewVec2(x, r.Get1D())
}

func (r *RandomSampler) Get3D() Vec3 {
	x := r.Get1D()
	y := r.Get1D()
	return NewVec3(x, y, r.Get1D())
}

// unitCircle returns the point at angle phi on the unit circle
func unitCircle(phi float64) (x, y float64) {
	return math.Cos(phi), math.Sin(phi)
}

// SampleOnUnitSphere maps a square sample to a uniform direction: z uniform
// on [-1, 1], azimuth uniform on [0, 2π).
func SampleOnUnitSphere(sample Vec2) Vec3 {
	z := 1 - 2*sample.X
	ring := math.Sqrt(math.Max(0, 1-z*z))
	x, y := unitCircle(2 * math.Pi * sample.Y)
	return NewVec3(ring*x, ring*y, z)
}

// SamplePointInUnitDisk maps a square sample onto the unit disk (z = 0) with
// the concentric mapping, so neighbouring samples stay neighbours.
func SamplePointInUnitDisk(sample Vec2) Vec3 {
	a, b := 2*sample.X-1, 2*sample.Y-1
	if a == 0 && b == 0 {
		return Vec3{}
	}

	radius, phi := b, math.Pi/2-math.Pi/4*(a/b)
	if math.Abs(a) > math.Abs(b) {
		radius, phi = a, math.Pi/4*(b/a)
	}

	x, y := unitCircle(phi)
	return NewVec3(radius*x, radius*y, 0)
}

// SamplePointInUnitSphere returns a point uniformly distributed in the unit
// ball. The radius is the cube root of sample.X since volume grows as r³.
func SamplePointInUnitSphere(sample Vec3) Vec3 {
	return SampleOnUnitSphere(NewVec2(sample.Y, sample.Z)).Multiply(math.Cbrt(sample.X))
}

func RandomUnitVector(sampler Sampler) Vec3 {
	return SampleOnUnitSphere(sampler.Get2D())
}

func RandomInUnitSphere(sampler Sampler) Vec3 {
	return SamplePointInUnitSphere(sampler.Get3D())
}

// RandomInUnitDisk returns a point in the unit disk on the XY plane
func RandomInUnitDisk(sampler Sampler) Vec3 {
	return SamplePointInUnitDisk(sampler.Get2D())
}
