package renderer

import (
	"image"
	"math"
	"time"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetWorld() core.Hittable
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
}

// Raytracer renders a scene one pixel at a time on the calling goroutine
type Raytracer struct {
	scene   Scene
	width   int
	height  int
	config  SamplingConfig
	sampler core.Sampler
	logger  core.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, width, height int, logger core.Logger) *Raytracer {
	return &Raytracer{
		scene:   scene,
		width:   width,
		height:  height,
		config:  DefaultSamplingConfig(),
		sampler: core.NewSeededSampler(42), // Deterministic for testing
		logger:  logger,
	}
}

// SetSamplingConfig updates the sampling configuration
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) {
	rt.config = config
}

// SetSampler replaces the random source used for pixel jitter and scattering
func (rt *Raytracer) SetSampler(sampler core.Sampler) {
	rt.sampler = sampler
}

// backgroundGradient returns a gradient color based on ray direction
func (rt *Raytracer) backgroundGradient(r core.Ray) core.Vec3 {
	topColor, bottomColor := rt.scene.GetBackgroundColors()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	unitDirection := r.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)

	return bottomColor.Multiply(1.0 - t).Add(topColor.Multiply(t))
}

// rayColor returns the radiance arriving along r. depth is the number of
// bounces still allowed; it is the only thing that stops the recursion.
func (rt *Raytracer) rayColor(r core.Ray, depth int) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	// 0.001 skips self-intersection at the previous hit point
	hit, isHit := rt.scene.GetWorld().Hit(r, 0.001, math.Inf(1))
	if !isHit {
		return rt.backgroundGradient(r)
	}

	emitted := core.Emitted(hit.Material, hit.UV, hit.Point)

	scatter, didScatter := hit.Material.Scatter(r, *hit, rt.sampler)
	if !didScatter {
		return emitted
	}

	return emitted.Add(scatter.Attenuation.MultiplyVec(rt.rayColor(scatter.Scattered, depth-1)))
}

// RenderPass renders the whole image with multi-sampling
func (rt *Raytracer) RenderPass() (*image.RGBA, RenderStats) {
	start := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, rt.width, rt.height))
	camera := rt.scene.GetCamera()
	spp := max(rt.config.SamplesPerPixel, 1)

	reportEvery := max(rt.height/10, 1)
	for j := rt.height - 1; j >= 0; j-- {
		if rt.logger != nil && (rt.height-1-j)%reportEvery == 0 {
			rt.logger.Printf("Scanlines remaining: %d\n", j+1)
		}

		for i := 0; i < rt.width; i++ {
			colorAccum := core.Vec3{}
			for sample := 0; sample < spp; sample++ {
				jitter := rt.sampler.Get2D()
				s := (float64(i) + jitter.X) / float64(rt.width)
				t := (float64(j) + jitter.Y) / float64(rt.height)

				ray := camera.GetRay(s, t, rt.sampler)
				colorAccum = colorAccum.Add(rt.rayColor(ray, rt.config.MaxDepth))
			}

			colorVec := colorAccum.Multiply(1.0 / float64(spp))
			img.SetRGBA(i, rt.height-1-j, vec3ToColor(colorVec))
		}
	}

	return img, RenderStats{
		TotalPixels:     rt.width * rt.height,
		TotalSamples:    rt.width * rt.height * spp,
		SamplesPerPixel: spp,
		Duration:        time.Since(start),
	}
}
