package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// NewSmokeScene creates participating media: a smoke ball, a fog ball, and
// a subsurface-looking glass sphere filled with blue haze, all lit from above
func NewSmokeScene(seed int64) *Scene {
	cameraConfig := renderer.CameraConfig{
		Center:      core.NewVec3(0, 3, 12),
		LookAt:      core.NewVec3(0, 1.5, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        30.0,
	}

	s := newScene(cameraConfig, renderer.SamplingConfig{
		SamplesPerPixel: 200,
		MaxDepth:        50,
	})
	s.SetBackground(core.NewVec3(0.05, 0.05, 0.08))

	// Media draw free path lengths from their own stream
	sampler := core.NewSeededSampler(seed)

	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	glass := material.NewDielectric(1.5)

	smokeBoundary := geometry.NewSphere(core.NewVec3(-3, 1.5, 0), 1.5, nil)
	fogBoundary := geometry.NewSphere(core.NewVec3(0, 1.5, -1), 1.5, nil)
	hazeCenter := core.NewVec3(3, 1.2, 1)
	glassShell := geometry.NewSphere(hazeCenter, 1.2, glass)
	hazeBoundary := geometry.NewSphere(hazeCenter, 1.2, glass)

	s.Add(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground),
		geometry.NewSphere(core.NewVec3(0, 12, 2), 4, light),
		geometry.NewConstantMedium(smokeBoundary, 1.0, core.NewVec3(0, 0, 0), sampler),
		geometry.NewConstantMedium(fogBoundary, 0.6, core.NewVec3(1, 1, 1), sampler),
		glassShell,
		geometry.NewConstantMedium(hazeBoundary, 0.4, core.NewVec3(0.2, 0.4, 0.9), sampler),
	)

	return s
}
