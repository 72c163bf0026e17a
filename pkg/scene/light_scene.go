package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// NewLightScene creates a dark scene lit only by emissive spheres
func NewLightScene() *Scene {
	cameraConfig := renderer.CameraConfig{
		Center:      core.NewVec3(26, 3, 6),
		LookAt:      core.NewVec3(0, 2, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        20.0,
	}

	// Light paths need many samples to converge without a sky
	s := newScene(cameraConfig, renderer.SamplingConfig{
		SamplesPerPixel: 400,
		MaxDepth:        50,
	})
	s.SetBackground(core.Vec3{})

	checker := material.NewTexturedLambertian(
		material.NewCheckerTexture(core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9), 10))

	s.Add(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, checker),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, material.NewLambertian(core.NewVec3(0.4, 0.4, 0.8))),
		geometry.NewSphere(core.NewVec3(0, 7, 0), 2, material.NewDiffuseLight(core.NewVec3(4, 4, 4))),
		geometry.NewSphere(core.NewVec3(3, 1.5, 3.5), 0.75, material.NewDiffuseLight(core.NewVec3(6, 2, 1))),
	)

	return s
}
