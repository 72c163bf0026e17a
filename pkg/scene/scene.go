package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera         *renderer.Camera
	CameraConfig   renderer.CameraConfig
	World          *geometry.HittableList // Objects in the scene
	TopColor       core.Vec3              // Sky color straight up
	BottomColor    core.Vec3              // Sky color straight down
	SamplingConfig renderer.SamplingConfig
}

// newScene creates an empty scene with a camera built from config
func newScene(cameraConfig renderer.CameraConfig, sampling renderer.SamplingConfig) *Scene {
	return &Scene{
		Camera:         renderer.NewCamera(cameraConfig),
		CameraConfig:   cameraConfig,
		World:          geometry.NewHittableList(),
		TopColor:       core.NewVec3(0.5, 0.7, 1.0), // Blue sky
		BottomColor:    core.NewVec3(1.0, 1.0, 1.0), // White horizon
		SamplingConfig: sampling,
	}
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetWorld returns everything a ray can hit
func (s *Scene) GetWorld() core.Hittable {
	return s.World
}

// GetBackgroundColors returns the sky gradient seen by escaping rays
func (s *Scene) GetBackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.TopColor, s.BottomColor
}

// SetBackground replaces the sky with a single color
func (s *Scene) SetBackground(color core.Vec3) {
	s.TopColor = color
	s.BottomColor = color
}

// Add appends objects to the world
func (s *Scene) Add(objects ...core.Hittable) {
	s.World.Add(objects...)
}

// GetPrimitiveCount returns the number of top-level objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return s.World.Len()
}
