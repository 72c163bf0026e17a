package scene

import (
	"math"
	"sort"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

func TestNew_BuiltinScenes(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			s, err := New(name, 42)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if s.Camera == nil {
				t.Error("Scene should have a camera")
			}
			if s.GetPrimitiveCount() == 0 {
				t.Error("Scene should contain objects")
			}
			if s.CameraConfig.Width <= 0 || s.CameraConfig.Height() <= 0 {
				t.Errorf("Invalid image size %dx%d", s.CameraConfig.Width, s.CameraConfig.Height())
			}
			if s.SamplingConfig.SamplesPerPixel <= 0 || s.SamplingConfig.MaxDepth <= 0 {
				t.Errorf("Invalid sampling config %+v", s.SamplingConfig)
			}
			if _, ok := s.World.BoundingBox(0, 1); !ok {
				t.Error("Every built-in scene is bounded")
			}
		})
	}
}

func TestNew_UnknownScene(t *testing.T) {
	for _, name := range []string{"", "nonexistent", "cornell"} {
		s, err := New(name, 42)
		if err == nil {
			t.Errorf("Expected error for scene %q", name)
		}
		if s != nil {
			t.Errorf("Expected nil scene for %q", name)
		}
	}
}

func TestNamesAndList(t *testing.T) {
	names := Names()
	if !sort.StringsAreSorted(names) {
		t.Errorf("Names should be sorted: %v", names)
	}
	list := List()
	if len(list) != len(names) {
		t.Fatalf("Expected %d entries, got %d", len(names), len(list))
	}
	for i, info := range list {
		if info.Name != names[i] || info.Description == "" {
			t.Errorf("Unexpected entry %+v", info)
		}
	}
}

func TestRandomSpheresScene_Seeded(t *testing.T) {
	a := NewRandomSpheresScene(1)
	b := NewRandomSpheresScene(1)
	if a.GetPrimitiveCount() != b.GetPrimitiveCount() {
		t.Fatalf("Same seed should give the same layout: %d vs %d", a.GetPrimitiveCount(), b.GetPrimitiveCount())
	}

	moving := 0
	for _, object := range a.World.Objects {
		if _, ok := object.(*geometry.MovingSphere); ok {
			moving++
		}
	}
	if moving == 0 {
		t.Error("Expected motion-blurred spheres in the random scene")
	}
}

func TestDefaultScene_HollowGlassShell(t *testing.T) {
	s := NewDefaultScene()

	// Straight down through the shell: outer wall, inner wall, then the blue core
	ray := core.NewRay(core.NewVec3(-0.5, 2, -0.5), core.NewVec3(0, -1, 0))

	outer, ok := s.World.Hit(ray, 0.001, math.Inf(1))
	if !ok || !outer.FrontFace {
		t.Fatalf("Expected front face of outer shell, got %+v", outer)
	}
	if _, isGlass := outer.Material.(*material.Dielectric); !isGlass {
		t.Fatalf("Expected glass, got %T", outer.Material)
	}

	inner, ok := s.World.Hit(ray, outer.T+0.001, math.Inf(1))
	if !ok {
		t.Fatal("Expected inner wall hit")
	}
	if inner.FrontFace {
		t.Error("Inner wall of a hollow shell is seen from its back face")
	}
	if math.Abs(inner.T-(2-0.25-0.24)) > 1e-9 {
		t.Errorf("Expected inner wall at t=%f, got %f", 2-0.25-0.24, inner.T)
	}

	center, ok := s.World.Hit(ray, inner.T+0.001, math.Inf(1))
	if !ok {
		t.Fatal("Expected to reach the blue core")
	}
	if _, isDiffuse := center.Material.(*material.Lambertian); !isDiffuse {
		t.Errorf("Expected diffuse core, got %T", center.Material)
	}
}

func TestScenes_RenderTiny(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			s, err := New(name, 7)
			if err != nil {
				t.Fatal(err)
			}
			rt := renderer.NewRaytracer(s, 16, 9, nil)
			rt.SetSamplingConfig(renderer.SamplingConfig{SamplesPerPixel: 1, MaxDepth: 4})
			img, stats := rt.RenderPass()
			if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 9 {
				t.Errorf("Unexpected image size %v", img.Bounds())
			}
			if stats.TotalSamples != 16*9 {
				t.Errorf("Expected %d samples, got %d", 16*9, stats.TotalSamples)
			}
		})
	}
}
