package renderer

import (
	"image/color"
	"math"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

func TestVec3ToColor(t *testing.T) {
	tests := []struct {
		name     string
		input    core.Vec3
		expected color.RGBA
	}{
		{"black", core.NewVec3(0, 0, 0), color.RGBA{0, 0, 0, 255}},
		{"white", core.NewVec3(1, 1, 1), color.RGBA{255, 255, 255, 255}},
		{"overexposed clamps", core.NewVec3(50, 2, 1.5), color.RGBA{255, 255, 255, 255}},
		{"quarter is gamma corrected to half", core.NewVec3(0.25, 0.25, 0.25), color.RGBA{128, 128, 128, 255}},
		{"negative clamps to black", core.NewVec3(-1, 0, 0), color.RGBA{0, 0, 0, 255}},
		{"NaN is black", core.NewVec3(math.NaN(), 1, 0), color.RGBA{0, 255, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := vec3ToColor(tt.input); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
