package material

import (
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

func TestSolidColor_IgnoresCoordinates(t *testing.T) {
	solid := NewSolidColor(core.NewVec3(0.1, 0.2, 0.3))
	if solid.Evaluate(core.NewVec2(0, 0), core.Vec3{}) != solid.Evaluate(core.NewVec2(1, 1), core.NewVec3(9, 9, 9)) {
		t.Error("Solid color should be uniform")
	}
}

func TestCheckerTexture_Alternates(t *testing.T) {
	white := core.NewVec3(1, 1, 1)
	black := core.NewVec3(0, 0, 0)
	checker := NewCheckerTexture(white, black, 1)

	// sin(1)^3 > 0 and sin(-1)*sin(1)*sin(1) < 0
	if got := checker.Evaluate(core.Vec2{}, core.NewVec3(1, 1, 1)); got != white {
		t.Errorf("Expected even color, got %v", got)
	}
	if got := checker.Evaluate(core.Vec2{}, core.NewVec3(-1, 1, 1)); got != black {
		t.Errorf("Expected odd color, got %v", got)
	}
}
