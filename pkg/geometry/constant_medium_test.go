package geometry

import (
	"testing"

	"github.com/mwagner-dev/pathtrace/pkg/core"
)

func TestConstantMediumMissesOutsideBoundary(t *testing.T) {
	boundary := NewAABoxUniform(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), nil)
	medium := NewConstantMedium(boundary, 1.0, core.NewVec3(1, 1, 1))

	rayCtx := core.NewRayCtx(core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, 1, 0)), 1)
	if _, ok := medium.Hit(rayCtx, 0.001, 100.0); ok {
		t.Error("expected a miss for a ray that never enters the boundary")
	}
}

func TestConstantMediumDenseMediumAlwaysScatters(t *testing.T) {
	boundary := NewAABoxUniform(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), nil)
	medium := NewConstantMedium(boundary, 1000.0, core.NewVec3(1, 1, 1))

	rayCtx := core.NewRayCtx(core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)), 1)
	hits := 0
	for i := 0; i < 50; i++ {
		if _, ok := medium.Hit(rayCtx, 0.001, 100.0); ok {
			hits++
		}
	}
	if hits != 50 {
		t.Errorf("expected a dense medium to scatter on every one of 50 attempts, got %d", hits)
	}
}

func TestConstantMediumSparseMediumRarelyScatters(t *testing.T) {
	boundary := NewAABoxUniform(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), nil)
	medium := NewConstantMedium(boundary, 0.0001, core.NewVec3(1, 1, 1))

	rayCtx := core.NewRayCtx(core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)), 1)
	hits := 0
	for i := 0; i < 50; i++ {
		if hit, ok := medium.Hit(rayCtx, 0.001, 100.0); ok {
			hits++
			if hit.Material == nil {
				t.Error("expected the medium hit to carry the isotropic phase material")
			}
		}
	}
	if hits == 50 {
		t.Error("expected a sparse medium to sometimes let rays pass through")
	}
}

func TestConstantMediumBoundingBoxMatchesBoundary(t *testing.T) {
	boundary := NewAABoxUniform(core.NewVec3(-2, -3, -4), core.NewVec3(2, 3, 4), nil)
	medium := NewConstantMedium(boundary, 1.0, core.NewVec3(1, 1, 1))

	box := medium.BoundingBox(core.Timespan{})
	if box.Min != boundary.Min || box.Max != boundary.Max {
		t.Errorf("expected the medium's bounding box to match its boundary, got %v..%v", box.Min, box.Max)
	}
}
