package camera

import (
	"math"
	"math/rand"
	"testing"

	"github.com/mwagner-dev/pathtrace/pkg/core"
)

func TestViewRayCenterPointsAtTarget(t *testing.T) {
	view := NewView(
		core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0),
		45.0, 1.0, 1.0, 0.0,
		core.Timespan{Start: 0, End: 0}, 50,
	)

	rnd := rand.New(rand.NewSource(1))
	rc := view.Ray(0.5, 0.5, rnd)

	expected := core.NewVec3(0, 0, -1)
	if rc.Ray.Direction.Subtract(expected).Length() > 1e-9 {
		t.Errorf("expected the center ray to point toward %v, got %v", expected, rc.Ray.Direction)
	}
}

func TestViewRayCornersDivergeFromCenter(t *testing.T) {
	view := NewView(
		core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0),
		90.0, 1.0, 1.0, 0.0,
		core.Timespan{Start: 0, End: 0}, 50,
	)
	rnd := rand.New(rand.NewSource(1))

	center := view.Ray(0.5, 0.5, rnd).Ray.Direction
	corner := view.Ray(1.0, 1.0, rnd).Ray.Direction

	if corner.Subtract(center).Length() < 0.1 {
		t.Error("expected the corner ray to diverge noticeably from the center ray")
	}
	if corner.X <= 0 || corner.Y <= 0 {
		t.Errorf("expected the top-right corner ray to point up and to the right, got %v", corner)
	}
}

func TestViewRaySamplesWithinShutterTimespan(t *testing.T) {
	view := NewView(
		core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0),
		45.0, 1.0, 1.0, 0.0,
		core.Timespan{Start: 1.0, End: 2.0}, 50,
	)
	rnd := rand.New(rand.NewSource(7))

	for i := 0; i < 50; i++ {
		rc := view.Ray(0.5, 0.5, rnd)
		if rc.Time < 1.0 || rc.Time > 2.0 {
			t.Errorf("expected sampled time within [1, 2], got %f", rc.Time)
		}
	}
}

func TestViewRayCarriesConfiguredTTL(t *testing.T) {
	view := NewView(
		core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0),
		45.0, 1.0, 1.0, 0.0,
		core.Timespan{}, 12,
	)
	rnd := rand.New(rand.NewSource(1))
	rc := view.Ray(0.5, 0.5, rnd)
	if rc.TTL != 12 {
		t.Errorf("expected TTL=12, got %d", rc.TTL)
	}
}

func TestViewRayAperturePerturbsOrigin(t *testing.T) {
	view := NewView(
		core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0),
		45.0, 1.0, 1.0, 2.0,
		core.Timespan{}, 50,
	)
	rnd := rand.New(rand.NewSource(3))

	sawNonZeroOffset := false
	for i := 0; i < 50; i++ {
		rc := view.Ray(0.5, 0.5, rnd)
		if rc.Ray.Origin.Length() > 1e-6 {
			sawNonZeroOffset = true
		}
	}
	if !sawNonZeroOffset {
		t.Error("expected a nonzero aperture to perturb the ray origin across samples")
	}
}

func TestViewRayDirectionIsUnit(t *testing.T) {
	view := NewView(
		core.NewVec3(1, 2, 3), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0),
		60.0, 1.6, 5.0, 0.1,
		core.Timespan{}, 50,
	)
	rnd := rand.New(rand.NewSource(9))

	rc := view.Ray(0.25, 0.75, rnd)
	if math.Abs(rc.Ray.Direction.Length()-1.0) > 1e-9 {
		t.Errorf("expected a unit direction, got length %f", rc.Ray.Direction.Length())
	}
}
