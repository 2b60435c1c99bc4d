package hittable

import (
	"math/rand"

	"github.com/mwagner-dev/pathtrace/pkg/core"
)

// FlipNormals wraps a child object, negating its surface normal. Used to
// turn an outward-facing rectangle into an inward-facing one, e.g. for box
// walls seen from the inside.
type FlipNormals struct {
	Target Object
}

// NewFlipNormals wraps target with reversed normals.
func NewFlipNormals(target Object) *FlipNormals {
	return &FlipNormals{Target: target}
}

func (f *FlipNormals) Hit(rayCtx core.RayCtx, distMin, distMax float64) (Hit, bool) {
	hit, ok := f.Target.Hit(rayCtx, distMin, distMax)
	if !ok {
		return Hit{}, false
	}
	hit.Normal = hit.Normal.Negate()
	return hit, true
}

func (f *FlipNormals) BoundingBox(timespan core.Timespan) core.AABB {
	return f.Target.BoundingBox(timespan)
}

func (f *FlipNormals) PDFValue(origin, direction core.Vec3, hit Hit) float64 {
	important, ok := f.Target.(Important)
	if !ok {
		return 0
	}
	return important.PDFValue(origin, direction, hit)
}

func (f *FlipNormals) Random(origin core.Vec3, rnd *rand.Rand) core.UnitVec3 {
	important, ok := f.Target.(Important)
	if !ok {
		return core.RandomUnitVector(rnd)
	}
	return important.Random(origin, rnd)
}
