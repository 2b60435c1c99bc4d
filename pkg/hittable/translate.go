package hittable

import (
	"math/rand"

	"github.com/mwagner-dev/pathtrace/pkg/core"
)

// Translate shifts a child object by a fixed offset: the ray is moved into
// the child's local space before the hit test, and the resulting point is
// shifted back.
type Translate struct {
	Target Object
	Offset core.Vec3
}

// NewTranslate wraps target so it appears shifted by offset.
func NewTranslate(target Object, offset core.Vec3) *Translate {
	return &Translate{Target: target, Offset: offset}
}

func (t *Translate) Hit(rayCtx core.RayCtx, distMin, distMax float64) (Hit, bool) {
	moved := rayCtx
	moved.Ray = core.NewRay(rayCtx.Ray.Origin.Subtract(t.Offset), rayCtx.Ray.Direction)

	hit, ok := t.Target.Hit(moved, distMin, distMax)
	if !ok {
		return Hit{}, false
	}
	hit.Point = hit.Point.Add(t.Offset)
	return hit, true
}

func (t *Translate) BoundingBox(timespan core.Timespan) core.AABB {
	return t.Target.BoundingBox(timespan).Translate(t.Offset)
}

func (t *Translate) PDFValue(origin, direction core.Vec3, hit Hit) float64 {
	important, ok := t.Target.(Important)
	if !ok {
		return 0
	}
	return important.PDFValue(origin.Subtract(t.Offset), direction, hit)
}

func (t *Translate) Random(origin core.Vec3, rnd *rand.Rand) core.UnitVec3 {
	important, ok := t.Target.(Important)
	if !ok {
		return core.RandomUnitVector(rnd)
	}
	return important.Random(origin.Subtract(t.Offset), rnd)
}
