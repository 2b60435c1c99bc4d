package hittable

import (
	"math/rand"

	"github.com/mwagner-dev/pathtrace/pkg/core"
)

// Isometry composes a rotation about an axis with a translation into a
// single rigid transform, applied as one wrapper rather than nesting
// Rotate inside Translate: avoids a doubled round trip through local space
// per hit test.
type Isometry struct {
	Target      Object
	Axis        core.UnitVec3
	Angle       float64 // radians
	Translation core.Vec3
	aabb        core.AABB
}

// NewIsometry wraps target with a rotation about axis by angleDegrees,
// followed by a translation.
func NewIsometry(target Object, axis core.UnitVec3, angleDegrees float64, translation core.Vec3, timespan core.Timespan) *Isometry {
	rotated := NewRotate(target, axis, angleDegrees, timespan)
	return &Isometry{
		Target:      target,
		Axis:        rotated.Axis,
		Angle:       rotated.Angle,
		Translation: translation,
		aabb:        rotated.aabb.Translate(translation),
	}
}

func (iso *Isometry) forward(v core.Vec3) core.Vec3 {
	return v.RotateAroundAxis(iso.Axis, iso.Angle)
}

func (iso *Isometry) inverse(v core.Vec3) core.Vec3 {
	return v.RotateAroundAxis(iso.Axis, -iso.Angle)
}

func (iso *Isometry) Hit(rayCtx core.RayCtx, distMin, distMax float64) (Hit, bool) {
	local := rayCtx
	local.Ray = core.NewRay(
		iso.inverse(rayCtx.Ray.Origin.Subtract(iso.Translation)),
		iso.inverse(rayCtx.Ray.Direction),
	)

	hit, ok := iso.Target.Hit(local, distMin, distMax)
	if !ok {
		return Hit{}, false
	}
	hit.Point = iso.forward(hit.Point).Add(iso.Translation)
	hit.Normal = iso.forward(hit.Normal)
	return hit, true
}

func (iso *Isometry) BoundingBox(_ core.Timespan) core.AABB {
	return iso.aabb
}

func (iso *Isometry) PDFValue(origin, direction core.Vec3, hit Hit) float64 {
	important, ok := iso.Target.(Important)
	if !ok {
		return 0
	}
	localOrigin := iso.inverse(origin.Subtract(iso.Translation))
	localDirection := iso.inverse(direction)
	return important.PDFValue(localOrigin, localDirection, hit)
}

func (iso *Isometry) Random(origin core.Vec3, rnd *rand.Rand) core.UnitVec3 {
	important, ok := iso.Target.(Important)
	if !ok {
		return core.RandomUnitVector(rnd)
	}
	localOrigin := iso.inverse(origin.Subtract(iso.Translation))
	return iso.forward(important.Random(localOrigin, rnd))
}
