package hittable

import (
	"math"
	"math/rand"

	"github.com/mwagner-dev/pathtrace/pkg/core"
)

// Rotate wraps a child object with a rigid rotation about an arbitrary axis
// through the origin. The ray is rotated into the child's local space
// before the hit test, and the resulting point and normal are rotated
// back by the forward rotation.
type Rotate struct {
	Target Object
	Axis   core.UnitVec3
	Angle  float64 // radians
	aabb   core.AABB
}

// NewRotate wraps target, rotating it by angleDegrees about axis.
func NewRotate(target Object, axis core.UnitVec3, angleDegrees float64, timespan core.Timespan) *Rotate {
	angle := angleDegrees * math.Pi / 180
	r := &Rotate{Target: target, Axis: axis.Normalize(), Angle: angle}

	box := target.BoundingBox(timespan)
	corners := box.Corners()
	rotated := corners[0].RotateAroundAxis(r.Axis, angle)
	envelope := core.NewAABBFromPoints(rotated)
	for _, c := range corners[1:] {
		envelope = envelope.Union(core.NewAABBFromPoints(c.RotateAroundAxis(r.Axis, angle)))
	}
	r.aabb = envelope
	return r
}

// NewRotateY wraps target with a rotation about the Y axis, the common case
// for orienting boxes and rectangles in a scene.
func NewRotateY(target Object, angleDegrees float64, timespan core.Timespan) *Rotate {
	return NewRotate(target, core.NewVec3(0, 1, 0), angleDegrees, timespan)
}

func (r *Rotate) forward(v core.Vec3) core.Vec3 {
	return v.RotateAroundAxis(r.Axis, r.Angle)
}

func (r *Rotate) inverse(v core.Vec3) core.Vec3 {
	return v.RotateAroundAxis(r.Axis, -r.Angle)
}

func (r *Rotate) Hit(rayCtx core.RayCtx, distMin, distMax float64) (Hit, bool) {
	rotated := rayCtx
	rotated.Ray = core.NewRay(r.inverse(rayCtx.Ray.Origin), r.inverse(rayCtx.Ray.Direction))

	hit, ok := r.Target.Hit(rotated, distMin, distMax)
	if !ok {
		return Hit{}, false
	}
	hit.Point = r.forward(hit.Point)
	hit.Normal = r.forward(hit.Normal)
	return hit, true
}

func (r *Rotate) BoundingBox(_ core.Timespan) core.AABB {
	return r.aabb
}

func (r *Rotate) PDFValue(origin, direction core.Vec3, hit Hit) float64 {
	important, ok := r.Target.(Important)
	if !ok {
		return 0
	}
	return important.PDFValue(r.inverse(origin), r.inverse(direction), hit)
}

func (r *Rotate) Random(origin core.Vec3, rnd *rand.Rand) core.UnitVec3 {
	important, ok := r.Target.(Important)
	if !ok {
		return core.RandomUnitVector(rnd)
	}
	return r.forward(important.Random(r.inverse(origin), rnd))
}
