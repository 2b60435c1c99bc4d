// Package hittable defines the intersectable-object capability set (hit
// testing, bounding boxes, importance sampling) and the structures built on
// top of it: the BVH acceleration structure, a flat list, and the instance
// transforms (translate/rotate/flip/isometry).
package hittable

import (
	"math/rand"

	"github.com/mwagner-dev/pathtrace/pkg/core"
	"github.com/mwagner-dev/pathtrace/pkg/material"
)

// Hit describes a ray-primitive intersection. Its Material reference is
// only valid for the lifetime of the trace call that produced it.
type Hit struct {
	Dist     float64
	Point    core.Point3
	Normal   core.UnitVec3
	UV       core.Vec2
	Material material.Material
}

// Hittable is the core ray-intersection capability. Hit must report a
// result whose Dist lies in (distMin, distMax).
type Hittable interface {
	Hit(rayCtx core.RayCtx, distMin, distMax float64) (Hit, bool)
}

// Bounded is implemented by anything with a bounding box over a shutter
// timespan.
type Bounded interface {
	BoundingBox(timespan core.Timespan) core.AABB
}

// Important is implemented by primitives useful as direct-light sampling
// targets: lights, and anything else worth sampling by solid angle.
type Important interface {
	PDFValue(origin, direction core.Vec3, hit Hit) float64
	Random(origin core.Vec3, rnd *rand.Rand) core.UnitVec3
}

// Object is the combined capability set most scene primitives implement.
type Object interface {
	Hittable
	Bounded
}

// ImportantObject is an Object that can also be sampled by solid angle, the
// capability set required of a HittablePDF's light target.
type ImportantObject interface {
	Hittable
	Important
}
