package hittable

import (
	"math/rand"

	"github.com/mwagner-dev/pathtrace/pkg/core"
)

// ImportantList aggregates several importance-sampling targets (area
// lights, mostly) into one ImportantObject, so a MonteCarlo renderer can
// give every one of them a chance to be hit by a HittablePDF even though
// HittablePDF only wraps a single target. Hit defers to a plain List built
// from the same members; PDFValue averages each member's own PDF value
// with equal weight, and Random samples a uniformly chosen member,
// following the multi-light technique of averaging over independently
// hit-tested lights rather than trying to reuse one externally supplied
// hit across all of them.
type ImportantList struct {
	Members []ImportantObject
	list    *List
}

// NewImportantList builds an ImportantList from the given members.
func NewImportantList(members ...ImportantObject) *ImportantList {
	objects := make([]Object, len(members))
	for i, m := range members {
		objects[i] = m
	}
	return &ImportantList{Members: members, list: NewList(objects...)}
}

func (l *ImportantList) Hit(rayCtx core.RayCtx, distMin, distMax float64) (Hit, bool) {
	return l.list.Hit(rayCtx, distMin, distMax)
}

func (l *ImportantList) BoundingBox(timespan core.Timespan) core.AABB {
	return l.list.BoundingBox(timespan)
}

// PDFValue averages the PDF value each member reports for its own,
// independently hit-tested intersection along direction, rather than
// reusing a single hit computed against one member.
func (l *ImportantList) PDFValue(origin, direction core.Vec3, _ Hit) float64 {
	if len(l.Members) == 0 {
		return 0
	}
	sum := 0.0
	for _, m := range l.Members {
		probe := core.NewRayCtx(core.NewRay(origin, direction), 1)
		if innerHit, ok := m.Hit(probe, 0.0001, 1e18); ok {
			sum += m.PDFValue(origin, direction, innerHit)
		}
	}
	return sum / float64(len(l.Members))
}

// Random samples a uniformly chosen member and delegates to its own Random.
func (l *ImportantList) Random(origin core.Vec3, rnd *rand.Rand) core.UnitVec3 {
	if len(l.Members) == 0 {
		return core.RandomUnitVector(rnd)
	}
	return l.Members[rnd.Intn(len(l.Members))].Random(origin, rnd)
}
