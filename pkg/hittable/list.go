package hittable

import "github.com/mwagner-dev/pathtrace/pkg/core"

// List is a flat collection of objects, hit by linear scan. It is the
// input to NewBVH and also usable on its own for small object counts
// (instance interiors, light lists) where a tree is not worth building.
type List struct {
	Objects []Object
}

// NewList builds a List from the given objects.
func NewList(objects ...Object) *List {
	return &List{Objects: objects}
}

// Add appends an object to the list.
func (l *List) Add(obj Object) {
	l.Objects = append(l.Objects, obj)
}

// Hit returns the closest intersection among all objects in [distMin, distMax].
func (l *List) Hit(rayCtx core.RayCtx, distMin, distMax float64) (Hit, bool) {
	var closest Hit
	hitAnything := false
	closestSoFar := distMax

	for _, obj := range l.Objects {
		if hit, ok := obj.Hit(rayCtx, distMin, closestSoFar); ok {
			hitAnything = true
			closestSoFar = hit.Dist
			closest = hit
		}
	}
	return closest, hitAnything
}

// BoundingBox returns the union of every object's bounding box.
func (l *List) BoundingBox(timespan core.Timespan) core.AABB {
	if len(l.Objects) == 0 {
		return core.AABB{}
	}
	box := l.Objects[0].BoundingBox(timespan)
	for _, obj := range l.Objects[1:] {
		box = box.Union(obj.BoundingBox(timespan))
	}
	return box
}
