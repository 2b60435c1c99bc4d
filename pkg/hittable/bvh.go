package hittable

import (
	"sort"

	"github.com/mwagner-dev/pathtrace/pkg/core"
)

// bvhCutoff is the maximum number of objects stored in a single leaf node.
const bvhCutoff = 8

type bvhNode struct {
	aabb  core.AABB
	left  int // index into BVH.nodes, -1 for leaf
	right int
	objs  []int // object indices, nil for internal nodes
}

// BVH is a bounding volume hierarchy over a fixed set of objects, built once
// up front for fast ray traversal. The split axis is chosen once from the
// bounding box of the whole object set and reused at every level, rather
// than recomputed per subtree: cheap to build, and good enough once the
// root envelope already picks the widest axis for the whole scene.
type BVH struct {
	objects []Object
	nodes   []bvhNode
	root    int
}

// NewBVH builds a BVH over objects, bounded across timespan.
func NewBVH(objects []Object, timespan core.Timespan) *BVH {
	bvh := &BVH{objects: objects}
	if len(objects) == 0 {
		bvh.root = -1
		return bvh
	}

	axis := pickAxis(objects, timespan)
	indices := make([]int, len(objects))
	for i := range indices {
		indices[i] = i
	}
	bvh.root = bvh.construct(indices, axis, timespan)
	return bvh
}

func pickAxis(objects []Object, timespan core.Timespan) int {
	box := objects[0].BoundingBox(timespan)
	for _, obj := range objects[1:] {
		box = box.Union(obj.BoundingBox(timespan))
	}
	return box.LongestAxis()
}

func (bvh *BVH) construct(indices []int, axis int, timespan core.Timespan) int {
	if len(indices) <= bvhCutoff {
		box := bvh.objects[indices[0]].BoundingBox(timespan)
		for _, i := range indices[1:] {
			box = box.Union(bvh.objects[i].BoundingBox(timespan))
		}
		bvh.nodes = append(bvh.nodes, bvhNode{aabb: box, left: -1, right: -1, objs: indices})
		return len(bvh.nodes) - 1
	}

	sort.Slice(indices, func(i, j int) bool {
		ci := bvh.objects[indices[i]].BoundingBox(timespan).Center().Index(axis)
		cj := bvh.objects[indices[j]].BoundingBox(timespan).Center().Index(axis)
		return ci < cj
	})

	mid := len(indices) / 2
	leftIdx := bvh.construct(indices[:mid], axis, timespan)
	rightIdx := bvh.construct(indices[mid:], axis, timespan)

	box := bvh.nodes[leftIdx].aabb.Union(bvh.nodes[rightIdx].aabb)
	bvh.nodes = append(bvh.nodes, bvhNode{aabb: box, left: leftIdx, right: rightIdx})
	return len(bvh.nodes) - 1
}

// Hit descends the tree, narrowing the search interval as closer hits are found.
func (bvh *BVH) Hit(rayCtx core.RayCtx, distMin, distMax float64) (Hit, bool) {
	if bvh.root == -1 {
		return Hit{}, false
	}
	return bvh.hitNode(bvh.root, rayCtx, distMin, distMax)
}

func (bvh *BVH) hitNode(idx int, rayCtx core.RayCtx, distMin, distMax float64) (Hit, bool) {
	node := &bvh.nodes[idx]
	if !node.aabb.Hit(rayCtx.Ray, distMin, distMax) {
		return Hit{}, false
	}

	if node.objs != nil {
		var closest Hit
		found := false
		closestSoFar := distMax
		for _, i := range node.objs {
			if hit, ok := bvh.objects[i].Hit(rayCtx, distMin, closestSoFar); ok {
				found = true
				closestSoFar = hit.Dist
				closest = hit
			}
		}
		return closest, found
	}

	left, leftOK := bvh.hitNode(node.left, rayCtx, distMin, distMax)
	searchMax := distMax
	if leftOK {
		searchMax = left.Dist
	}
	right, rightOK := bvh.hitNode(node.right, rayCtx, distMin, searchMax)

	if rightOK {
		return right, true
	}
	if leftOK {
		return left, true
	}
	return Hit{}, false
}

// BoundingBox returns the bounding box of the whole BVH.
func (bvh *BVH) BoundingBox(_ core.Timespan) core.AABB {
	if bvh.root == -1 {
		return core.AABB{}
	}
	return bvh.nodes[bvh.root].aabb
}
