package hittable

import (
	"math"
	"math/rand"
	"testing"

	"github.com/mwagner-dev/pathtrace/pkg/core"
)

// testSphere is a minimal Hittable+Bounded stand-in so this package's tests
// don't need to import the geometry package, which itself imports hittable.
type testSphere struct {
	center core.Point3
	radius float64
}

func (s *testSphere) Hit(rayCtx core.RayCtx, distMin, distMax float64) (Hit, bool) {
	oc := rayCtx.Ray.Origin.Subtract(s.center)
	a := rayCtx.Ray.Direction.LengthSquared()
	halfB := oc.Dot(rayCtx.Ray.Direction)
	c := oc.LengthSquared() - s.radius*s.radius
	disc := halfB*halfB - a*c
	if disc < 0 {
		return Hit{}, false
	}
	sqrtD := math.Sqrt(disc)
	root := (-halfB - sqrtD) / a
	if root < distMin || root > distMax {
		root = (-halfB + sqrtD) / a
		if root < distMin || root > distMax {
			return Hit{}, false
		}
	}
	point := rayCtx.Ray.At(root)
	normal := point.Subtract(s.center).Multiply(1 / s.radius)
	return Hit{Dist: root, Point: point, Normal: normal}, true
}

func (s *testSphere) BoundingBox(_ core.Timespan) core.AABB {
	r := core.NewVec3(s.radius, s.radius, s.radius)
	return core.NewAABB(s.center.Subtract(r), s.center.Add(r))
}

func fullTimespan() core.Timespan {
	return core.Timespan{Start: 0, End: 1}
}

func randomSpheres(n int, seed int64) []Object {
	rnd := rand.New(rand.NewSource(seed))
	objs := make([]Object, n)
	for i := range objs {
		center := core.NewVec3(rnd.Float64()*40-20, rnd.Float64()*40-20, rnd.Float64()*40-20)
		objs[i] = &testSphere{center: center, radius: 0.5 + rnd.Float64()}
	}
	return objs
}

func TestBVHMatchesLinearScan(t *testing.T) {
	objs := randomSpheres(200, 1)
	list := NewList(objs...)
	bvh := NewBVH(objs, fullTimespan())

	rnd := rand.New(rand.NewSource(2))
	for i := 0; i < 500; i++ {
		origin := core.NewVec3(rnd.Float64()*60-30, rnd.Float64()*60-30, rnd.Float64()*60-30)
		direction := core.NewVec3(rnd.Float64()*2-1, rnd.Float64()*2-1, rnd.Float64()*2-1).Normalize()
		rayCtx := core.NewRayCtx(core.NewRay(origin, direction), 1)

		wantHit, wantOK := list.Hit(rayCtx, 0.001, math.Inf(1))
		gotHit, gotOK := bvh.Hit(rayCtx, 0.001, math.Inf(1))

		if wantOK != gotOK {
			t.Fatalf("iter %d: linear scan hit=%v, bvh hit=%v", i, wantOK, gotOK)
		}
		if wantOK && math.Abs(wantHit.Dist-gotHit.Dist) > 1e-9 {
			t.Errorf("iter %d: linear dist=%f, bvh dist=%f", i, wantHit.Dist, gotHit.Dist)
		}
	}
}

func TestBVHEmpty(t *testing.T) {
	bvh := NewBVH(nil, fullTimespan())
	rayCtx := core.NewRayCtx(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)), 1)
	if _, ok := bvh.Hit(rayCtx, 0, math.Inf(1)); ok {
		t.Error("empty BVH should never report a hit")
	}
}

func TestBVHBoundingBoxCoversAllObjects(t *testing.T) {
	objs := randomSpheres(50, 3)
	bvh := NewBVH(objs, fullTimespan())
	box := bvh.BoundingBox(fullTimespan())

	for _, obj := range objs {
		objBox := obj.BoundingBox(fullTimespan())
		if objBox.Min.X < box.Min.X-1e-9 || objBox.Max.X > box.Max.X+1e-9 {
			t.Errorf("object box %v not contained in BVH box %v", objBox, box)
		}
	}
}
