package geometry

import (
	"math"
	"math/rand"

	"github.com/mwagner-dev/pathtrace/pkg/core"
	"github.com/mwagner-dev/pathtrace/pkg/hittable"
	"github.com/mwagner-dev/pathtrace/pkg/material"
)

// ConstantMedium wraps a boundary Hittable with a homogeneous participating
// medium: rays that enter the boundary have a chance to scatter isotropically
// somewhere inside it before reaching the exit point, with the free path
// sampled from an exponential distribution of the given density.
type ConstantMedium struct {
	Boundary hittable.Object
	Density  float64
	Phase    material.Material
}

// NewConstantMedium builds a medium with an isotropic phase function
// tinted by albedo.
func NewConstantMedium(boundary hittable.Object, density float64, albedo core.Vec3) *ConstantMedium {
	return &ConstantMedium{Boundary: boundary, Density: density, Phase: material.NewIsotropic(albedo)}
}

func (c *ConstantMedium) Hit(rayCtx core.RayCtx, distMin, distMax float64) (hittable.Hit, bool) {
	enterHit, ok := c.Boundary.Hit(rayCtx, -math.MaxFloat64, math.MaxFloat64)
	if !ok {
		return hittable.Hit{}, false
	}

	exitHit, ok := c.Boundary.Hit(rayCtx, enterHit.Dist+0.001, math.MaxFloat64)
	if !ok {
		return hittable.Hit{}, false
	}

	enterDist := math.Max(distMin, enterHit.Dist)
	exitDist := math.Min(exitHit.Dist, distMax)
	if enterDist >= exitDist {
		return hittable.Hit{}, false
	}

	dirLength := rayCtx.Ray.Direction.Length()
	hitDistance := rand.ExpFloat64() / c.Density
	innerTravelDistance := (exitDist - enterDist) * dirLength
	if hitDistance >= innerTravelDistance {
		return hittable.Hit{}, false
	}

	dist := enterDist + hitDistance/dirLength
	point := rayCtx.Ray.At(dist)
	return hittable.Hit{Dist: dist, Point: point, Normal: randomUnitVectorGlobal(), UV: enterHit.UV, Material: c.Phase}, true
}

// randomUnitVectorGlobal samples a direction uniformly over the unit sphere
// using the package-level rand source. Hittable.Hit carries no *rand.Rand of
// its own, so ConstantMedium draws from math/rand's default source the same
// way the reference implementation drew from a global RNG for this step.
func randomUnitVectorGlobal() core.UnitVec3 {
	for {
		p := core.NewVec3(2*rand.Float64()-1, 2*rand.Float64()-1, 2*rand.Float64()-1)
		if p.LengthSquared() < 1 {
			return p.Normalize()
		}
	}
}

func (c *ConstantMedium) BoundingBox(timespan core.Timespan) core.AABB {
	return c.Boundary.BoundingBox(timespan)
}
