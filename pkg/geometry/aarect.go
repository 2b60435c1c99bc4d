package geometry

import (
	"math"
	"math/rand"

	"github.com/mwagner-dev/pathtrace/pkg/core"
	"github.com/mwagner-dev/pathtrace/pkg/hittable"
	"github.com/mwagner-dev/pathtrace/pkg/material"
)

const (
	AxisX = 0
	AxisY = 1
	AxisZ = 2
)

// AARect is a rectangle lying on the plane axis[AxisK] = K, spanning
// [AMin, AMax] on axis AxisA and [BMin, BMax] on axis AxisB. NewXYRect,
// NewXZRect and NewYZRect cover the three orientations Cornell-box scenes
// actually need.
type AARect struct {
	AxisA, AxisB, AxisK int
	AMin, AMax          float64
	BMin, BMax          float64
	K                   float64
	Material            material.Material
}

// NewAARect builds a rectangle on the plane axis[axisK] = k.
func NewAARect(axisA, axisB, axisK int, aMin, aMax, bMin, bMax, k float64, mat material.Material) *AARect {
	return &AARect{AxisA: axisA, AxisB: axisB, AxisK: axisK, AMin: aMin, AMax: aMax, BMin: bMin, BMax: bMax, K: k, Material: mat}
}

// NewXYRect builds a rectangle on the z=k plane.
func NewXYRect(xMin, xMax, yMin, yMax, k float64, mat material.Material) *AARect {
	return NewAARect(AxisX, AxisY, AxisZ, xMin, xMax, yMin, yMax, k, mat)
}

// NewXZRect builds a rectangle on the y=k plane.
func NewXZRect(xMin, xMax, zMin, zMax, k float64, mat material.Material) *AARect {
	return NewAARect(AxisX, AxisZ, AxisY, xMin, xMax, zMin, zMax, k, mat)
}

// NewYZRect builds a rectangle on the x=k plane.
func NewYZRect(yMin, yMax, zMin, zMax, k float64, mat material.Material) *AARect {
	return NewAARect(AxisY, AxisZ, AxisX, yMin, yMax, zMin, zMax, k, mat)
}

func vecFromAxes(axisA, axisB, axisK int, aVal, bVal, kVal float64) core.Vec3 {
	var comp [3]float64
	comp[axisA] = aVal
	comp[axisB] = bVal
	comp[axisK] = kVal
	return core.NewVec3(comp[0], comp[1], comp[2])
}

func (r *AARect) normal() core.UnitVec3 {
	return vecFromAxes(r.AxisA, r.AxisB, r.AxisK, 0, 0, 1)
}

func (r *AARect) Hit(rayCtx core.RayCtx, distMin, distMax float64) (hittable.Hit, bool) {
	origin := rayCtx.Ray.Origin
	direction := rayCtx.Ray.Direction

	dirK := direction.Index(r.AxisK)
	if dirK == 0 {
		return hittable.Hit{}, false
	}
	dist := (r.K - origin.Index(r.AxisK)) / dirK
	if dist < distMin || dist > distMax {
		return hittable.Hit{}, false
	}

	a := origin.Index(r.AxisA) + dist*direction.Index(r.AxisA)
	b := origin.Index(r.AxisB) + dist*direction.Index(r.AxisB)
	if a < r.AMin || a > r.AMax || b < r.BMin || b > r.BMax {
		return hittable.Hit{}, false
	}

	uv := core.NewVec2((a-r.AMin)/(r.AMax-r.AMin), (b-r.BMin)/(r.BMax-r.BMin))
	return hittable.Hit{Dist: dist, Point: rayCtx.Ray.At(dist), Normal: r.normal(), UV: uv, Material: r.Material}, true
}

func (r *AARect) BoundingBox(_ core.Timespan) core.AABB {
	const eps = 0.0001
	min := vecFromAxes(r.AxisA, r.AxisB, r.AxisK, r.AMin, r.BMin, r.K-eps)
	max := vecFromAxes(r.AxisA, r.AxisB, r.AxisK, r.AMax, r.BMax, r.K+eps)
	return core.NewAABB(min, max)
}

// PDFValue returns the solid-angle PDF of sampling this rectangle, given a
// hit at the given distance along direction.
func (r *AARect) PDFValue(origin, direction core.Vec3, hit hittable.Hit) float64 {
	area := (r.AMax - r.AMin) * (r.BMax - r.BMin)
	cosine := direction.Index(r.AxisK)
	cosArea := math.Abs(cosine * area)
	if cosArea == 0 {
		return 0
	}
	return (hit.Dist * hit.Dist) / cosArea
}

// Random samples a uniform point on the rectangle and returns the
// normalized direction from origin to it.
func (r *AARect) Random(origin core.Vec3, rnd *rand.Rand) core.UnitVec3 {
	a := r.AMin + rnd.Float64()*(r.AMax-r.AMin)
	b := r.BMin + rnd.Float64()*(r.BMax-r.BMin)
	point := vecFromAxes(r.AxisA, r.AxisB, r.AxisK, a, b, r.K)
	return point.Subtract(origin).Normalize()
}

// Moved returns a copy of r shifted by offset, re-parameterizing its
// ranges directly instead of wrapping it in a Translate. Each axis shifts
// by its own component of offset (the reference implementation reused the
// A-axis offset for both the A and B ranges; that is a bug, not a
// convention, and is not repeated here).
func (r *AARect) Moved(offset core.Vec3) *AARect {
	return &AARect{
		AxisA: r.AxisA, AxisB: r.AxisB, AxisK: r.AxisK,
		AMin: r.AMin + offset.Index(r.AxisA), AMax: r.AMax + offset.Index(r.AxisA),
		BMin: r.BMin + offset.Index(r.AxisB), BMax: r.BMax + offset.Index(r.AxisB),
		K:        r.K + offset.Index(r.AxisK),
		Material: r.Material,
	}
}
