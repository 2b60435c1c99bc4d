package geometry

import (
	"math"
	"math/rand"

	"github.com/mwagner-dev/pathtrace/pkg/core"
	"github.com/mwagner-dev/pathtrace/pkg/hittable"
	"github.com/mwagner-dev/pathtrace/pkg/material"
)

// AABox is an axis-aligned box built from six rectangles sharing one
// bounding box, one per face, so each face can carry its own material.
type AABox struct {
	Min, Max core.Point3
	faces    *hittable.List
}

// FaceMaterials names a material per box face for NewAABox. Front is the
// face at minimum Z, Back the face at maximum Z.
type FaceMaterials struct {
	Front, Back, Top, Bottom, Left, Right material.Material
}

// NewAABox builds a box spanning [min, max] with distinct per-face materials.
func NewAABox(min, max core.Point3, faces FaceMaterials) *AABox {
	list := hittable.NewList(
		NewXYRect(min.X, max.X, min.Y, max.Y, max.Z, faces.Back),
		hittable.NewFlipNormals(NewXYRect(min.X, max.X, min.Y, max.Y, min.Z, faces.Front)),
		NewXZRect(min.X, max.X, min.Z, max.Z, max.Y, faces.Top),
		hittable.NewFlipNormals(NewXZRect(min.X, max.X, min.Z, max.Z, min.Y, faces.Bottom)),
		NewYZRect(min.Y, max.Y, min.Z, max.Z, max.X, faces.Right),
		hittable.NewFlipNormals(NewYZRect(min.Y, max.Y, min.Z, max.Z, min.X, faces.Left)),
	)
	return &AABox{Min: min, Max: max, faces: list}
}

// NewAABoxUniform builds a box with the same material on every face.
func NewAABoxUniform(min, max core.Point3, mat material.Material) *AABox {
	return NewAABox(min, max, FaceMaterials{Front: mat, Back: mat, Top: mat, Bottom: mat, Left: mat, Right: mat})
}

func (b *AABox) Hit(rayCtx core.RayCtx, distMin, distMax float64) (hittable.Hit, bool) {
	return b.faces.Hit(rayCtx, distMin, distMax)
}

func (b *AABox) BoundingBox(_ core.Timespan) core.AABB {
	return core.NewAABB(b.Min, b.Max)
}

// PDFValue returns the solid-angle PDF of sampling this box from origin,
// treating each pair of opposing faces as a projected area weighted by how
// square-on direction views it.
func (b *AABox) PDFValue(origin, direction core.Vec3, hit hittable.Hit) float64 {
	size := b.Max.Subtract(b.Min)
	areaXY := math.Abs(size.X * size.Y * direction.Z)
	areaXZ := math.Abs(size.X * size.Z * direction.Y)
	areaYZ := math.Abs(size.Y * size.Z * direction.X)
	total := areaXY + areaXZ + areaYZ
	if total == 0 {
		return 0
	}
	return (hit.Dist * hit.Dist) / total
}

// Random samples a uniform point inside the box's volume and returns the
// normalized direction from origin to it.
func (b *AABox) Random(origin core.Vec3, rnd *rand.Rand) core.UnitVec3 {
	point := core.NewVec3(
		b.Min.X+rnd.Float64()*(b.Max.X-b.Min.X),
		b.Min.Y+rnd.Float64()*(b.Max.Y-b.Min.Y),
		b.Min.Z+rnd.Float64()*(b.Max.Z-b.Min.Z),
	)
	return point.Subtract(origin).Normalize()
}
