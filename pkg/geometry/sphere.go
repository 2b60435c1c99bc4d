// Package geometry holds the scene primitives: Sphere, MovingSphere,
// axis-aligned rectangles and boxes, and the constant-density medium
// volume. Each implements hittable.Object, and the ones useful as direct
// light sampling targets also implement hittable.Important.
package geometry

import (
	"math"
	"math/rand"

	"github.com/mwagner-dev/pathtrace/pkg/core"
	"github.com/mwagner-dev/pathtrace/pkg/hittable"
	"github.com/mwagner-dev/pathtrace/pkg/material"
)

// Sphere is a fixed sphere at Center with the given Radius and Material.
type Sphere struct {
	Center   core.Point3
	Radius   float64
	Material material.Material
}

// NewSphere creates a sphere centered at center.
func NewSphere(center core.Point3, radius float64, mat material.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: mat}
}

func sphereHit(center core.Point3, radius float64, mat material.Material, ray core.Ray, distMin, distMax float64) (hittable.Hit, bool) {
	oc := ray.Origin.Subtract(center)
	b := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - radius*radius
	discriminant := b*b - c
	if discriminant < 0 {
		return hittable.Hit{}, false
	}

	sqrtD := math.Sqrt(discriminant)
	root := -b - sqrtD
	if root < distMin || root > distMax {
		root = -b + sqrtD
		if root < distMin || root > distMax {
			return hittable.Hit{}, false
		}
	}

	point := ray.At(root)
	normal := point.Subtract(center).Multiply(1.0 / radius)
	return hittable.Hit{Dist: root, Point: point, Normal: normal, UV: sphereUV(normal), Material: mat}, true
}

// sphereUV maps a unit outward normal to (u, v) texture coordinates.
func sphereUV(n core.UnitVec3) core.Vec2 {
	phi := math.Atan2(n.Z, n.X)
	theta := math.Asin(n.Y)
	u := 1.0 - (phi+math.Pi)/(2*math.Pi)
	v := (theta + math.Pi/2) / math.Pi
	return core.NewVec2(u, v)
}

func (s *Sphere) Hit(rayCtx core.RayCtx, distMin, distMax float64) (hittable.Hit, bool) {
	return sphereHit(s.Center, s.Radius, s.Material, rayCtx.Ray, distMin, distMax)
}

func (s *Sphere) BoundingBox(_ core.Timespan) core.AABB {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Subtract(r), s.Center.Add(r))
}

// PDFValue returns the solid-angle PDF of sampling this sphere from origin,
// or 1/(2π) when origin lies inside the sphere.
func (s *Sphere) PDFValue(origin, direction core.Vec3, hit hittable.Hit) float64 {
	dist := math.Sqrt(s.Center.Subtract(origin).LengthSquared())
	if dist <= s.Radius {
		return 1 / (2 * math.Pi)
	}
	return core.SphereConePDF(dist, s.Radius)
}

// Random samples a direction from origin toward a uniformly chosen point
// inside the unit sphere scaled by Radius and offset by the
// center-from-origin vector.
func (s *Sphere) Random(origin core.Vec3, rnd *rand.Rand) core.UnitVec3 {
	toCenter := s.Center.Subtract(origin)
	offset := core.RandomInUnitSphere(rnd).Multiply(s.Radius)
	return toCenter.Add(offset).Normalize()
}

// MovingSphere linearly interpolates its center between Center0 (at
// Timespan.Start) and Center1 (at Timespan.End), evaluated at each ray's
// time for motion blur.
type MovingSphere struct {
	Center0, Center1 core.Point3
	Timespan         core.Timespan
	Radius           float64
	Material         material.Material
}

// NewMovingSphere creates a sphere whose center interpolates from center0
// to center1 across timespan.
func NewMovingSphere(center0, center1 core.Point3, timespan core.Timespan, radius float64, mat material.Material) *MovingSphere {
	return &MovingSphere{Center0: center0, Center1: center1, Timespan: timespan, Radius: radius, Material: mat}
}

func (s *MovingSphere) centerAt(time float64) core.Point3 {
	u := (time - s.Timespan.Start) / (s.Timespan.End - s.Timespan.Start)
	return core.Lerp3(s.Center0, s.Center1, u)
}

func (s *MovingSphere) Hit(rayCtx core.RayCtx, distMin, distMax float64) (hittable.Hit, bool) {
	return sphereHit(s.centerAt(rayCtx.Time), s.Radius, s.Material, rayCtx.Ray, distMin, distMax)
}

func (s *MovingSphere) BoundingBox(timespan core.Timespan) core.AABB {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	box0 := core.NewAABB(s.centerAt(timespan.Start).Subtract(r), s.centerAt(timespan.Start).Add(r))
	box1 := core.NewAABB(s.centerAt(timespan.End).Subtract(r), s.centerAt(timespan.End).Add(r))
	return box0.Union(box1)
}
