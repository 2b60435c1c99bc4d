// Package renderer turns a Scene and a primary ray into a color, and
// drives the row-parallel sampler that turns a Scene into a PPM image.
package renderer

import (
	"math/rand"

	"github.com/mwagner-dev/pathtrace/pkg/camera"
	"github.com/mwagner-dev/pathtrace/pkg/core"
	"github.com/mwagner-dev/pathtrace/pkg/hittable"
	"github.com/mwagner-dev/pathtrace/pkg/material"
)

// surfacePoint extracts the surface-local fields a Material needs from a
// hittable.Hit.
func surfacePoint(hit hittable.Hit) material.SurfacePoint {
	return material.SurfacePoint{Point: hit.Point, Normal: hit.Normal, UV: hit.UV}
}

// MissShader computes the background color for a ray that hits nothing.
type MissShader func(ray core.Ray) core.Vec3

// Scene bundles everything a ColorFunc needs: the traceable world, the
// subset of it worth sampling directly for multiple importance sampling,
// the camera, and the background.
type Scene struct {
	World      hittable.Object
	Important  hittable.ImportantObject
	View       *camera.View
	MissShader MissShader
}

// ColorFunc computes the color seen along a primary ray.
type ColorFunc func(scene *Scene, rayCtx core.RayCtx, rnd *rand.Rand) core.Vec3

// shading is one bounce's contribution to the path: emitted light at that
// bounce, and the factor by which deeper bounces' contributions are
// weighted before being added in (the BRDF/PDF ratio for diffuse bounces,
// the specular attenuation for specular ones).
type shading struct {
	Emitted   core.Vec3
	Reflected core.Vec3
}

// fold combines a bounce stack back-to-front: the last entry (a miss or an
// absorption) seeds the result with its emitted light alone, and each
// earlier entry folds in as L = L*reflected + emitted.
func fold(stack []shading) core.Vec3 {
	n := len(stack)
	result := stack[n-1].Emitted
	for i := n - 2; i >= 0; i-- {
		result = result.MultiplyVec(stack[i].Reflected).Add(stack[i].Emitted)
	}
	return result
}
