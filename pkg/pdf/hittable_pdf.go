// Package pdf holds the PDF implementations that need the hittable
// capability set (HittablePDF, MixturePDF). CosinePDF and IsotropicPDF need
// no such capability and live in pkg/material instead, avoiding a
// material<->pdf import cycle: material.Lambertian.Scatter constructs a
// CosinePDF directly, and a package that material imports cannot in turn
// import material.
package pdf

import (
	"math"
	"math/rand"

	"github.com/mwagner-dev/pathtrace/pkg/core"
	"github.com/mwagner-dev/pathtrace/pkg/hittable"
	"github.com/mwagner-dev/pathtrace/pkg/material"
)

// HittablePDF samples directions toward target, weighting by its solid
// angle as seen from origin. Used to bias sampling toward known light
// sources in a MixturePDF alongside a CosinePDF.
type HittablePDF struct {
	Origin core.Point3
	Target hittable.ImportantObject
}

// NewHittablePDF builds a PDF that samples target as seen from origin.
func NewHittablePDF(origin core.Point3, target hittable.ImportantObject) *HittablePDF {
	return &HittablePDF{Origin: origin, Target: target}
}

// Value returns the solid-angle PDF of sampling direction toward Target,
// by first confirming a ray from hit.Point in that direction actually
// reaches it.
func (h *HittablePDF) Value(direction core.Vec3, hit material.SurfacePoint) float64 {
	probe := core.NewRayCtx(core.NewRay(hit.Point, direction), 1)
	innerHit, ok := h.Target.Hit(probe, 0.0001, math.MaxFloat64)
	if !ok {
		return 0
	}
	return h.Target.PDFValue(h.Origin, direction, innerHit)
}

// Generate samples a direction from Origin toward Target.
func (h *HittablePDF) Generate(rnd *rand.Rand) core.UnitVec3 {
	return h.Target.Random(h.Origin, rnd)
}
