package renderer

import (
	"math"
	"math/rand"

	"github.com/mwagner-dev/pathtrace/pkg/core"
	"github.com/mwagner-dev/pathtrace/pkg/hittable"
	"github.com/mwagner-dev/pathtrace/pkg/material"
	"github.com/mwagner-dev/pathtrace/pkg/pdf"
)

// MonteCarlo is path tracing with multiple importance sampling: diffuse
// bounces are drawn from a mixture of the scene's important objects (area
// lights, mostly) and the surface's own material PDF, weighted by
// ImportantWeight. This concentrates samples on lights without biasing the
// result, at the cost of needing scene.Important populated.
type MonteCarlo struct {
	ImportantWeight float64
}

// NewMonteCarlo builds a MonteCarlo color function sampling the important
// set with probability importantWeight.
func NewMonteCarlo(importantWeight float64) *MonteCarlo {
	return &MonteCarlo{ImportantWeight: importantWeight}
}

// Color implements ColorFunc.
func (r *MonteCarlo) Color(scene *Scene, rayCtx core.RayCtx, rnd *rand.Rand) core.Vec3 {
	var stack []shading

	for {
		hit, ok := scene.World.Hit(rayCtx, 0.000001, 99999.0)
		if !ok {
			stack = append(stack, shading{Emitted: scene.MissShader(rayCtx.Ray)})
			break
		}

		surface := surfacePoint(hit)
		emitted := hit.Material.Emit(rayCtx.Ray, surface)

		scatter, ok := hit.Material.Scatter(rayCtx.Ray, surface, rnd)
		if !ok {
			stack = append(stack, shading{Emitted: emitted})
			break
		}

		if scatter.Specular {
			stack = append(stack, shading{Emitted: emitted, Reflected: scatter.Attenuation})
			rayCtx = rayCtx.Produce(scatter.SpecularRay.Origin, scatter.SpecularRay.Direction)
		} else {
			weight, next := r.connect(scene, rayCtx, hit, surface, scatter, rnd)
			stack = append(stack, shading{Emitted: emitted, Reflected: scatter.Albedo.Multiply(weight)})
			rayCtx = next
		}

		if rayCtx.Done() {
			break
		}
	}

	return fold(stack)
}

// connect draws the next bounce's direction from a mixture of the scene's
// important set and the surface's material PDF, and returns the weight
// (material PDF value / mixture PDF value) that corrects for the biased
// sampling, along with the produced ray. If the mixture PDF and the
// material PDF disagree enough to produce a NaN or infinite ratio (the
// chosen direction missed the importance geometry entirely), it falls back
// to an unbiased material-PDF sample with weight 1. An empty ImportantList
// skips the mixture and samples the material PDF alone with weight 1.
func (r *MonteCarlo) connect(scene *Scene, rayCtx core.RayCtx, hit hittable.Hit, surface material.SurfacePoint, scatter material.Scatter, rnd *rand.Rand) (float64, core.RayCtx) {
	if l, ok := scene.Important.(*hittable.ImportantList); ok && len(l.Members) == 0 {
		return 1.0, rayCtx.Produce(hit.Point, scatter.PDF.Generate(rnd))
	}
	hittablePDF := pdf.NewHittablePDF(hit.Point, scene.Important)
	mixture := pdf.NewMixture(hittablePDF, scatter.PDF, r.ImportantWeight)

	direction := mixture.Generate(rnd)
	next := rayCtx.Produce(hit.Point, direction)

	scatterValue := scatter.PDF.Value(direction, surface)
	mixtureValue := mixture.Value(direction, surface)
	weight := scatterValue / mixtureValue
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		direction = scatter.PDF.Generate(rnd)
		next = rayCtx.Produce(hit.Point, direction)
		weight = 1.0
	}
	return weight, next
}
