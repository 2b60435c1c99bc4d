package renderer

import (
	"math/rand"

	"github.com/mwagner-dev/pathtrace/pkg/core"
)

// BruteForce is unidirectional path tracing with no importance sampling
// of lights: diffuse bounces are generated straight from the material's
// own PDF. Unbiased, but noisy on scenes with small, bright light sources.
type BruteForce struct{}

// NewBruteForce builds a BruteForce color function.
func NewBruteForce() *BruteForce {
	return &BruteForce{}
}

// Color implements ColorFunc.
func (r *BruteForce) Color(scene *Scene, rayCtx core.RayCtx, rnd *rand.Rand) core.Vec3 {
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
			stack = append(stack, shading{Emitted: emitted, Reflected: scatter.Albedo})
			rayCtx = rayCtx.Produce(hit.Point, scatter.PDF.Generate(rnd))
		}

		if rayCtx.Done() {
			break
		}
	}

	return fold(stack)
}
