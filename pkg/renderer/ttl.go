package renderer

import (
	"math/rand"

	"github.com/mwagner-dev/pathtrace/pkg/core"
)

// TtlRenderer is a debug color function: instead of shading surfaces, it
// shows how many bounces of budget remain at each hit, white at full
// budget fading toward black as TTL is exhausted. Useful for visualizing
// where a scene is spending its bounce budget.
type TtlRenderer struct {
	MaxTTL int
}

// NewTtlRenderer builds a TtlRenderer normalized against maxTTL.
func NewTtlRenderer(maxTTL int) *TtlRenderer {
	return &TtlRenderer{MaxTTL: maxTTL}
}

// Color implements ColorFunc.
func (r *TtlRenderer) Color(scene *Scene, rayCtx core.RayCtx, rnd *rand.Rand) core.Vec3 {
	hit, ok := scene.World.Hit(rayCtx, 0.0001, 99999.0)
	if !ok {
		return ttlColor(rayCtx.TTL, r.MaxTTL)
	}

	surface := surfacePoint(hit)
	scatter, ok := hit.Material.Scatter(rayCtx.Ray, surface, rnd)
	if !ok {
		return ttlColor(rayCtx.TTL, r.MaxTTL)
	}

	var next core.RayCtx
	if scatter.Specular {
		next = rayCtx.Produce(scatter.SpecularRay.Origin, scatter.SpecularRay.Direction)
	} else {
		next = rayCtx.Produce(hit.Point, scatter.PDF.Generate(rnd))
	}
	if next.Done() {
		return ttlColor(next.TTL, r.MaxTTL)
	}
	return ttlColor(next.TTL, r.MaxTTL).MultiplyVec(r.Color(scene, next, rnd))
}

func ttlColor(rayTTL, maxTTL int) core.Vec3 {
	v := float64(rayTTL) / float64(maxTTL)
	return core.NewVec3(v, v, v)
}
