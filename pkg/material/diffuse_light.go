package material

import (
	"math/rand"

	"github.com/mwagner-dev/pathtrace/pkg/core"
)

// DiffuseLight is a pure emitter: it never scatters, and only emits from
// its front face (the side its normal points toward the incoming ray from).
type DiffuseLight struct {
	Emission ColorSource
	Scale    float64
}

// NewDiffuseLight creates a DiffuseLight emitting a flat color scaled by
// scale.
func NewDiffuseLight(color core.Vec3, scale float64) *DiffuseLight {
	return &DiffuseLight{Emission: NewSolidColor(color), Scale: scale}
}

// Emit returns Scale*Emission when the surface faces the incoming ray, and
// zero otherwise (the back face of an area light emits nothing).
func (d *DiffuseLight) Emit(rayIn core.Ray, hit SurfacePoint) core.Vec3 {
	if hit.Normal.Dot(rayIn.Direction) >= 0 {
		return core.Vec3{}
	}
	return d.Emission.Evaluate(hit.UV, hit.Point).Multiply(d.Scale)
}

// Scatter never scatters: DiffuseLight only emits.
func (d *DiffuseLight) Scatter(rayIn core.Ray, hit SurfacePoint, rnd *rand.Rand) (Scatter, bool) {
	return Scatter{}, false
}
