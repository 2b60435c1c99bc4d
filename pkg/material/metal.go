package material

import (
	"math/rand"

	"github.com/mwagner-dev/pathtrace/pkg/core"
)

// Metal is a specular reflector with optional fuzz: 0 is a perfect mirror,
// 1 is very rough.
type Metal struct {
	Albedo core.Vec3
	Fuzz   float64
}

// NewMetal creates a Metal material, clamping fuzz to [0, 1].
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	if fuzz > 1.0 {
		fuzz = 1.0
	}
	if fuzz < 0.0 {
		fuzz = 0.0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Emit returns zero; Metal does not emit.
func (m *Metal) Emit(rayIn core.Ray, hit SurfacePoint) core.Vec3 {
	return core.Vec3{}
}

// Scatter reflects the incoming ray about the normal, perturbed by Fuzz,
// and returns false (absorbed) if the result points into the surface.
func (m *Metal) Scatter(rayIn core.Ray, hit SurfacePoint, rnd *rand.Rand) (Scatter, bool) {
	reflected := rayIn.Direction.Normalize().Reflect(hit.Normal)
	if m.Fuzz > 0 {
		reflected = reflected.Add(core.RandomInUnitSphere(rnd).Multiply(m.Fuzz)).Normalize()
	}
	if reflected.Dot(hit.Normal) <= 0 {
		return Scatter{}, false
	}
	return NewSpecularScatter(core.NewRay(hit.Point, reflected), m.Albedo), true
}
