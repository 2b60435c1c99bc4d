package material

import (
	"math/rand"

	"github.com/mwagner-dev/pathtrace/pkg/core"
)

// Isotropic is the phase function used by ConstantMedium: it scatters
// uniformly in every direction, for homogeneous participating media (fog,
// smoke).
type Isotropic struct {
	Albedo ColorSource
}

// NewIsotropic creates an Isotropic phase-function material from a flat
// color.
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: NewSolidColor(albedo)}
}

// Emit returns zero; Isotropic does not emit.
func (i *Isotropic) Emit(rayIn core.Ray, hit SurfacePoint) core.Vec3 {
	return core.Vec3{}
}

// Scatter always returns a Diffuse scatter with a uniform IsotropicPDF.
func (i *Isotropic) Scatter(rayIn core.Ray, hit SurfacePoint, rnd *rand.Rand) (Scatter, bool) {
	albedo := i.Albedo.Evaluate(hit.UV, hit.Point)
	return NewDiffuseScatter(NewIsotropicPDF(), albedo), true
}
