package material

import (
	"math"
	"math/rand"

	"github.com/mwagner-dev/pathtrace/pkg/core"
)

// CosinePDF samples directions from the cosine-weighted hemisphere around a
// surface normal; it is the PDF half of Lambertian's Diffuse scatter.
type CosinePDF struct {
	basis core.ONB
}

// NewCosinePDF builds a CosinePDF oriented around the given (unit) normal.
func NewCosinePDF(w core.Vec3) *CosinePDF {
	return &CosinePDF{basis: core.NewONBFromW(w)}
}

// Value returns cos(theta)/pi for the angle between direction and the
// PDF's axis, clamped at zero.
func (p *CosinePDF) Value(direction core.Vec3, _ SurfacePoint) float64 {
	cosTheta := direction.Normalize().Dot(p.basis.W)
	if cosTheta <= 0 {
		return 0
	}
	return cosTheta / math.Pi
}

// Generate draws a cosine-weighted direction around the PDF's axis.
func (p *CosinePDF) Generate(rnd *rand.Rand) core.UnitVec3 {
	return p.basis.Local(core.RandomCosineDirection(rnd)).Normalize()
}

// IsotropicPDF samples directions uniformly over the full sphere; it backs
// Isotropic's participating-media scattering.
type IsotropicPDF struct{}

// NewIsotropicPDF builds an IsotropicPDF.
func NewIsotropicPDF() *IsotropicPDF {
	return &IsotropicPDF{}
}

// Value is the constant 1/(4*pi) for every direction.
func (IsotropicPDF) Value(direction core.Vec3, _ SurfacePoint) float64 {
	return 1.0 / (4.0 * math.Pi)
}

// Generate draws a direction uniformly distributed on the unit sphere.
func (IsotropicPDF) Generate(rnd *rand.Rand) core.UnitVec3 {
	return core.RandomUnitVector(rnd)
}
