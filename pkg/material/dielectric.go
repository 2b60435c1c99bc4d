package material

import (
	"math"
	"math/rand"

	"github.com/mwagner-dev/pathtrace/pkg/core"
)

// Dielectric is a transparent material, such as glass or water, that both
// reflects and refracts.
type Dielectric struct {
	RefractiveIndex float64
	Albedo          core.Vec3
}

// NewDielectric creates a clear (white-attenuating) dielectric material.
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex, Albedo: core.NewVec3(1, 1, 1)}
}

// Emit returns zero; Dielectric does not emit.
func (d *Dielectric) Emit(rayIn core.Ray, hit SurfacePoint) core.Vec3 {
	return core.Vec3{}
}

// Scatter reflects or refracts the incoming ray depending on Snell's law
// and the Schlick reflectance approximation.
func (d *Dielectric) Scatter(rayIn core.Ray, hit SurfacePoint, rnd *rand.Rand) (Scatter, bool) {
	unitDirection := rayIn.Direction.Normalize()
	frontFace := unitDirection.Dot(hit.Normal) < 0

	outwardNormal := hit.Normal
	refractionRatio := d.RefractiveIndex
	if frontFace {
		outwardNormal = hit.Normal
		refractionRatio = 1.0 / d.RefractiveIndex
	} else {
		outwardNormal = hit.Normal.Negate()
	}

	cosTheta := math.Min(outwardNormal.Negate().Dot(unitDirection), 1.0)
	sinTheta := math.Sqrt(math.Max(0, 1.0-cosTheta*cosTheta))
	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	attenuation := d.Albedo
	if cannotRefract || Reflectance(cosTheta, refractionRatio) > rnd.Float64() {
		direction = unitDirection.Reflect(outwardNormal)
		attenuation = core.NewVec3(1, 1, 1)
	} else {
		refracted, ok := unitDirection.Refract(outwardNormal, refractionRatio)
		if !ok {
			direction = unitDirection.Reflect(outwardNormal)
			attenuation = core.NewVec3(1, 1, 1)
		} else {
			direction = refracted
		}
	}

	return NewSpecularScatter(core.NewRay(hit.Point, direction), attenuation), true
}

// Reflectance computes the Fresnel reflectance via Schlick's approximation:
// r0 = ((1-eta)/(1+eta))^2, F(cos) = r0 + (1-r0)*(1-cos)^5.
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
