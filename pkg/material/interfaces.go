// Package material implements the Material capability set: emission,
// scattering, and the ColorSource textures that supply spatially varying
// albedo.
package material

import (
	"math/rand"

	"github.com/mwagner-dev/pathtrace/pkg/core"
)

// SurfacePoint is the minimal surface-local information a material needs
// to scatter or emit: the hit point, its geometric normal, and its (u, v)
// texture coordinates. It deliberately does not reference pkg/hittable's
// Hit, so this package stays a leaf dependency.
type SurfacePoint struct {
	Point  core.Point3
	Normal core.UnitVec3
	UV     core.Vec2
}

// PDF is the probability-density capability a Material hands back for the
// diffuse half of Scatter. It is defined here rather than in pkg/pdf,
// since pkg/pdf depends on pkg/hittable, which in turn depends on this
// package for Hit.Material; pkg/pdf's HittablePDF and Mixture implement it.
type PDF interface {
	Value(direction core.Vec3, hit SurfacePoint) float64
	Generate(rnd *rand.Rand) core.UnitVec3
}

// Scatter is the sum type a Material's Scatter method returns: either a
// single deterministic specular bounce, or a diffuse PDF plus albedo for
// importance-sampled bounces.
type Scatter struct {
	Specular bool

	SpecularRay core.Ray
	Attenuation core.Vec3

	PDF    PDF
	Albedo core.Vec3
}

// NewSpecularScatter builds the Specular branch of Scatter.
func NewSpecularScatter(ray core.Ray, attenuation core.Vec3) Scatter {
	return Scatter{Specular: true, SpecularRay: ray, Attenuation: attenuation}
}

// NewDiffuseScatter builds the Diffuse branch of Scatter.
func NewDiffuseScatter(pdf PDF, albedo core.Vec3) Scatter {
	return Scatter{Specular: false, PDF: pdf, Albedo: albedo}
}

// Material is the capability set every surface material implements. Emit
// supplies any self-emitted radiance (zero for non-emissive materials);
// Scatter returns the outgoing direction distribution, or false if the
// material absorbs (e.g. a light with no scatter component).
type Material interface {
	Emit(rayIn core.Ray, hit SurfacePoint) core.Vec3
	Scatter(rayIn core.Ray, hit SurfacePoint, rnd *rand.Rand) (Scatter, bool)
}

// ColorSource provides spatially varying color, for image and procedural
// textures as well as flat colors.
type ColorSource interface {
	Evaluate(uv core.Vec2, point core.Vec3) core.Vec3
}
