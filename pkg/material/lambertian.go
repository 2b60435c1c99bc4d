package material

import (
	"math/rand"

	"github.com/mwagner-dev/pathtrace/pkg/core"
)

// Lambertian is a perfectly diffuse material: it always scatters, with a
// cosine-weighted PDF around the surface normal.
type Lambertian struct {
	Albedo ColorSource
}

// NewLambertian creates a Lambertian material from a flat color.
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewLambertianTextured creates a Lambertian material from any ColorSource.
func NewLambertianTextured(albedo ColorSource) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Emit returns zero; Lambertian surfaces do not emit.
func (l *Lambertian) Emit(rayIn core.Ray, hit SurfacePoint) core.Vec3 {
	return core.Vec3{}
}

// Scatter always returns a Diffuse scatter: a CosinePDF around the normal,
// and the surface's albedo at this point.
func (l *Lambertian) Scatter(rayIn core.Ray, hit SurfacePoint, rnd *rand.Rand) (Scatter, bool) {
	albedo := l.Albedo.Evaluate(hit.UV, hit.Point)
	return NewDiffuseScatter(NewCosinePDF(hit.Normal), albedo), true
}
