package scene

import (
	"math/rand"

	"github.com/mwagner-dev/pathtrace/pkg/core"
	"github.com/mwagner-dev/pathtrace/pkg/geometry"
	"github.com/mwagner-dev/pathtrace/pkg/hittable"
	"github.com/mwagner-dev/pathtrace/pkg/material"
	"github.com/mwagner-dev/pathtrace/pkg/renderer"
)

// weekendComplexity is the scatter field's half-width: a (2*complexity+1)^2
// grid of candidate small-sphere positions around the three hero spheres.
const weekendComplexity = 11

// NewWeekendFinal builds the "Ray Tracing in One Weekend" finale: a
// checkered ground plane, three hero spheres (metal, glass, lambertian),
// and a scattered field of small spheres with randomized material and, for
// most of them, a short vertical motion blur.
func NewWeekendFinal(aspect float64, ttl int) *renderer.Scene {
	rnd := newSceneRand()

	objects := []hittable.Object{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000,
			material.NewLambertianTextured(material.NewCheckerTexture(10, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9)))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0)),
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.8, 0.8, 0.9))),
	}

	avoid := core.NewVec3(4, 0.2, 0)
	for a := -weekendComplexity; a <= weekendComplexity; a++ {
		for b := -weekendComplexity; b <= weekendComplexity; b++ {
			center := core.NewVec3(0.9*rnd.Float64()+float64(a), 0.2, 0.9*rnd.Float64()+float64(b))
			if center.Subtract(avoid).Length() <= 0.9 {
				continue
			}
			objects = append(objects, weekendScatterSphere(rnd, center))
		}
	}

	world := hittable.NewBVH(objects, defaultTimespan)
	return &renderer.Scene{
		World:      world,
		Important:  emptyImportant(),
		View:       bookCam(aspect, ttl),
		MissShader: skyMissShader,
	}
}

func weekendScatterSphere(rnd *rand.Rand, center core.Vec3) hittable.Object {
	switch pick := rnd.Intn(100); {
	case pick < 80:
		albedo := randomColor(rnd).MultiplyVec(randomColor(rnd))
		center1 := center.Add(core.NewVec3(0, 0.5*rnd.Float64(), 0))
		return geometry.NewMovingSphere(center, center1, defaultTimespan, 0.2, material.NewLambertian(albedo))
	case pick < 95:
		albedo := randomColor(rnd).Add(core.NewVec3(1, 1, 1)).Multiply(0.5)
		return geometry.NewSphere(center, 0.2, material.NewMetal(albedo, 0))
	default:
		return geometry.NewSphere(center, 0.2, material.NewDielectric(1.5))
	}
}

func randomColor(rnd *rand.Rand) core.Vec3 {
	return core.NewVec3(rnd.Float64(), rnd.Float64(), rnd.Float64())
}
