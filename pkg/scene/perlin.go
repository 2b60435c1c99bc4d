package scene

import (
	"github.com/mwagner-dev/pathtrace/pkg/core"
	"github.com/mwagner-dev/pathtrace/pkg/geometry"
	"github.com/mwagner-dev/pathtrace/pkg/hittable"
	"github.com/mwagner-dev/pathtrace/pkg/material"
	"github.com/mwagner-dev/pathtrace/pkg/renderer"
)

// NewPerlin builds a study of four Perlin-noise marble spheres: a huge
// ground sphere and three smaller spheres (two at the ground's noise
// frequency of 4, one at 5),
// lit only by a flat gray miss shader (there is no explicit light source).
func NewPerlin(aspect float64, ttl int) *renderer.Scene {
	rnd := newSceneRand()

	objects := []hittable.Object{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000,
			material.NewLambertianTextured(material.NewNoiseTexture(rnd, 4.0))),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2,
			material.NewLambertianTextured(material.NewNoiseTexture(rnd, 4.0))),
		geometry.NewSphere(core.NewVec3(0, 2, 4), 2,
			material.NewLambertianTextured(material.NewNoiseTexture(rnd, 4.0))),
		geometry.NewSphere(core.NewVec3(0, 2, -4), 2,
			material.NewLambertianTextured(material.NewNoiseTexture(rnd, 5.0))),
	}

	world := hittable.NewList(objects...)
	return &renderer.Scene{
		World:      world,
		Important:  emptyImportant(),
		View:       bookCam(aspect, ttl),
		MissShader: missPerlinGray,
	}
}
