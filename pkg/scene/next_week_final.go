package scene

import (
	"github.com/mwagner-dev/pathtrace/pkg/core"
	"github.com/mwagner-dev/pathtrace/pkg/geometry"
	"github.com/mwagner-dev/pathtrace/pkg/hittable"
	"github.com/mwagner-dev/pathtrace/pkg/material"
	"github.com/mwagner-dev/pathtrace/pkg/renderer"
)

// nextWeekGridSize is the side length (in boxes) of the undulating ground
// field.
const nextWeekGridSize = 20

// NewNextWeekFinal builds the "Ray Tracing: The Next Week" finale: an
// undulating field of green boxes, a moving sphere, a fuzzed metal sphere,
// a glass sphere paired with its own blue interior fog, a whole-scene thin
// haze, an image-textured sphere, a Perlin marble sphere, and a cluster of
// small matte spheres. Returns an error only if the stone texture fails to
// load.
func NewNextWeekFinal(aspect float64, ttl int) (*renderer.Scene, error) {
	rnd := newSceneRand()
	var objects []hittable.Object

	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	boxes := make([]hittable.Object, 0, nextWeekGridSize*nextWeekGridSize)
	const boxWidth = 100.0
	for i := 0; i < nextWeekGridSize; i++ {
		for j := 0; j < nextWeekGridSize; j++ {
			x0 := -1000.0 + float64(i)*boxWidth
			z0 := -1000.0 + float64(j)*boxWidth
			y1 := 100.0 * (rnd.Float64() + 0.001)
			boxes = append(boxes, geometry.NewAABoxUniform(
				core.NewVec3(x0, 0, z0), core.NewVec3(x0+boxWidth, y1, z0+boxWidth), ground,
			))
		}
	}
	objects = append(objects, hittable.NewBVH(boxes, defaultTimespan))

	light := hittable.NewFlipNormals(geometry.NewXZRect(123, 423, 147, 412, 554,
		material.NewDiffuseLight(core.NewVec3(1, 1, 1), 7.0)))
	objects = append(objects, light)

	movingCenter := core.NewVec3(400, 400, 200)
	objects = append(objects, geometry.NewMovingSphere(
		movingCenter, movingCenter.Add(core.NewVec3(30, 0, 0)), defaultTimespan, 50,
		material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1)),
	))

	objects = append(objects, geometry.NewSphere(core.NewVec3(0, 150, 145), 50,
		material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 10.0)))

	glassCenter := core.NewVec3(260, 150, 45)
	glassSphere := geometry.NewSphere(glassCenter, 50, material.NewDielectric(1.5))
	objects = append(objects, glassSphere)
	fogBoundary := geometry.NewSphere(glassCenter, 50, material.NewDielectric(1.5))
	objects = append(objects, geometry.NewConstantMedium(fogBoundary, 0.2, core.NewVec3(0.2, 0.4, 0.9)))

	hazeBoundary := geometry.NewSphere(core.Vec3{}, 5000, material.NewDielectric(1.5))
	objects = append(objects, geometry.NewConstantMedium(hazeBoundary, 0.0001, core.NewVec3(1, 1, 1)))

	stone, err := material.NewImageTexture("./textures/stone.png")
	if err != nil {
		return nil, err
	}
	objects = append(objects, geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewLambertianTextured(stone)))

	objects = append(objects, geometry.NewSphere(core.NewVec3(220, 280, 300), 80,
		material.NewLambertianTextured(material.NewNoiseTexture(rnd, 0.1))))

	foamMat := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	foam := make([]hittable.Object, 0, 1000)
	for i := 0; i < 1000; i++ {
		center := core.NewVec3(165*rnd.Float64(), 165*rnd.Float64(), 165*rnd.Float64())
		foam = append(foam, geometry.NewSphere(center, 10, foamMat))
	}
	objects = append(objects, hittable.NewIsometry(
		hittable.NewBVH(foam, defaultTimespan), core.NewVec3(0, 1, 0), 15, core.NewVec3(-100, 270, 395), defaultTimespan,
	))

	world := hittable.NewList(objects...)
	return &renderer.Scene{
		World:      world,
		Important:  hittable.NewImportantList(light),
		View:       nextWeekCam(aspect, ttl),
		MissShader: missBlack,
	}, nil
}
