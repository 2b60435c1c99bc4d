package scene

import (
	"github.com/mwagner-dev/pathtrace/pkg/core"
	"github.com/mwagner-dev/pathtrace/pkg/geometry"
	"github.com/mwagner-dev/pathtrace/pkg/hittable"
	"github.com/mwagner-dev/pathtrace/pkg/material"
	"github.com/mwagner-dev/pathtrace/pkg/renderer"
)

// cornellBoxSize is the standard Cornell-box side length.
const cornellBoxSize = 555.0

// cornellWalls builds the five static walls of a Cornell box (floor,
// ceiling, back, left, right), each wired so its normal points into the
// box interior.
func cornellWalls() []hittable.Object {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	return []hittable.Object{
		geometry.NewXZRect(0, cornellBoxSize, 0, cornellBoxSize, 0, white),
		hittable.NewFlipNormals(geometry.NewXZRect(0, cornellBoxSize, 0, cornellBoxSize, cornellBoxSize, white)),
		hittable.NewFlipNormals(geometry.NewXYRect(0, cornellBoxSize, 0, cornellBoxSize, cornellBoxSize, white)),
		geometry.NewYZRect(0, cornellBoxSize, 0, cornellBoxSize, 0, red),
		hittable.NewFlipNormals(geometry.NewYZRect(0, cornellBoxSize, 0, cornellBoxSize, cornellBoxSize, green)),
	}
}

// cornellLight builds the ceiling area light, normal flipped so it shines
// down into the box.
func cornellLight(scale float64) *hittable.FlipNormals {
	light := material.NewDiffuseLight(core.NewVec3(1, 1, 1), scale)
	return hittable.NewFlipNormals(geometry.NewXZRect(213, 343, 227, 332, cornellBoxSize, light))
}

// NewCornelInstances builds a Cornell box with two rotated-and-translated
// box instances: a matte gray cube and a tall metal cube, the latter also
// serving as an importance-sampling target alongside the ceiling light.
func NewCornelInstances(aspect float64, ttl int) *renderer.Scene {
	objects := cornellWalls()
	light := cornellLight(15.0)
	objects = append(objects, light)

	gray := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	box1 := hittable.NewTranslate(
		hittable.NewRotateY(geometry.NewAABoxUniform(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), gray), -18, defaultTimespan),
		core.NewVec3(130, 0, 65),
	)
	objects = append(objects, box1)

	metal := material.NewMetal(core.NewVec3(1, 1, 1), 0)
	shinyBox := hittable.NewTranslate(
		hittable.NewRotateY(geometry.NewAABoxUniform(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), metal), 15, defaultTimespan),
		core.NewVec3(265, 0, 295),
	)
	objects = append(objects, shinyBox)

	world := hittable.NewList(objects...)
	return &renderer.Scene{
		World:      world,
		Important:  hittable.NewImportantList(shinyBox, light),
		View:       cornellCam(aspect, ttl),
		MissShader: missBlack,
	}
}

// NewCornelIS builds a Cornell box tuned to exercise importance sampling:
// a fog-filled rotated box, a mixed-material metal-backed box, and a
// glass sphere, with the sphere and the ceiling light as the explicit
// importance targets.
func NewCornelIS(aspect float64, ttl int) *renderer.Scene {
	objects := cornellWalls()
	light := cornellLight(10.0)
	objects = append(objects, light)

	magenta := material.NewLambertian(core.NewVec3(1, 0, 1))
	fogBoundary := hittable.NewTranslate(
		hittable.NewRotateY(geometry.NewAABoxUniform(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), magenta), -18, defaultTimespan),
		core.NewVec3(130, 0, 65),
	)
	fog := geometry.NewConstantMedium(fogBoundary, 0.01, core.NewVec3(1, 1, 1))
	objects = append(objects, fog)

	lamb := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	metal := material.NewMetal(core.NewVec3(1, 1, 1), 0)
	shinyBox := hittable.NewTranslate(
		hittable.NewRotateY(geometry.NewAABox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165),
			geometry.FaceMaterials{Front: lamb, Back: metal, Top: lamb, Bottom: lamb, Left: lamb, Right: lamb}),
			15, defaultTimespan),
		core.NewVec3(265, 0, 295),
	)
	objects = append(objects, shinyBox)

	glassSphere := hittable.NewTranslate(
		geometry.NewSphere(core.NewVec3(-87.5, 87.5, -12.5), 88.5, material.NewDielectric(1.5)),
		core.NewVec3(130, 0, 65).Add(core.NewVec3(165, 165, 165)),
	)
	objects = append(objects, glassSphere)

	world := hittable.NewList(objects...)
	return &renderer.Scene{
		World:      world,
		Important:  hittable.NewImportantList(glassSphere, light),
		View:       cornellCam(aspect, ttl),
		MissShader: missBlack,
	}
}

// NewCornelVolumes builds a Cornell box with two constant-density media in
// place of solid boxes: a white fog cube and a black smoke slab, lit by a
// dim ceiling light.
func NewCornelVolumes(aspect float64, ttl int) *renderer.Scene {
	objects := cornellWalls()
	light := cornellLight(7.0)
	objects = append(objects, light)

	magenta := material.NewLambertian(core.NewVec3(1, 0, 1))
	fogBoundary := hittable.NewTranslate(
		hittable.NewRotateY(geometry.NewAABoxUniform(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), magenta), -18, defaultTimespan),
		core.NewVec3(130, 0, 65),
	)
	objects = append(objects, geometry.NewConstantMedium(fogBoundary, 0.01, core.NewVec3(1, 1, 1)))

	green := material.NewLambertian(core.NewVec3(0, 1, 0))
	smokeBoundary := hittable.NewTranslate(
		hittable.NewRotateY(geometry.NewAABoxUniform(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), green), 15, defaultTimespan),
		core.NewVec3(265, 0, 295),
	)
	objects = append(objects, geometry.NewConstantMedium(smokeBoundary, 0.01, core.Vec3{}))

	world := hittable.NewList(objects...)
	return &renderer.Scene{
		World:      world,
		Important:  hittable.NewImportantList(light),
		View:       cornellCam(aspect, ttl),
		MissShader: missDark,
	}
}
