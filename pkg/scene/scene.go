// Package scene wires the primitives, materials and camera of pkg/geometry,
// pkg/material and pkg/camera into the six scenes the CLI names: the
// "Ray Tracing in One Weekend" random-sphere finale, a Perlin-noise marble
// study, three Cornell-box variants exercising instancing, importance
// sampling, and volumetric media, and the "Ray Tracing: The Next Week"
// finale. Each factory returns a *renderer.Scene
// ready to hand to a renderer.Sampler.
package scene

import (
	"math/rand"

	"github.com/mwagner-dev/pathtrace/pkg/camera"
	"github.com/mwagner-dev/pathtrace/pkg/core"
	"github.com/mwagner-dev/pathtrace/pkg/hittable"
	"github.com/mwagner-dev/pathtrace/pkg/renderer"
)

// sceneSeed seeds every scene factory's RNG. Scene content (sphere
// scatter, noise tables) must be reproducible across runs of the same
// subcommand, so this is a fixed seed rather than a time-based one.
const sceneSeed = 42

// defaultTimespan is the shutter window used by every scene; only
// weekend_final and next_week_final actually move anything within it.
var defaultTimespan = core.Timespan{Start: 0.0, End: 0.2}

// skyMissShader is the pale blue-to-white gradient background used by the
// weekend_final scene.
func skyMissShader(ray core.Ray) core.Vec3 {
	t := 0.5 * (ray.Direction.Normalize().Y + 1.0)
	white := core.NewVec3(1, 1, 1)
	blue := core.NewVec3(0.5, 0.7, 1.0)
	return core.Lerp3(white, blue, t)
}

// flatMissShader returns a constant background color, used by scenes whose
// only light source is an emissive object inside the scene.
func flatMissShader(color core.Vec3) renderer.MissShader {
	return func(core.Ray) core.Vec3 { return color }
}

var (
	missBlack      = flatMissShader(core.Vec3{})
	missDark       = flatMissShader(core.NewVec3(0.05088, 0.05088, 0.05088))
	missPerlinGray = flatMissShader(core.NewVec3(0.3, 0.3, 0.3))
)

// lookCam builds a thin-lens View from the look-at parameters every scene
// in this package shares: width/height pick the aspect ratio, the rest
// pins position, framing and depth of field.
func lookCam(from, at, up core.Point3, vfov, aspect, focusDistance, aperture float64, ttl int) *camera.View {
	return camera.NewView(from, at, up, vfov, aspect, focusDistance, aperture, defaultTimespan, ttl)
}

// bookCam is the classic "Ray Tracing in One Weekend"/perlin vantage point:
// elevated, looking down at the origin, no depth of field.
func bookCam(aspect float64, ttl int) *camera.View {
	return lookCam(
		core.NewVec3(13, 2, 3), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0),
		40.0, aspect, 10.0, 0.0, ttl,
	)
}

// cornellCam is the standard Cornell-box vantage point, looking into the
// box from just outside its open face.
func cornellCam(aspect float64, ttl int) *camera.View {
	return lookCam(
		core.NewVec3(278, 278, -680), core.NewVec3(278, 278, 0), core.NewVec3(0, 1, 0),
		80.0, aspect, 2.0, 0.0, ttl,
	)
}

// nextWeekCam is the "Ray Tracing: The Next Week" finale's wide establishing
// shot over the box field.
func nextWeekCam(aspect float64, ttl int) *camera.View {
	return lookCam(
		core.NewVec3(478, 278, -680), core.NewVec3(278, 300, 0), core.NewVec3(0, 1, 0),
		62.0, aspect, 2.0, 0.0, ttl,
	)
}

// newSceneRand returns the RNG every scene factory draws its procedural
// content from.
func newSceneRand() *rand.Rand {
	return rand.New(rand.NewSource(sceneSeed))
}

// emptyImportant is the importance-sampling target for scenes with no
// direct-light target worth sampling explicitly: the Monte Carlo renderer
// recognizes an empty ImportantList and samples each surface's material
// PDF alone.
func emptyImportant() hittable.ImportantObject {
	return hittable.NewImportantList()
}
