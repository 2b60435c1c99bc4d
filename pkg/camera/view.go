// Package camera builds primary rays for a thin-lens perspective camera:
// vertical field of view and aspect ratio pick the image plane, focus
// distance and aperture control depth of field, and a shutter timespan
// assigns each ray a sample time for motion blur.
package camera

import (
	"math"
	"math/rand"

	"github.com/mwagner-dev/pathtrace/pkg/core"
)

// View is the camera as the renderer sees it: it turns a screen-space
// sample (s, t) in [0, 1]x[0, 1] into a traceable RayCtx, complete with a
// shutter time and a bounce budget.
type View struct {
	lens     lensCamera
	Timespan core.Timespan
	TTL      int
}

// NewView builds a View looking from `from` toward `at`, with `up` giving
// the world-up hint used to orient the image plane. vfov is the vertical
// field of view in degrees; aspect is width/height. focusDistance and
// aperture control depth of field (aperture 0 disables lens blur).
func NewView(from, at, up core.Point3, vfov, aspect, focusDistance, aperture float64, timespan core.Timespan, ttl int) *View {
	return &View{
		lens:     newLensCamera(from, at, up, vfov, aspect, focusDistance, aperture),
		Timespan: timespan,
		TTL:      ttl,
	}
}

// Ray generates a primary ray for screen coordinates (s, t), sampling the
// lens aperture and shutter time with rnd.
func (v *View) Ray(s, t float64, rnd *rand.Rand) core.RayCtx {
	ray := v.lens.ray(s, t, rnd)
	time := v.Timespan.At(rnd.Float64())
	return core.RayCtx{Ray: ray, Time: time, TTL: v.TTL}
}

// lensCamera is the thin-lens projection itself, independent of time
// sampling: an orthonormal basis oriented by (from, at, up), a half-width
// and half-height derived from vfov/aspect, and a lens radius for
// depth-of-field defocus.
type lensCamera struct {
	origin                core.Point3
	basis                 core.ONB
	halfWidth, halfHeight float64
	focusDistance         float64
	lensRadius            float64
}

func newLensCamera(from, at, up core.Point3, vfov, aspect, focusDistance, aperture float64) lensCamera {
	theta := vfov * math.Pi / 180
	halfHeight := math.Tan(theta / 2)
	halfWidth := aspect * halfHeight

	basis := core.NewONBFromUpW(up, from.Subtract(at))

	return lensCamera{
		origin:        from,
		basis:         basis,
		halfWidth:     halfWidth,
		halfHeight:    halfHeight,
		focusDistance: focusDistance,
		lensRadius:    aperture / 2,
	}
}

func (c lensCamera) ray(s, t float64, rnd *rand.Rand) core.Ray {
	disk := core.RandomInUnitDisk(rnd).Multiply(c.lensRadius)
	offset := c.basis.Local(disk)

	local := core.NewVec3(c.halfWidth*(2*s-1), c.halfHeight*(2*t-1), -1).Multiply(c.focusDistance)
	point := c.basis.Local(local)

	direction := point.Subtract(offset).Normalize()
	origin := c.origin.Add(offset)
	return core.NewRay(origin, direction)
}
