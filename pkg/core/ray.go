package core

// Ray represents a ray with an origin and a (not necessarily normalized)
// direction.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray.
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// NewRayTo creates a ray from origin toward target, with a normalized
// direction.
func NewRayTo(origin, target Vec3) Ray {
	return NewRay(origin, target.Subtract(origin).Normalize())
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Timespan is the half-open shutter interval [Start, End) over which
// motion-blurred primitives are integrated.
type Timespan struct {
	Start, End float64
}

// At linearly interpolates within the timespan: At(0) == Start, At(1) == End.
func (t Timespan) At(u float64) float64 {
	return Lerp(t.Start, t.End, u)
}

// RayCtx is a Ray plus the time at which it is cast (for motion blur) and
// the remaining bounce budget (TTL).
type RayCtx struct {
	Ray  Ray
	Time float64
	TTL  int
}

// NewRayCtx creates a RayCtx at time 0 with the given bounce budget.
func NewRayCtx(ray Ray, ttl int) RayCtx {
	return RayCtx{Ray: ray, Time: 0, TTL: ttl}
}

// Produce derives a new RayCtx continuing this path from origin in
// direction, carrying forward time and decrementing TTL by one.
func (rc RayCtx) Produce(origin, direction Vec3) RayCtx {
	return RayCtx{
		Ray:  NewRay(origin, direction),
		Time: rc.Time,
		TTL:  rc.TTL - 1,
	}
}

// Done reports whether this path has exhausted its bounce budget.
func (rc RayCtx) Done() bool {
	return rc.TTL <= 0
}
