// Package core holds the vector algebra, bounding boxes, rays and RNG
// helpers shared by every other package in the tracer.
package core

import (
	"fmt"
	"math"
	"math/rand"
)

// Vec3 represents a 3D vector. Point3 and UnitVec3 are named variants of the
// same representation: a Point3 marks a position, a UnitVec3 marks a
// direction known (by its constructor) to have unit length.
type Vec3 struct {
	X, Y, Z float64
}

// Point3 is a Vec3 used as a position rather than a displacement.
type Point3 = Vec3

// UnitVec3 is a Vec3 whose length is 1 within floating point tolerance.
// Construct one with NewUnitVec3, which normalizes, or UnitVec3Unchecked
// when the caller already knows the vector is unit length.
type UnitVec3 = Vec3

// Vec2 represents a 2D vector, used for surface (u, v) coordinates.
type Vec2 struct {
	X, Y float64
}

// NewVec3 creates a new Vec3.
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// NewVec2 creates a new Vec2.
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// NewUnitVec3 normalizes v and returns it as a UnitVec3.
func NewUnitVec3(v Vec3) UnitVec3 {
	return v.Normalize()
}

// Add returns the sum of two Vec2 values.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Multiply returns the Vec2 scaled by a scalar.
func (v Vec2) Multiply(scalar float64) Vec2 {
	return Vec2{v.X * scalar, v.Y * scalar}
}

func (v Vec3) String() string {
	return fmt.Sprintf("{%.3g, %.3g, %.3g}", v.X, v.Y, v.Z)
}

// Add returns the sum of two vectors.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors.
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar.
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Length returns the magnitude of the vector.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the squared magnitude of the vector.
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// AbsDot returns the absolute value of the dot product of two vectors.
func (v Vec3) AbsDot(other Vec3) float64 {
	return math.Abs(v.Dot(other))
}

// Clamp returns a vector with components clamped to [min, max].
func (v Vec3) Clamp(minVal, maxVal float64) Vec3 {
	return Vec3{
		X: max(minVal, min(maxVal, v.X)),
		Y: max(minVal, min(maxVal, v.Y)),
		Z: max(minVal, min(maxVal, v.Z)),
	}
}

// GammaCorrect raises each component to 1/gamma, after the caller has
// clamped to [0, 1]. Fixes 0 and 1 exactly and is monotonic on [0, 1].
func (v Vec3) GammaCorrect(gamma float64) Vec3 {
	invGamma := 1.0 / gamma
	return Vec3{
		X: math.Pow(v.X, invGamma),
		Y: math.Pow(v.Y, invGamma),
		Z: math.Pow(v.Z, invGamma),
	}
}

// Normalize returns a unit vector in the same direction.
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return Vec3{0, 0, 0}
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

// Cross returns the cross product of two vectors.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// MultiplyVec returns the component-wise product of two vectors.
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{
		X: v.X * other.X,
		Y: v.Y * other.Y,
		Z: v.Z * other.Z,
	}
}

// Index returns the component of v on the given axis (0=X, 1=Y, 2=Z).
func (v Vec3) Index(axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Luminance returns the perceptual luminance of an RGB color using the
// Rec. 709 weights.
func (v Vec3) Luminance() float64 {
	return 0.2126*v.X + 0.7152*v.Y + 0.0722*v.Z
}

// IsZero returns true if the vector is exactly zero.
func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Negate returns the negative of the vector.
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Equals compares two Vec3 values with a small tolerance for floating
// point precision.
func (v Vec3) Equals(other Vec3) bool {
	const tolerance = 1e-9
	return math.Abs(v.X-other.X) < tolerance &&
		math.Abs(v.Y-other.Y) < tolerance &&
		math.Abs(v.Z-other.Z) < tolerance
}

// NearZero returns true if every component is close to zero; used to catch
// degenerate scatter directions before they are normalized.
func (v Vec3) NearZero() bool {
	const eps = 1e-8
	return math.Abs(v.X) < eps && math.Abs(v.Y) < eps && math.Abs(v.Z) < eps
}

// IsFinite reports whether every component is finite (not NaN or +/-Inf).
func (v Vec3) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}

// Reflect reflects v about a unit normal n.
func (v Vec3) Reflect(n Vec3) Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refract refracts a unit vector v through a surface with unit normal n
// (pointing against v) and relative refraction index etaiOverEtat. The
// second return value is false on total internal reflection.
func (v Vec3) Refract(n Vec3, etaiOverEtat float64) (Vec3, bool) {
	cosTheta := math.Min(n.Negate().Dot(v), 1.0)
	rOutPerp := v.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	k := 1.0 - rOutPerp.LengthSquared()
	if k < 0 {
		return Vec3{}, false
	}
	rOutParallel := n.Multiply(-math.Sqrt(k))
	return rOutPerp.Add(rOutParallel), true
}

// RandomInUnitSphere returns a uniformly distributed point inside the unit
// ball, via rejection sampling.
func RandomInUnitSphere(rnd *rand.Rand) Vec3 {
	for {
		p := NewVec3(2*rnd.Float64()-1, 2*rnd.Float64()-1, 2*rnd.Float64()-1)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomUnitVector returns a uniformly distributed direction on the unit
// sphere.
func RandomUnitVector(rnd *rand.Rand) UnitVec3 {
	return RandomInUnitSphere(rnd).Normalize()
}

// RandomInUnitDisk returns a uniformly distributed point inside the unit
// disk in the XY plane (Z = 0), used for thin-lens aperture sampling.
func RandomInUnitDisk(rnd *rand.Rand) Vec3 {
	for {
		p := NewVec3(2*rnd.Float64()-1, 2*rnd.Float64()-1, 0)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomCosineDirection samples a direction from the cosine-weighted
// hemisphere around +Z, for use by CosinePDF after an ONB transform.
func RandomCosineDirection(rnd *rand.Rand) Vec3 {
	r1 := rnd.Float64()
	r2 := rnd.Float64()
	phi := 2 * math.Pi * r1
	sqrtR2 := math.Sqrt(r2)
	x := math.Cos(phi) * sqrtR2
	y := math.Sin(phi) * sqrtR2
	z := math.Sqrt(1 - r2)
	return NewVec3(x, y, z)
}

// RotateAroundAxis rotates v by angleRadians about a unit axis, using
// Rodrigues' rotation formula.
func (v Vec3) RotateAroundAxis(axis UnitVec3, angleRadians float64) Vec3 {
	cosT := math.Cos(angleRadians)
	sinT := math.Sin(angleRadians)
	return v.Multiply(cosT).
		Add(axis.Cross(v).Multiply(sinT)).
		Add(axis.Multiply(axis.Dot(v) * (1 - cosT)))
}

// Lerp linearly interpolates between a and b by t in [0, 1].
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Lerp3 linearly interpolates between two vectors by t in [0, 1].
func Lerp3(a, b Vec3, t float64) Vec3 {
	return a.Add(b.Subtract(a).Multiply(t))
}
