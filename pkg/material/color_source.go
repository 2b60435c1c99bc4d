package material

import (
	"math"

	"github.com/mwagner-dev/pathtrace/pkg/core"
)

// SolidColor is a ColorSource returning a single fixed color everywhere.
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source.
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of UV or position.
func (s *SolidColor) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	return s.Color
}

// CheckerTexture alternates between two ColorSources in a 3D checker
// pattern, the sign of sin(scale*x)*sin(scale*y)*sin(scale*z) choosing
// which.
type CheckerTexture struct {
	Odd, Even ColorSource
	Scale     float64
}

// NewCheckerTexture creates a checker texture from two flat colors.
func NewCheckerTexture(scale float64, odd, even core.Vec3) *CheckerTexture {
	return &CheckerTexture{Odd: NewSolidColor(odd), Even: NewSolidColor(even), Scale: scale}
}

// Evaluate samples the odd or even source depending on which octant of the
// checker lattice point falls in.
func (c *CheckerTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	sines := math.Sin(c.Scale*point.X) * math.Sin(c.Scale*point.Y) * math.Sin(c.Scale*point.Z)
	if sines < 0 {
		return c.Odd.Evaluate(uv, point)
	}
	return c.Even.Evaluate(uv, point)
}
