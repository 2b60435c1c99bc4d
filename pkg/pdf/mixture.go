package pdf

import (
	"math/rand"

	"github.com/mwagner-dev/pathtrace/pkg/core"
	"github.com/mwagner-dev/pathtrace/pkg/material"
)

// Mixture combines two PDFs by linear interpolation, the standard way to
// blend a surface's own BRDF-importance PDF (e.g. CosinePDF) with a
// light-importance PDF (HittablePDF) for multiple importance sampling.
type Mixture struct {
	A, B    material.PDF
	AWeight float64
}

// NewMixture builds a PDF that samples a with probability aWeight and b
// otherwise.
func NewMixture(a, b material.PDF, aWeight float64) *Mixture {
	return &Mixture{A: a, B: b, AWeight: aWeight}
}

// Value returns the weighted average of the two component densities.
func (m *Mixture) Value(direction core.Vec3, hit material.SurfacePoint) float64 {
	return m.AWeight*m.A.Value(direction, hit) + (1-m.AWeight)*m.B.Value(direction, hit)
}

// Generate draws from A with probability AWeight, otherwise from B.
func (m *Mixture) Generate(rnd *rand.Rand) core.UnitVec3 {
	if rnd.Float64() < m.AWeight {
		return m.A.Generate(rnd)
	}
	return m.B.Generate(rnd)
}
