package pdf

import (
	"math/rand"
	"testing"

	"github.com/mwagner-dev/pathtrace/pkg/core"
	"github.com/mwagner-dev/pathtrace/pkg/material"
)

type constPDF struct {
	value     float64
	direction core.UnitVec3
}

func (c constPDF) Value(_ core.Vec3, _ material.SurfacePoint) float64 { return c.value }
func (c constPDF) Generate(_ *rand.Rand) core.UnitVec3                { return c.direction }

func TestMixtureValueIsWeightedAverage(t *testing.T) {
	a := constPDF{value: 1.0}
	b := constPDF{value: 0.0}
	mix := NewMixture(a, b, 0.25)

	got := mix.Value(core.Vec3{}, material.SurfacePoint{})
	want := 0.25
	if got != want {
		t.Errorf("Value() = %f, want %f", got, want)
	}
}

func TestMixtureGenerateRespectsWeight(t *testing.T) {
	a := constPDF{direction: core.NewVec3(1, 0, 0)}
	b := constPDF{direction: core.NewVec3(0, 1, 0)}
	mix := NewMixture(a, b, 1.0)

	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		if got := mix.Generate(rnd); got != a.direction {
			t.Errorf("Generate() = %v, want always A's direction %v when AWeight=1", got, a.direction)
		}
	}

	mixB := NewMixture(a, b, 0.0)
	for i := 0; i < 20; i++ {
		if got := mixB.Generate(rnd); got != b.direction {
			t.Errorf("Generate() = %v, want always B's direction %v when AWeight=0", got, b.direction)
		}
	}
}
