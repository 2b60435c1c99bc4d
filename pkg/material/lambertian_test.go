package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/mwagner-dev/pathtrace/pkg/core"
)

func TestLambertian_AlwaysScatters(t *testing.T) {
	albedo := core.NewVec3(0.8, 0.8, 0.8)
	lambertian := NewLambertian(albedo)
	random := rand.New(rand.NewSource(42))

	normal := core.NewVec3(0, 0, 1)
	hit := SurfacePoint{Point: core.NewVec3(0, 0, 0), Normal: normal}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	for i := 0; i < 100; i++ {
		scatter, didScatter := lambertian.Scatter(ray, hit, random)
		if !didScatter {
			t.Fatal("Lambertian should always scatter")
		}
		if scatter.Specular {
			t.Fatal("Lambertian scatter should be Diffuse, not Specular")
		}
		if !scatter.Albedo.Equals(albedo) {
			t.Errorf("expected albedo %v, got %v", albedo, scatter.Albedo)
		}

		direction := scatter.PDF.Generate(random)
		cosTheta := direction.Dot(normal)
		if cosTheta < -1e-9 {
			t.Errorf("scattered direction %v below hemisphere (cos=%f)", direction, cosTheta)
		}

		pdfValue := scatter.PDF.Value(direction, hit)
		if pdfValue <= 0 {
			t.Errorf("expected positive PDF value for generated direction, got %f", pdfValue)
		}
		expected := math.Max(0, direction.Dot(normal)) / math.Pi
		if math.Abs(pdfValue-expected) > 1e-9 {
			t.Errorf("PDF.Value = %f, want %f", pdfValue, expected)
		}
	}
}

func TestLambertian_NoEmission(t *testing.T) {
	l := NewLambertian(core.NewVec3(1, 1, 1))
	hit := SurfacePoint{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1)}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	if !l.Emit(ray, hit).IsZero() {
		t.Errorf("Lambertian should never emit")
	}
}
