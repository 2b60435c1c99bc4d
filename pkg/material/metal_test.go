package material

import (
	"math/rand"
	"testing"

	"github.com/mwagner-dev/pathtrace/pkg/core"
)

func TestNewMetal_FuzzClamp(t *testing.T) {
	tests := []struct {
		name       string
		inputFuzz  float64
		wantFuzz   float64
	}{
		{"valid 0.0", 0.0, 0.0},
		{"valid 0.5", 0.5, 0.5},
		{"valid 1.0", 1.0, 1.0},
		{"clamp above 1.0", 1.5, 1.0},
		{"clamp below 0.0", -0.5, 0.0},
	}

	albedo := core.NewVec3(0.8, 0.8, 0.8)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metal := NewMetal(albedo, tt.inputFuzz)
			if metal.Fuzz != tt.wantFuzz {
				t.Errorf("expected fuzz %f, got %f", tt.wantFuzz, metal.Fuzz)
			}
		})
	}
}

func TestMetal_PerfectReflection(t *testing.T) {
	albedo := core.NewVec3(0.9, 0.9, 0.9)
	metal := NewMetal(albedo, 0.0)
	random := rand.New(rand.NewSource(42))

	rayIn := core.NewRay(core.NewVec3(0, 1, 1), core.NewVec3(0, -1, -1).Normalize())
	hit := SurfacePoint{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1)}

	scatter, didScatter := metal.Scatter(rayIn, hit, random)
	if !didScatter {
		t.Fatal("Metal should scatter")
	}
	if !scatter.Specular {
		t.Fatal("Metal scatter should be Specular")
	}

	expected := core.NewVec3(0, -1, 1).Normalize()
	actual := scatter.SpecularRay.Direction.Normalize()
	if actual.Subtract(expected).Length() > 1e-10 {
		t.Errorf("perfect reflection: expected %v, got %v", expected, actual)
	}
	if !scatter.Attenuation.Equals(albedo) {
		t.Errorf("attenuation should equal albedo: expected %v, got %v", albedo, scatter.Attenuation)
	}
}

func TestMetal_FuzzyReflectionVaries(t *testing.T) {
	albedo := core.NewVec3(0.8, 0.8, 0.8)
	metal := NewMetal(albedo, 0.5)
	random := rand.New(rand.NewSource(42))

	rayIn := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	hit := SurfacePoint{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1)}

	directions := make([]core.Vec3, 10)
	for i := range directions {
		scatter, didScatter := metal.Scatter(rayIn, hit, random)
		if !didScatter {
			t.Fatalf("metal should scatter on iteration %d", i)
		}
		directions[i] = scatter.SpecularRay.Direction.Normalize()
	}

	allSame := true
	for i := 1; i < len(directions); i++ {
		if directions[i].Subtract(directions[0]).Length() > 1e-10 {
			allSame = false
			break
		}
	}
	if allSame {
		t.Error("fuzzy metal should produce varying reflection directions")
	}

	for i, dir := range directions {
		if dir.Dot(hit.Normal) <= 0 {
			t.Errorf("scattered ray %d should be above surface, got cos=%f", i, dir.Dot(hit.Normal))
		}
	}
}

func TestMetal_ScatterAbsorption(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 1.0)
	random := rand.New(rand.NewSource(123))

	rayIn := core.NewRay(core.NewVec3(-1, 0, 0.01), core.NewVec3(1, 0, -0.01).Normalize())
	hit := SurfacePoint{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1)}

	absorbed, scattered := 0, 0
	for i := 0; i < 1000; i++ {
		_, didScatter := metal.Scatter(rayIn, hit, random)
		if didScatter {
			scattered++
		} else {
			absorbed++
		}
	}

	if absorbed == 0 {
		t.Error("expected some rays absorbed with max fuzz at grazing angle")
	}
	if scattered == 0 {
		t.Error("expected some rays scattered")
	}
}

func TestVec3_Reflect_Table(t *testing.T) {
	tests := []struct {
		name     string
		incident core.Vec3
		normal   core.Vec3
		expected core.Vec3
	}{
		{"45 degree", core.NewVec3(1, 0, -1).Normalize(), core.NewVec3(0, 0, 1), core.NewVec3(1, 0, 1).Normalize()},
		{"normal incidence", core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 1), core.NewVec3(0, 0, 1)},
		{"grazing", core.NewVec3(1, 0, -0.01).Normalize(), core.NewVec3(0, 0, 1), core.NewVec3(1, 0, 0.01).Normalize()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.incident.Reflect(tt.normal)
			if result.Subtract(tt.expected).Length() > 1e-10 {
				t.Errorf("Reflect() = %v, want %v", result, tt.expected)
			}
		})
	}
}
