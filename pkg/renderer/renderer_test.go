package renderer

import (
	"bytes"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/mwagner-dev/pathtrace/pkg/camera"
	"github.com/mwagner-dev/pathtrace/pkg/core"
	"github.com/mwagner-dev/pathtrace/pkg/geometry"
	"github.com/mwagner-dev/pathtrace/pkg/hittable"
	"github.com/mwagner-dev/pathtrace/pkg/material"
)

func sampleMissShader(ray core.Ray) core.Vec3 {
	t := 0.5 * (ray.Direction.Normalize().Y + 1.0)
	white := core.NewVec3(1, 1, 1)
	blue := core.NewVec3(0.5, 0.7, 1.0)
	return core.Lerp3(white, blue, t)
}

func lightAndGroundScene() *Scene {
	ground := geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	light := geometry.NewSphere(core.NewVec3(0, 2, -1), 0.5, material.NewDiffuseLight(core.NewVec3(4, 4, 4), 1.0))

	world := hittable.NewList(ground, light)
	important := hittable.NewImportantList(light)
	view := camera.NewView(
		core.NewVec3(0, 1, 2), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0),
		60.0, 1.0, 1.0, 0.0,
		core.Timespan{}, 12,
	)

	return &Scene{World: world, Important: important, View: view, MissShader: sampleMissShader}
}

func TestFoldShadingSingleMiss(t *testing.T) {
	stack := []shading{{Emitted: core.NewVec3(0.1, 0.2, 0.3)}}
	result := fold(stack)
	if result.Subtract(core.NewVec3(0.1, 0.2, 0.3)).Length() > 1e-9 {
		t.Errorf("expected a single miss to fold to its own emitted color, got %v", result)
	}
}

func TestFoldShadingChain(t *testing.T) {
	stack := []shading{
		{Emitted: core.NewVec3(0, 0, 0), Reflected: core.NewVec3(0.5, 0.5, 0.5)},
		{Emitted: core.NewVec3(1, 1, 1)},
	}
	result := fold(stack)
	expected := core.NewVec3(0.5, 0.5, 0.5)
	if result.Subtract(expected).Length() > 1e-9 {
		t.Errorf("expected %v, got %v", expected, result)
	}
}

func TestPixelSeedDeterministic(t *testing.T) {
	if pixelSeed(3, 4) != pixelSeed(3, 4) {
		t.Error("expected pixelSeed to be a pure function of (i, j)")
	}
	if pixelSeed(3, 4) == pixelSeed(4, 3) {
		t.Error("expected pixelSeed to distinguish (i, j) from (j, i) in general")
	}
}

func TestBruteForceColorMissIsBackground(t *testing.T) {
	scene := lightAndGroundScene()
	bf := NewBruteForce()
	rnd := rand.New(rand.NewSource(1))

	rayCtx := core.NewRayCtx(core.NewRay(core.NewVec3(0, 100, 0), core.NewVec3(0, 1, 0)), 12)
	color := bf.Color(scene, rayCtx, rnd)
	if color.X <= 0 && color.Y <= 0 && color.Z <= 0 {
		t.Error("expected a nonzero background color for a ray that misses everything")
	}
}

func TestBruteForceColorSeesLightDirectly(t *testing.T) {
	scene := lightAndGroundScene()
	bf := NewBruteForce()
	rnd := rand.New(rand.NewSource(2))

	rayCtx := core.NewRayCtx(core.NewRay(core.NewVec3(0, 1, 2), core.NewVec3(0, 2, -1).Subtract(core.NewVec3(0, 1, 2)).Normalize()), 12)
	color := bf.Color(scene, rayCtx, rnd)
	if color.Luminance() <= 0 {
		t.Error("expected a ray pointed straight at the light to see nonzero emission")
	}
}

func TestMonteCarloColorFinite(t *testing.T) {
	scene := lightAndGroundScene()
	mc := NewMonteCarlo(0.5)
	rnd := rand.New(rand.NewSource(3))

	rayCtx := core.NewRayCtx(core.NewRay(core.NewVec3(0, 1, 2), core.NewVec3(0, -0.3, -1).Normalize()), 12)
	for i := 0; i < 20; i++ {
		color := mc.Color(scene, rayCtx, rnd)
		if !color.IsFinite() {
			t.Fatalf("expected a finite color, got %v", color)
		}
		if color.X < 0 || color.Y < 0 || color.Z < 0 {
			t.Fatalf("expected a non-negative color, got %v", color)
		}
	}
}

func TestTtlRendererFullBudgetMissIsWhite(t *testing.T) {
	scene := lightAndGroundScene()
	ttlRenderer := NewTtlRenderer(12)
	rnd := rand.New(rand.NewSource(4))

	fullBudget := core.NewRayCtx(core.NewRay(core.NewVec3(0, 100, 0), core.NewVec3(0, 1, 0)), 12)
	color := ttlRenderer.Color(scene, fullBudget, rnd)
	if math.Abs(color.X-1.0) > 1e-9 {
		t.Errorf("expected full TTL budget to shade as white on a miss, got %v", color)
	}
}

func TestSamplerRenderProducesCorrectPixelCount(t *testing.T) {
	scene := lightAndGroundScene()
	sampler := NewSampler(scene, 8, 6, 2, NewBruteForce().Color, 2)
	pixels := sampler.Render()
	if len(pixels) != 8*6 {
		t.Fatalf("expected %d pixels, got %d", 8*6, len(pixels))
	}
}

func TestSamplerRenderDeterministic(t *testing.T) {
	scene := lightAndGroundScene()
	a := NewSampler(scene, 6, 4, 2, NewBruteForce().Color, 1).Render()
	b := NewSampler(scene, 6, 4, 2, NewBruteForce().Color, 4).Render()

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("expected identical output regardless of worker count at pixel %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestWritePPMFormat(t *testing.T) {
	pixels := [][3]uint8{{255, 0, 0}, {0, 255, 0}, {0, 0, 255}, {255, 255, 255}}
	var buf bytes.Buffer
	if err := WritePPM(&buf, 2, 2, pixels); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "P3\n2 2\n255\n") {
		t.Errorf("expected a P3 header, got %q", out[:min(20, len(out))])
	}
	if !strings.Contains(out, "255 0 0") {
		t.Error("expected the first pixel's components in the output")
	}
}
