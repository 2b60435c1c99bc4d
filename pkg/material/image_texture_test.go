package material

import (
	"testing"

	"github.com/mwagner-dev/pathtrace/pkg/core"
)

func TestImageTextureEvaluate(t *testing.T) {
	// 2x2 checkerboard: row 0 (top) = white, black; row 1 (bottom) = black, white.
	pixels := []core.Vec3{
		core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 0),
		core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1),
	}
	texture := newImageTextureFromPixels(2, 2, pixels)

	white := core.NewVec3(1, 1, 1)
	black := core.NewVec3(0, 0, 0)

	cases := []struct {
		uv   core.Vec2
		want core.Vec3
	}{
		{core.NewVec2(0.1, 0.1), black},
		{core.NewVec2(0.9, 0.1), white},
		{core.NewVec2(0.1, 0.9), white},
		{core.NewVec2(0.9, 0.9), black},
	}
	for _, c := range cases {
		got := texture.Evaluate(c.uv, core.Vec3{})
		if !got.Equals(c.want) {
			t.Errorf("UV%v: expected %v, got %v", c.uv, c.want, got)
		}
	}
}

func TestImageTextureWrapping(t *testing.T) {
	pixels := []core.Vec3{core.NewVec3(1, 0, 0)}
	texture := newImageTextureFromPixels(1, 1, pixels)
	red := core.NewVec3(1, 0, 0)

	uvs := []core.Vec2{
		core.NewVec2(0.5, 0.5),
		core.NewVec2(1.5, 0.5),
		core.NewVec2(0.5, 1.5),
		core.NewVec2(-0.5, -0.5),
		core.NewVec2(2.3, 3.7),
	}
	for _, uv := range uvs {
		got := texture.Evaluate(uv, core.Vec3{})
		if !got.Equals(red) {
			t.Errorf("UV%v: expected %v, got %v", uv, red, got)
		}
	}
}

func TestImageTextureSampling(t *testing.T) {
	pixels := make([]core.Vec3, 16)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			val := float64(y*4+x) / 15.0
			pixels[y*4+x] = core.NewVec3(val, val, val)
		}
	}
	texture := newImageTextureFromPixels(4, 4, pixels)

	got := texture.Evaluate(core.NewVec2(0.125, 0.875), core.Vec3{})
	if !got.Equals(core.NewVec3(0, 0, 0)) {
		t.Errorf("top-left sample: expected black, got %v", got)
	}

	got = texture.Evaluate(core.NewVec2(0.875, 0.125), core.Vec3{})
	if !got.Equals(core.NewVec3(1, 1, 1)) {
		t.Errorf("bottom-right sample: expected white, got %v", got)
	}
}

func TestSolidColor(t *testing.T) {
	color := core.NewVec3(0.7, 0.3, 0.1)
	solid := NewSolidColor(color)

	cases := []struct {
		uv    core.Vec2
		point core.Vec3
	}{
		{core.NewVec2(0, 0), core.NewVec3(0, 0, 0)},
		{core.NewVec2(1, 1), core.NewVec3(5, 3, -2)},
		{core.NewVec2(0.5, 0.5), core.NewVec3(-1, -1, -1)},
	}
	for _, c := range cases {
		got := solid.Evaluate(c.uv, c.point)
		if !got.Equals(color) {
			t.Errorf("SolidColor at UV%v, Point%v: expected %v, got %v", c.uv, c.point, color, got)
		}
	}
}
