package material

import (
	"github.com/mwagner-dev/pathtrace/pkg/core"
	"github.com/mwagner-dev/pathtrace/pkg/loaders"
)

// ImageTexture samples a decoded PNG by (u, v), wrapping coordinates
// outside [0, 1] rather than clamping, and flipping v so v=0 is the
// image's bottom row.
type ImageTexture struct {
	width, height int
	pixels        []core.Vec3
}

// NewImageTexture loads a sRGB PNG from disk (gamma 2.2 applied on read).
func NewImageTexture(path string) (*ImageTexture, error) {
	img, err := loaders.LoadImage(path)
	if err != nil {
		return nil, err
	}
	return &ImageTexture{width: img.Width, height: img.Height, pixels: img.Pixels}, nil
}

// newImageTextureFromPixels builds an ImageTexture directly from an
// in-memory pixel array, bypassing disk IO; used by tests.
func newImageTextureFromPixels(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{width: width, height: height, pixels: pixels}
}

// Evaluate nearest-neighbor samples the image at (u, v).
func (t *ImageTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	u := uv.X - float64(int(uv.X))
	v := uv.Y - float64(int(uv.Y))
	if u < 0 {
		u += 1.0
	}
	if v < 0 {
		v += 1.0
	}

	x := int(u * float64(t.width))
	y := int((1.0 - v) * float64(t.height))
	if x >= t.width {
		x = t.width - 1
	}
	if y >= t.height {
		y = t.height - 1
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	return t.pixels[y*t.width+x]
}
