// Package loaders reads texture images from disk into the in-memory Vec3
// pixel arrays pkg/material's ImageTexture samples from.
package loaders

import (
	"image"
	_ "image/png" // PNG decoder, registered for image.Decode
	"math"
	"os"

	"github.com/pkg/errors"

	"github.com/mwagner-dev/pathtrace/pkg/core"
)

// ImageData is a decoded image as a flat, row-major array of linear-space
// colors.
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// At returns the color at pixel (x, y), clamping out-of-range coordinates
// to the image edge.
func (d *ImageData) At(x, y int) core.Vec3 {
	if x < 0 {
		x = 0
	}
	if x >= d.Width {
		x = d.Width - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= d.Height {
		y = d.Height - 1
	}
	return d.Pixels[y*d.Width+x]
}

// LoadImage decodes a sRGB PNG file and converts it into linear-space Vec3
// colors in [0, 1], applying gamma 2.2 on read.
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open texture file %q", filename)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode texture file %q", filename)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	const gamma = 2.2
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			pixels[y*width+x] = core.NewVec3(
				math.Pow(float64(r)/65535.0, gamma),
				math.Pow(float64(g)/65535.0, gamma),
				math.Pow(float64(b)/65535.0, gamma),
			)
		}
	}

	return &ImageData{Width: width, Height: height, Pixels: pixels}, nil
}
