package renderer

import (
	"math/rand"
	"runtime"
	"sync"

	"github.com/mwagner-dev/pathtrace/pkg/core"
)

// pixelSeedModulus bounds the per-pixel RNG seed so it stays a small,
// easily reproduced integer regardless of image size.
const pixelSeedModulus = 44497

// pixelSeed derives a deterministic RNG seed from a pixel's column (i) and
// row (j), independent of render order or worker scheduling.
func pixelSeed(i, j int) int64 {
	return int64((i*13 + j*65537) % pixelSeedModulus)
}

// Sampler renders a Scene to a grid of 8-bit RGB pixels: Samples primary
// rays per pixel, antialiased by jittering each sample's screen position
// within a unit disk, averaged and gamma-corrected.
type Sampler struct {
	Scene     *Scene
	Width     int
	Height    int
	Samples   int
	ColorFunc ColorFunc
	Workers   int
}

// NewSampler builds a Sampler. workers <= 0 selects runtime.NumCPU().
func NewSampler(scene *Scene, width, height, samples int, colorFunc ColorFunc, workers int) *Sampler {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Sampler{Scene: scene, Width: width, Height: height, Samples: samples, ColorFunc: colorFunc, Workers: workers}
}

// Render produces one [3]uint8 RGB triple per pixel, in row-major order
// top to bottom within a row, left to right. Rows are rendered in
// parallel by a pool of workers draining a channel of row indices; each
// pixel's own seed (not the assignment of rows to workers) determines its
// sampling, so the output is independent of worker count and scheduling.
func (s *Sampler) Render() [][3]uint8 {
	pixels := make([][3]uint8, s.Width*s.Height)

	rows := make(chan int, s.Height)
	for j := 0; j < s.Height; j++ {
		rows <- j
	}
	close(rows)

	var wg sync.WaitGroup
	for w := 0; w < s.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range rows {
				s.renderRow(j, pixels)
			}
		}()
	}
	wg.Wait()

	return pixels
}

func (s *Sampler) renderRow(j int, pixels [][3]uint8) {
	for i := 0; i < s.Width; i++ {
		rnd := rand.New(rand.NewSource(pixelSeed(i, j)))

		sum := core.Vec3{}
		for k := 0; k < s.Samples; k++ {
			jitter := core.RandomInUnitDisk(rnd)
			u := (float64(i) + 0.5 + jitter.X) / float64(s.Width)
			v := 1.0 - (float64(j)+0.5+jitter.Y)/float64(s.Height)

			rayCtx := s.Scene.View.Ray(u, v, rnd)
			c := s.ColorFunc(s.Scene, rayCtx, rnd)
			if !c.IsFinite() {
				c = core.Vec3{}
			}
			sum = sum.Add(c)
		}

		color := sum.Multiply(1.0 / float64(s.Samples)).Clamp(0, 1).GammaCorrect(2.2)
		pixels[j*s.Width+i] = [3]uint8{
			uint8(color.X*255 + 0.5),
			uint8(color.Y*255 + 0.5),
			uint8(color.Z*255 + 0.5),
		}
	}
}
