package material

import (
	"math"
	"math/rand"

	"github.com/mwagner-dev/pathtrace/pkg/core"
)

// Perlin is a lattice-gradient noise generator: 256 random unit gradient
// vectors permuted independently per axis, trilinearly interpolated with a
// smoothstep weight. Its exact numeric output is not part of this
// package's contract (SPEC_FULL.md treats noise as an opaque (point,
// scale) -> [0,1] function); only its statistical texture matters.
type Perlin struct {
	ranvec           [256]core.Vec3
	permX, permY, permZ [256]int
}

// NewPerlin builds a Perlin noise table seeded from rnd.
func NewPerlin(rnd *rand.Rand) *Perlin {
	p := &Perlin{}
	for i := range p.ranvec {
		p.ranvec[i] = core.NewVec3(
			2*rnd.Float64()-1,
			2*rnd.Float64()-1,
			2*rnd.Float64()-1,
		).Normalize()
	}
	p.permX = generatePermutation(rnd)
	p.permY = generatePermutation(rnd)
	p.permZ = generatePermutation(rnd)
	return p
}

func generatePermutation(rnd *rand.Rand) [256]int {
	var perm [256]int
	for i := range perm {
		perm[i] = i
	}
	rnd.Shuffle(len(perm), func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })
	return perm
}

// Noise samples the smoothed lattice noise at point, in roughly [-1, 1].
func (p *Perlin) Noise(point core.Vec3) float64 {
	u := point.X - math.Floor(point.X)
	v := point.Y - math.Floor(point.Y)
	w := point.Z - math.Floor(point.Z)

	i := int(math.Floor(point.X))
	j := int(math.Floor(point.Y))
	k := int(math.Floor(point.Z))

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				idx := p.permX[(i+di)&255] ^ p.permY[(j+dj)&255] ^ p.permZ[(k+dk)&255]
				c[di][dj][dk] = p.ranvec[idx&255]
			}
		}
	}
	return trilerp(c, u, v, w)
}

func trilerp(c [2][2][2]core.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	acc := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				weight := core.NewVec3(u-float64(i), v-float64(j), w-float64(k))
				fi, fj, fk := float64(i), float64(j), float64(k)
				acc += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return acc
}

// Turbulence sums 7 octaves of noise at halving amplitude and doubling
// frequency, producing the marbled texture NoiseTexture builds on.
func (p *Perlin) Turbulence(point core.Vec3) float64 {
	acc := 0.0
	temp := point
	weight := 1.0
	for i := 0; i < 7; i++ {
		acc += weight * p.Noise(temp)
		weight *= 0.5
		temp = temp.Multiply(2)
	}
	return math.Abs(acc)
}

// NoiseTexture is a procedural marble-like ColorSource built from Perlin
// turbulence, in the style of the book's "marble" texture: a sine wave
// perturbed by turbulence.
type NoiseTexture struct {
	noise *Perlin
	scale float64
}

// NewNoiseTexture builds a NoiseTexture at the given spatial frequency.
func NewNoiseTexture(rnd *rand.Rand, scale float64) *NoiseTexture {
	return &NoiseTexture{noise: NewPerlin(rnd), scale: scale}
}

// Evaluate returns a grayscale marble pattern.
func (n *NoiseTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	value := 0.5 * (1 + math.Sin(n.scale*point.Z+10*n.noise.Turbulence(point)))
	return core.NewVec3(value, value, value)
}
