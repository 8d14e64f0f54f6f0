package profile

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// GenerateTestImage fills dst with a synthetic point-spread function centred
// at center:
//
//	v(x, y) = maxPhotons * exp(-r² / (2·size²)),  r = |(x, y) - center|
//
// size is the Gaussian sigma in pixels. A non-positive size produces a single
// pixel of value maxPhotons at the pixel nearest center (if it lies inside the
// image) and zeros elsewhere.
func GenerateTestImage(dst *Image, center Vec2, size, maxPhotons float64) {
	if size <= 0 {
		clear(dst.Pix)
		px, py := int(math.Round(center.X)), int(math.Round(center.Y))
		if px >= 0 && py >= 0 && px < dst.Width && py < dst.Height {
			dst.Set(px, py, maxPhotons)
		}
		return
	}

	inv := 1 / (2 * size * size)
	for y := 0; y < dst.Height; y++ {
		dy := float64(y) - center.Y
		for x := 0; x < dst.Width; x++ {
			dx := float64(x) - center.X
			dst.Pix[y*dst.Width+x] = maxPhotons * math.Exp(-(dx*dx+dy*dy)*inv)
		}
	}
}

// AddPoissonNoise replaces every sample with a Poisson-distributed photon
// count whose mean is the sample value. Negative samples are treated as 0.
// The same seed always yields the same noise.
func AddPoissonNoise(img *Image, seed uint64) {
	src := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	for i, v := range img.Pix {
		if v <= 0 {
			img.Pix[i] = 0
			continue
		}
		img.Pix[i] = distuv.Poisson{Lambda: v, Src: src}.Rand()
	}
}
