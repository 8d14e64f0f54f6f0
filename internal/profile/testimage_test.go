package profile

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateTestImage(t *testing.T) {
	img := NewImage(21, 15)
	center := Vec2{X: 10, Y: 7}
	GenerateTestImage(img, center, 3, 1000)

	assert.Len(t, img.Pix, 21*15)
	assert.InDelta(t, 1000, img.At(10, 7), 1e-9, "peak sits on the centre")
	assert.InDelta(t, 1000*math.Exp(-9.0/18), img.At(13, 7), 1e-9, "one sigma away")
	assert.InDelta(t, img.At(7, 7), img.At(13, 7), 1e-9)
	assert.InDelta(t, img.At(10, 4), img.At(10, 10), 1e-9)
	assert.Less(t, img.At(0, 0), img.At(5, 5))
}

func TestGenerateTestImage_PointSource(t *testing.T) {
	img := filledImage(6, 6, 5)
	GenerateTestImage(img, Vec2{X: 2.4, Y: 3.6}, 0, 80)

	var sum float64
	for _, v := range img.Pix {
		sum += v
	}
	assert.Equal(t, 80.0, sum)
	assert.Equal(t, 80.0, img.At(2, 4))
}

func TestAddPoissonNoise_Deterministic(t *testing.T) {
	a := NewImage(16, 16)
	GenerateTestImage(a, Vec2{X: 8, Y: 8}, 3, 200)
	b := NewImage(16, 16)
	copy(b.Pix, a.Pix)

	AddPoissonNoise(a, 42)
	AddPoissonNoise(b, 42)
	assert.Equal(t, a.Pix, b.Pix)

	for _, v := range a.Pix {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Equal(t, math.Trunc(v), v, "photon counts are integral")
	}
}

func TestAddPoissonNoise_ZeroStaysZero(t *testing.T) {
	img, _ := FromSlice([]float64{0, -3, 0}, 3, 1)
	AddPoissonNoise(img, 1)
	assert.Equal(t, []float64{0, 0, 0}, img.Pix)
}

func TestCenterOfMass(t *testing.T) {
	img := NewImage(40, 30)
	GenerateTestImage(img, Vec2{X: 22.5, Y: 11.25}, 2.5, 100)

	c := CenterOfMass(img)
	assert.InDelta(t, 22.5, c.X, 0.1)
	assert.InDelta(t, 11.25, c.Y, 0.1)
}

func TestCenterOfMass_FlatImage(t *testing.T) {
	img := filledImage(9, 5, 2)
	assert.Equal(t, Vec2{X: 4, Y: 2}, CenterOfMass(img))
}
