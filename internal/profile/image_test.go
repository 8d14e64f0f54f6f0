package profile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rampImage returns a w x h image whose samples are 0..w*h-1 in row-major order.
func rampImage(w, h int) *Image {
	img := NewImage(w, h)
	for i := range img.Pix {
		img.Pix[i] = float64(i)
	}
	return img
}

func TestFromSlice(t *testing.T) {
	tests := []struct {
		name    string
		n, w, h int
		wantErr bool
	}{
		{"exact fit", 12, 4, 3, false},
		{"single pixel", 1, 1, 1, false},
		{"too short", 11, 4, 3, true},
		{"too long", 13, 4, 3, true},
		{"zero width", 0, 0, 3, true},
		{"negative height", 4, 4, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := FromSlice(make([]float64, tt.n), tt.w, tt.h)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrDimensions))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.w, img.Width)
			assert.Equal(t, tt.h, img.Height)
		})
	}
}

func TestFromSlice_SharesBuffer(t *testing.T) {
	pix := make([]float64, 6)
	img, err := FromSlice(pix, 3, 2)
	require.NoError(t, err)

	img.Set(2, 1, 7)
	assert.Equal(t, 7.0, pix[5])
	assert.Equal(t, 7.0, img.At(2, 1))
}

func TestImageCenter(t *testing.T) {
	assert.Equal(t, Vec2{X: 1.5, Y: 1}, NewImage(4, 3).Center())
	assert.Equal(t, Vec2{}, NewImage(1, 1).Center())
}

func TestImageClone(t *testing.T) {
	img := rampImage(3, 2)
	c := img.Clone()
	c.Set(0, 0, 100)

	assert.Equal(t, 0.0, img.At(0, 0))
	assert.Equal(t, img.Width, c.Width)
	assert.Equal(t, img.Height, c.Height)
}
