package profile

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensions is returned when a buffer does not match its declared shape.
	ErrDimensions = errors.New("invalid image dimensions")

	// ErrConfig is returned for an unusable radial profile configuration.
	ErrConfig = errors.New("invalid profile configuration")

	// ErrShortBuffer is returned when a destination buffer is too small.
	ErrShortBuffer = errors.New("destination buffer too short")
)

// Vec2 is a point in pixel space.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Image is a row-major scalar image. len(Pix) is always Width*Height.
type Image struct {
	Pix    []float64
	Width  int
	Height int
}

// NewImage allocates a zeroed w x h image.
func NewImage(w, h int) *Image {
	return &Image{
		Pix:    make([]float64, w*h),
		Width:  w,
		Height: h,
	}
}

// FromSlice wraps pix as a w x h image without copying it. The caller keeps
// ownership of pix; writes through the returned Image are visible in pix.
func FromSlice(pix []float64, w, h int) (*Image, error) {
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimensions, w, h)
	}
	if len(pix) != w*h {
		return nil, fmt.Errorf("%w: buffer holds %d samples, %dx%d needs %d",
			ErrDimensions, len(pix), w, h, w*h)
	}
	return &Image{Pix: pix, Width: w, Height: h}, nil
}

// At returns the sample at integer pixel (x, y).
func (m *Image) At(x, y int) float64 {
	return m.Pix[y*m.Width+x]
}

// Set stores v at integer pixel (x, y).
func (m *Image) Set(x, y int, v float64) {
	m.Pix[y*m.Width+x] = v
}

// Center returns the geometric centre of the sampling domain.
func (m *Image) Center() Vec2 {
	return Vec2{X: float64(m.Width-1) / 2, Y: float64(m.Height-1) / 2}
}

// Clone returns a deep copy of m.
func (m *Image) Clone() *Image {
	return &Image{
		Pix:    append([]float64(nil), m.Pix...),
		Width:  m.Width,
		Height: m.Height,
	}
}
