package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
	"gonum.org/v1/gonum/floats"

	"github.com/ironsheep/radial-profile-mcp/internal/profile"
)

// Region represents a rectangular region within an image.
//
// (X1, Y1) is the top-left corner (inclusive) and (X2, Y2) the bottom-right
// corner (exclusive).
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Validate checks that r is non-empty and lies inside bounds.
func (r Region) Validate(bounds image.Rectangle) error {
	if r.X1 < bounds.Min.X || r.Y1 < bounds.Min.Y || r.X2 > bounds.Max.X || r.Y2 > bounds.Max.Y {
		return fmt.Errorf("region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			r.X1, r.Y1, r.X2, r.Y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	if r.X1 >= r.X2 || r.Y1 >= r.Y2 {
		return fmt.Errorf("invalid region: x1 must be < x2, y1 must be < y2")
	}
	return nil
}

// ConvertOptions controls how a decoded image becomes a sampling buffer.
type ConvertOptions struct {
	// Region restricts the buffer to a sub-rectangle. Coordinates in the
	// resulting buffer are relative to Region's top-left corner. Cropping
	// keeps 16-bit precision only for 16-bit grayscale sources.
	Region *Region

	// Smooth is the radius of a Gaussian blur applied before conversion.
	// Zero disables smoothing. Smoothing works on 8-bit channels.
	Smooth float64
}

// Convert crops, optionally smooths and converts img to a luminance buffer
// with samples in [0,1].
func Convert(img image.Image, opts ConvertOptions) (*profile.Image, error) {
	if opts.Smooth < 0 {
		return nil, fmt.Errorf("smooth radius must be >= 0, got %g", opts.Smooth)
	}
	if opts.Region != nil {
		if err := opts.Region.Validate(img.Bounds()); err != nil {
			return nil, err
		}
		rect := image.Rect(opts.Region.X1, opts.Region.Y1, opts.Region.X2, opts.Region.Y2)
		if g, ok := img.(*image.Gray16); ok {
			// Keep 16-bit precision; imaging.Crop returns 8-bit NRGBA.
			img = g.SubImage(rect)
		} else {
			img = imaging.Crop(img, rect)
		}
	}
	if opts.Smooth > 0 {
		img = blur.Gaussian(img, opts.Smooth)
	}
	return Luminance(img), nil
}

// Luminance converts img to a [0,1] float buffer using the ITU-R BT.601
// weights of color.Gray16Model. 16-bit sources keep their full precision.
func Luminance(img image.Image) *profile.Image {
	bounds := img.Bounds()
	out := profile.NewImage(bounds.Dx(), bounds.Dy())

	if g, ok := img.(*image.Gray16); ok {
		for y := 0; y < out.Height; y++ {
			for x := 0; x < out.Width; x++ {
				v := g.Gray16At(x+bounds.Min.X, y+bounds.Min.Y).Y
				out.Set(x, y, float64(v)/math.MaxUint16)
			}
		}
		return out
	}

	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			c := color.Gray16Model.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.Gray16)
			out.Set(x, y, float64(c.Y)/math.MaxUint16)
		}
	}
	return out
}

// BufferStats summarizes the samples of a buffer.
type BufferStats struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Mean float64 `json:"mean"`
}

// Stats returns the extrema and mean of m. An empty buffer yields zeros.
func Stats(m *profile.Image) BufferStats {
	if len(m.Pix) == 0 {
		return BufferStats{}
	}
	return BufferStats{
		Min:  floats.Min(m.Pix),
		Max:  floats.Max(m.Pix),
		Mean: floats.Sum(m.Pix) / float64(len(m.Pix)),
	}
}
