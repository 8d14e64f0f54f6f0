package profile

import "gonum.org/v1/gonum/floats"

// CenterOfMass estimates the centre of the brightest feature in src.
//
// The image mean is subtracted as background and only the samples above it
// contribute, weighted by their excess. A flat image returns src.Center().
func CenterOfMass(src *Image) Vec2 {
	if len(src.Pix) == 0 {
		return Vec2{}
	}
	bg := floats.Sum(src.Pix) / float64(len(src.Pix))

	var sx, sy, sw float64
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			w := src.At(x, y) - bg
			if w <= 0 {
				continue
			}
			sx += w * float64(x)
			sy += w * float64(y)
			sw += w
		}
	}
	if sw == 0 {
		return src.Center()
	}
	return Vec2{X: sx / sw, Y: sy / sw}
}
