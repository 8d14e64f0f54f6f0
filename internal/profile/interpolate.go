package profile

import "math"

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

// Interpolate returns the bilinearly interpolated value at (x, y).
//
// The four samples surrounding (floor(x), floor(y)) are blended first along X
// and then along Y. At integer coordinates the stored sample is returned
// exactly.
//
// Coordinates outside [0, Width-1] x [0, Height-1] are clamped to that range,
// and the right/bottom neighbour is clamped to the last column/row, so
// sampling on the last column or row degenerates to that pixel's value. The
// method never reads outside Pix.
func (m *Image) Interpolate(x, y float64) float64 {
	x = clampf(x, 0, float64(m.Width-1))
	y = clampf(y, 0, float64(m.Height-1))

	rx, ry := int(math.Floor(x)), int(math.Floor(y))
	nx, ny := min(rx+1, m.Width-1), min(ry+1, m.Height-1)
	fx, fy := x-float64(rx), y-float64(ry)

	row0 := ry * m.Width
	row1 := ny * m.Width
	v0 := lerp(m.Pix[row0+rx], m.Pix[row0+nx], fx)
	v1 := lerp(m.Pix[row1+rx], m.Pix[row1+nx], fx)
	return lerp(v0, v1, fy)
}

// InBounds reports whether (x, y) lies inside the sampling domain
// [0, Width-1] x [0, Height-1], where Interpolate needs no clamping.
func (m *Image) InBounds(x, y float64) bool {
	return x >= 0 && y >= 0 && x <= float64(m.Width-1) && y <= float64(m.Height-1)
}

// clampf constrains v to [lo, hi]. NaN maps to lo.
func clampf(v, lo, hi float64) float64 {
	if !(v >= lo) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
