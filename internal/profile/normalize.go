package profile

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// extent returns the minimum of pix and the distance to its maximum. If that
// distance overflows for finite extrema, both results are for pix/2 and
// halved is set; callers must halve every sample as well.
func extent(pix []float64) (lo, span float64, halved bool) {
	lo, hi := floats.Min(pix), floats.Max(pix)
	span = hi - lo
	if math.IsInf(span, 1) && !math.IsInf(lo, 0) && !math.IsInf(hi, 0) {
		return lo / 2, hi/2 - lo/2, true
	}
	return lo, span, false
}

// Normalize rescales pix in place so that its minimum maps to 0 and its
// maximum to 1. A flat buffer (min == max) is set to all zeros. An empty
// buffer is left untouched. Samples must be finite.
func Normalize(pix []float64) {
	if len(pix) == 0 {
		return
	}
	lo, span, halved := extent(pix)
	if span == 0 {
		clear(pix)
		return
	}
	if halved {
		floats.Scale(0.5, pix)
	}
	floats.AddConst(-lo, pix)
	for i := range pix {
		pix[i] /= span
	}
}

// Normalize rescales the image samples in place to [0,1].
func (m *Image) Normalize() {
	Normalize(m.Pix)
}

// FloatToNormalizedUint16 writes src rescaled to the full uint16 range into
// dst[:len(src.Pix)]. The source is not modified. A flat source produces
// zeros. Samples must be finite.
func FloatToNormalizedUint16(dst []uint16, src *Image) error {
	if len(dst) < len(src.Pix) {
		return fmt.Errorf("%w: have %d, need %d", ErrShortBuffer, len(dst), len(src.Pix))
	}
	if len(src.Pix) == 0 {
		return nil
	}

	lo, span, halved := extent(src.Pix)
	if span == 0 {
		clear(dst[:len(src.Pix)])
		return nil
	}
	for i, v := range src.Pix {
		if halved {
			v /= 2
		}
		dst[i] = uint16(math.Round((v - lo) / span * math.MaxUint16))
	}
	return nil
}

// NewNormalizedUint16 returns a newly allocated copy of src rescaled to the
// full uint16 range. The returned slice belongs to the caller.
func NewNormalizedUint16(src *Image) []uint16 {
	dst := make([]uint16, len(src.Pix))
	// dst is sized from src, so the length check cannot fail.
	_ = FloatToNormalizedUint16(dst, src)
	return dst
}
