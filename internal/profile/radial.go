package profile

import (
	"fmt"
	"math"
)

// BoundsPolicy selects how ring samples outside the sampling domain are
// treated by ComputeRadialProfile.
type BoundsPolicy int

const (
	// ClampToEdge samples the nearest point of the domain.
	ClampToEdge BoundsPolicy = iota

	// SkipOutside leaves outside samples out of the ring mean. A ring with no
	// inside sample yields 0.
	SkipOutside

	// ZeroOutside counts outside samples as 0.
	ZeroOutside
)

// String returns the policy name as accepted by ParseBoundsPolicy.
func (p BoundsPolicy) String() string {
	switch p {
	case ClampToEdge:
		return "clamp"
	case SkipOutside:
		return "skip"
	case ZeroOutside:
		return "zero"
	default:
		return fmt.Sprintf("BoundsPolicy(%d)", int(p))
	}
}

// ParseBoundsPolicy converts a policy name ("clamp", "skip", "zero") to a
// BoundsPolicy. The empty string selects ClampToEdge.
func ParseBoundsPolicy(s string) (BoundsPolicy, error) {
	switch s {
	case "", "clamp":
		return ClampToEdge, nil
	case "skip":
		return SkipOutside, nil
	case "zero":
		return ZeroOutside, nil
	default:
		return 0, fmt.Errorf("%w: unknown bounds policy %q", ErrConfig, s)
	}
}

// MaxProfileSamples bounds RadialSteps*AngularSteps for one profile.
const MaxProfileSamples = 1 << 24

// RadialProfileConfig describes the rings sampled by ComputeRadialProfile.
type RadialProfileConfig struct {
	// RadialSteps is the number of rings, and of output bins.
	RadialSteps int

	// AngularSteps is the number of samples taken evenly around each ring.
	AngularSteps int

	// MinRadius and MaxRadius are the radii of the first and last ring.
	MinRadius float64
	MaxRadius float64

	Policy BoundsPolicy
}

// Validate checks that the configuration describes at least one ring with at
// least one sample, no more than MaxProfileSamples samples in total, and a
// non-negative, non-decreasing radius range.
func (c RadialProfileConfig) Validate() error {
	switch {
	case c.RadialSteps < 1:
		return fmt.Errorf("%w: radial steps must be >= 1, got %d", ErrConfig, c.RadialSteps)
	case c.AngularSteps < 1:
		return fmt.Errorf("%w: angular steps must be >= 1, got %d", ErrConfig, c.AngularSteps)
	case c.RadialSteps > MaxProfileSamples/c.AngularSteps:
		return fmt.Errorf("%w: %d radial x %d angular steps exceeds %d samples",
			ErrConfig, c.RadialSteps, c.AngularSteps, MaxProfileSamples)
	case c.MinRadius < 0:
		return fmt.Errorf("%w: min radius must be >= 0, got %g", ErrConfig, c.MinRadius)
	case c.MaxRadius < c.MinRadius:
		return fmt.Errorf("%w: max radius %g below min radius %g", ErrConfig, c.MaxRadius, c.MinRadius)
	case c.Policy < ClampToEdge || c.Policy > ZeroOutside:
		return fmt.Errorf("%w: %v", ErrConfig, c.Policy)
	}
	return nil
}

// Radius returns the radius of ring i. Rings are spaced linearly so that
// ring 0 sits at MinRadius and the last ring at MaxRadius. With a single
// ring the radius is MinRadius.
func (c RadialProfileConfig) Radius(i int) float64 {
	if c.RadialSteps <= 1 {
		return c.MinRadius
	}
	return c.MinRadius + (c.MaxRadius-c.MinRadius)*float64(i)/float64(c.RadialSteps-1)
}

// Radii returns the radius of every ring.
func (c RadialProfileConfig) Radii() []float64 {
	if c.RadialSteps < 1 {
		return nil
	}
	r := make([]float64, c.RadialSteps)
	for i := range r {
		r[i] = c.Radius(i)
	}
	return r
}

// ComputeRadialProfile writes the mean of cfg.AngularSteps bilinear samples
// taken on each of cfg.RadialSteps rings around center into
// dst[:cfg.RadialSteps]. Ring i has radius cfg.Radius(i); sample a lies at
// angle 2*pi*a/AngularSteps.
//
// Only dst is written. Errors are returned for an invalid configuration, a
// nil or empty image, or a dst shorter than cfg.RadialSteps.
func ComputeRadialProfile(dst []float64, cfg RadialProfileConfig, center Vec2, src *Image) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if src == nil || src.Width < 1 || src.Height < 1 || len(src.Pix) != src.Width*src.Height {
		return ErrDimensions
	}
	if len(dst) < cfg.RadialSteps {
		return fmt.Errorf("%w: have %d, need %d", ErrShortBuffer, len(dst), cfg.RadialSteps)
	}

	// Unit directions are shared by every ring.
	dirs := make([]Vec2, cfg.AngularSteps)
	for a := range dirs {
		sin, cos := math.Sincos(2 * math.Pi * float64(a) / float64(cfg.AngularSteps))
		dirs[a] = Vec2{X: cos, Y: sin}
	}

	for i := 0; i < cfg.RadialSteps; i++ {
		r := cfg.Radius(i)
		var sum float64
		n := 0
		for _, d := range dirs {
			x, y := center.X+r*d.X, center.Y+r*d.Y
			if cfg.Policy != ClampToEdge && !src.InBounds(x, y) {
				if cfg.Policy == ZeroOutside {
					n++
				}
				continue
			}
			sum += src.Interpolate(x, y)
			n++
		}
		if n == 0 {
			dst[i] = 0
			continue
		}
		dst[i] = sum / float64(n)
	}
	return nil
}
