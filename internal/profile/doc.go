// Package profile implements sampling and radial profiling of scalar images.
//
// Images are flat, row-major float64 buffers paired with an explicit width
// and height (see Image). All functions are synchronous and keep no state
// between calls, so they may be used concurrently on disjoint buffers. Calls
// that mutate a buffer in place (Normalize, GenerateTestImage, AddPoissonNoise)
// must not run concurrently with readers of the same buffer.
//
// # Coordinate System
//
// Pixel (0,0) is the top-left sample, X increases rightward and Y increases
// downward. Fractional coordinates address the continuous surface spanned by
// bilinear interpolation between sample centres, so the valid sampling domain
// is [0, Width-1] x [0, Height-1].
//
// # Out-of-range Sampling
//
// Interpolate clamps its coordinates to the sampling domain and never reads
// outside the buffer. ComputeRadialProfile additionally lets the caller pick
// how ring samples that leave the domain are treated (see BoundsPolicy).
//
// # Flat Buffers
//
// Normalizing a buffer whose minimum equals its maximum yields all zeros
// rather than NaN.
package profile
