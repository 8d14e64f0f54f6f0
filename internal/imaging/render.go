package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/radial-profile-mcp/internal/profile"
)

// RenderResult contains a rendered buffer encoded as base64 PNG.
type RenderResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// heatStops is the colour ramp used by Heatmap, from low to high values.
var heatStops = []colorful.Color{
	{R: 0, G: 0, B: 0},
	{R: 0.12, G: 0.07, B: 0.45},
	{R: 0.75, G: 0.1, B: 0.35},
	{R: 1, G: 0.6, B: 0},
	{R: 1, G: 1, B: 0.85},
}

// Gray16 renders m as a 16-bit grayscale image stretched to the full range.
func Gray16(m *profile.Image) *image.Gray16 {
	out := image.NewGray16(image.Rect(0, 0, m.Width, m.Height))
	for i, v := range profile.NewNormalizedUint16(m) {
		out.SetGray16(i%m.Width, i/m.Width, color.Gray16{Y: v})
	}
	return out
}

// Heatmap renders m with a false-colour ramp after stretching its samples
// to [0,1]. Colours are interpolated in CIE L*a*b* space.
func Heatmap(m *profile.Image) *image.NRGBA {
	norm := m.Clone()
	norm.Normalize()

	out := image.NewNRGBA(image.Rect(0, 0, m.Width, m.Height))
	for i, v := range norm.Pix {
		r, g, b := heatColor(v).Clamped().RGB255()
		out.SetNRGBA(i%m.Width, i/m.Width, color.NRGBA{R: r, G: g, B: b, A: 255})
	}
	return out
}

func heatColor(v float64) colorful.Color {
	segs := float64(len(heatStops) - 1)
	pos := math.Max(0, math.Min(1, v)) * segs
	i := int(pos)
	if i >= len(heatStops)-1 {
		return heatStops[len(heatStops)-1]
	}
	return heatStops[i].BlendLab(heatStops[i+1], pos-float64(i))
}

// RenderGray encodes m as a 16-bit grayscale PNG, optionally scaled.
func RenderGray(m *profile.Image, scale float64) (*RenderResult, error) {
	return encode(Gray16(m), scale)
}

// RenderHeatmap encodes m as a false-colour PNG, optionally scaled.
func RenderHeatmap(m *profile.Image, scale float64) (*RenderResult, error) {
	return encode(Heatmap(m), scale)
}

// encode scales img by scale with nearest-neighbour sampling so that
// individual pixels stay visible, and encodes it as base64 PNG. A scale of 0
// or 1 keeps the original size.
func encode(img image.Image, scale float64) (*RenderResult, error) {
	if scale < 0 {
		return nil, fmt.Errorf("scale must be >= 0, got %g", scale)
	}
	if scale != 0 && scale != 1 {
		w := int(math.Round(float64(img.Bounds().Dx()) * scale))
		h := int(math.Round(float64(img.Bounds().Dy()) * scale))
		if w < 1 || h < 1 {
			return nil, fmt.Errorf("scale %g leaves an empty image", scale)
		}
		img = imaging.Resize(img, w, h, imaging.NearestNeighbor)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &RenderResult{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// SaveGray16 writes m to path as a 16-bit grayscale PNG.
func SaveGray16(path string, m *profile.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	if err := png.Encode(f, Gray16(m)); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode image: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close image file: %w", err)
	}
	return nil
}
