package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotResult contains a rendered profile plot encoded as base64 PNG.
type PlotResult struct {
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// PlotProfile draws values against radii as a line plot and returns it as a
// base64 PNG of the given size in points. Zero sizes default to 6x4 inches.
func PlotProfile(title string, radii, values []float64, width, height vg.Length) (*PlotResult, error) {
	if len(radii) != len(values) {
		return nil, fmt.Errorf("radii and values differ in length: %d vs %d", len(radii), len(values))
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("no profile values to plot")
	}
	if width <= 0 {
		width = 6 * vg.Inch
	}
	if height <= 0 {
		height = 4 * vg.Inch
	}

	pts := make(plotter.XYs, len(values))
	for i := range values {
		pts[i].X = radii[i]
		pts[i].Y = values[i]
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Radius (px)"
	p.Y.Label.Text = "Mean intensity"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile line: %w", err)
	}
	p.Add(line)

	wt, err := p.WriterTo(width, height, "png")
	if err != nil {
		return nil, fmt.Errorf("failed to render plot: %w", err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode plot: %w", err)
	}

	return &PlotResult{
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
