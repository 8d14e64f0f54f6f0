package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/radial-profile-mcp/internal/imaging"
	"github.com/ironsheep/radial-profile-mcp/internal/profile"
)

// maxGeneratedPixels caps the size of synthetic images.
const maxGeneratedPixels = 4096 * 4096

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "profile_radial").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors, including results that cannot be encoded, return a
// JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.debugf("tool %s failed: %v", params.Name, err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}
	text, err := marshalResult(result)
	if err != nil {
		s.debugf("tool %s result: %v", params.Name, err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}
	return textResponse(req.ID, text)
}

// textResponse wraps text in a single MCP text content item.
func textResponse(id interface{}, text string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": text,
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "profile_sample":
		return s.handleProfileSample(args)
	case "profile_normalize":
		return s.handleProfileNormalize(args)
	case "profile_radial":
		return s.handleProfileRadial(args)
	case "profile_center_of_mass":
		return s.handleProfileCenterOfMass(args)
	case "profile_generate_test_image":
		return s.handleProfileGenerateTestImage(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// marshalResult converts a tool result to a pretty-printed JSON string.
// Results holding values JSON cannot represent, such as NaN or ±Inf, fail.
func marshalResult(v interface{}) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}
	return string(b), nil
}

// bufferArgs selects the buffer a profile tool operates on.
type bufferArgs struct {
	Path   string          `json:"path"`
	Region *imaging.Region `json:"region,omitempty"`
	Smooth float64         `json:"smooth"`
}

// loadBuffer returns the luminance buffer described by a. When writable is
// false the returned buffer may be the cache's shared copy.
func (s *Server) loadBuffer(a bufferArgs, writable bool) (*profile.Image, error) {
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	if a.Region == nil && a.Smooth == 0 {
		gray, err := s.cache.LoadGray(a.Path)
		if err != nil {
			return nil, err
		}
		if writable {
			return gray.Clone(), nil
		}
		return gray, nil
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.Convert(img, imaging.ConvertOptions{Region: a.Region, Smooth: a.Smooth})
}

func render(m *profile.Image, mode string, scale float64) (*imaging.RenderResult, error) {
	switch mode {
	case "", "gray":
		return imaging.RenderGray(m, scale)
	case "heatmap":
		return imaging.RenderHeatmap(m, scale)
	default:
		return nil, fmt.Errorf("unknown render mode: %s", mode)
	}
}

// === Image Information ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

// === Sampling ===

type profileSampleArgs struct {
	bufferArgs
	Points []struct {
		X     float64 `json:"x"`
		Y     float64 `json:"y"`
		Label string  `json:"label,omitempty"`
	} `json:"points"`
}

// SampleValue is the interpolated value at one requested point.
type SampleValue struct {
	Label string  `json:"label,omitempty"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Value float64 `json:"value"`

	// Clamped is set when the point lay outside the image and was moved to
	// the nearest edge before sampling.
	Clamped bool `json:"clamped,omitempty"`
}

// SampleResult lists samples in request order.
type SampleResult struct {
	Samples []SampleValue `json:"samples"`
}

func (s *Server) handleProfileSample(args json.RawMessage) (interface{}, error) {
	var a profileSampleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	m, err := s.loadBuffer(a.bufferArgs, false)
	if err != nil {
		return nil, err
	}

	out := make([]SampleValue, 0, len(a.Points))
	for _, p := range a.Points {
		out = append(out, SampleValue{
			Label:   p.Label,
			X:       p.X,
			Y:       p.Y,
			Value:   m.Interpolate(p.X, p.Y),
			Clamped: !m.InBounds(p.X, p.Y),
		})
	}
	return &SampleResult{Samples: out}, nil
}

// === Normalization ===

type profileNormalizeArgs struct {
	bufferArgs
	Render string  `json:"render"`
	Scale  float64 `json:"scale"`
}

// NormalizeResult reports the range of the buffer before normalization and
// the rendered normalized buffer.
type NormalizeResult struct {
	Original imaging.BufferStats   `json:"original"`
	Flat     bool                  `json:"flat"`
	Image    *imaging.RenderResult `json:"image"`
}

func (s *Server) handleProfileNormalize(args json.RawMessage) (interface{}, error) {
	var a profileNormalizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	m, err := s.loadBuffer(a.bufferArgs, true)
	if err != nil {
		return nil, err
	}

	stats := imaging.Stats(m)
	m.Normalize()

	img, err := render(m, a.Render, a.Scale)
	if err != nil {
		return nil, err
	}
	return &NormalizeResult{
		Original: stats,
		Flat:     stats.Min == stats.Max,
		Image:    img,
	}, nil
}

// === Radial Profile ===

type profileRadialArgs struct {
	bufferArgs
	Center       *profile.Vec2 `json:"center,omitempty"`
	RadialSteps  int           `json:"radial_steps"`
	AngularSteps int           `json:"angular_steps"`
	MinRadius    float64       `json:"min_radius"`
	MaxRadius    *float64      `json:"max_radius,omitempty"`
	Bounds       string        `json:"bounds"`
	Normalize    bool          `json:"normalize"`
	Plot         bool          `json:"plot"`
}

// RadialProfileResult contains a radial profile and how it was taken.
type RadialProfileResult struct {
	Center       profile.Vec2        `json:"center"`
	CenterSource string              `json:"center_source"`
	AngularSteps int                 `json:"angular_steps"`
	Bounds       string              `json:"bounds"`
	Radii        []float64           `json:"radii"`
	Values       []float64           `json:"values"`
	Plot         *imaging.PlotResult `json:"plot,omitempty"`
}

func (s *Server) handleProfileRadial(args json.RawMessage) (interface{}, error) {
	var a profileRadialArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.RadialSteps == 0 {
		a.RadialSteps = s.cfg.RadialSteps
	}
	if a.AngularSteps == 0 {
		a.AngularSteps = s.cfg.AngularSteps
	}
	policy, err := profile.ParseBoundsPolicy(a.Bounds)
	if err != nil {
		return nil, err
	}

	m, err := s.loadBuffer(a.bufferArgs, a.Normalize)
	if err != nil {
		return nil, err
	}
	if a.Normalize {
		m.Normalize()
	}

	maxRadius := float64(min(m.Width, m.Height)) / 2
	if a.MaxRadius != nil {
		maxRadius = *a.MaxRadius
	}

	var center profile.Vec2
	source := "given"
	if a.Center != nil {
		center = *a.Center
	} else {
		center, source = profile.CenterOfMass(m), "center_of_mass"
	}

	cfg := profile.RadialProfileConfig{
		RadialSteps:  a.RadialSteps,
		AngularSteps: a.AngularSteps,
		MinRadius:    a.MinRadius,
		MaxRadius:    maxRadius,
		Policy:       policy,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	values := make([]float64, cfg.RadialSteps)
	if err := profile.ComputeRadialProfile(values, cfg, center, m); err != nil {
		return nil, fmt.Errorf("failed to compute radial profile: %w", err)
	}
	s.debugf("radial profile of %s: %d rings x %d samples around (%.2f,%.2f)",
		a.Path, cfg.RadialSteps, cfg.AngularSteps, center.X, center.Y)

	result := &RadialProfileResult{
		Center:       center,
		CenterSource: source,
		AngularSteps: cfg.AngularSteps,
		Bounds:       policy.String(),
		Radii:        cfg.Radii(),
		Values:       values,
	}
	if a.Plot {
		title := fmt.Sprintf("Radial profile at (%.1f, %.1f)", center.X, center.Y)
		result.Plot, err = imaging.PlotProfile(title, result.Radii, values, 0, 0)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// === Centre Estimate ===

// CenterResult is an estimated feature centre.
type CenterResult struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (s *Server) handleProfileCenterOfMass(args json.RawMessage) (interface{}, error) {
	var a bufferArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	m, err := s.loadBuffer(a, false)
	if err != nil {
		return nil, err
	}
	c := profile.CenterOfMass(m)
	return &CenterResult{X: c.X, Y: c.Y}, nil
}

// === Synthetic Images ===

type profileGenerateArgs struct {
	Width      int           `json:"width"`
	Height     int           `json:"height"`
	Center     *profile.Vec2 `json:"center,omitempty"`
	Size       *float64      `json:"size,omitempty"`
	MaxPhotons *float64      `json:"max_photons,omitempty"`
	Noise      bool          `json:"noise"`
	Seed       *uint64       `json:"seed,omitempty"`
	OutputPath string        `json:"output_path"`
	Render     string        `json:"render"`
	Scale      float64       `json:"scale"`
}

// GenerateResult describes a generated synthetic image.
type GenerateResult struct {
	Width     int                   `json:"width"`
	Height    int                   `json:"height"`
	Center    profile.Vec2          `json:"center"`
	Stats     imaging.BufferStats   `json:"stats"`
	SavedPath string                `json:"saved_path,omitempty"`
	Image     *imaging.RenderResult `json:"image"`
}

func (s *Server) handleProfileGenerateTestImage(args json.RawMessage) (interface{}, error) {
	var a profileGenerateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Width < 1 || a.Height < 1 {
		return nil, fmt.Errorf("width and height must be positive, got %dx%d", a.Width, a.Height)
	}
	if a.Width > maxGeneratedPixels/a.Height {
		return nil, fmt.Errorf("image of %dx%d exceeds the %d pixel limit", a.Width, a.Height, maxGeneratedPixels)
	}

	m := profile.NewImage(a.Width, a.Height)
	center := m.Center()
	if a.Center != nil {
		center = *a.Center
	}
	size, photons, seed := 3.0, 1000.0, uint64(1)
	if a.Size != nil {
		size = *a.Size
	}
	if a.MaxPhotons != nil {
		photons = *a.MaxPhotons
	}
	if a.Seed != nil {
		seed = *a.Seed
	}
	profile.GenerateTestImage(m, center, size, photons)
	if a.Noise {
		profile.AddPoissonNoise(m, seed)
	}

	result := &GenerateResult{
		Width:  a.Width,
		Height: a.Height,
		Center: center,
		Stats:  imaging.Stats(m),
	}
	if a.OutputPath != "" {
		if err := imaging.SaveGray16(a.OutputPath, m); err != nil {
			return nil, err
		}
		s.cache.Evict(a.OutputPath)
		result.SavedPath = a.OutputPath
	}

	img, err := render(m, a.Render, a.Scale)
	if err != nil {
		return nil, err
	}
	result.Image = img
	return result, nil
}
