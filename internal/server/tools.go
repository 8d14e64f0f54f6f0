package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// Schema fragments shared by several tools.
var (
	pathProperty = map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
	regionProperty = map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"x1": map[string]interface{}{"type": "integer"},
			"y1": map[string]interface{}{"type": "integer"},
			"x2": map[string]interface{}{"type": "integer"},
			"y2": map[string]interface{}{"type": "integer"},
		},
		"description": "Optional region of interest (x2, y2 exclusive). Coordinates in the result are relative to its top-left corner.",
	}
	smoothProperty = map[string]interface{}{
		"type":        "number",
		"description": "Optional Gaussian smoothing radius in pixels applied before sampling. Default 0 (off)",
		"default":     0,
	}
	renderProperty = map[string]interface{}{
		"type":        "string",
		"enum":        []string{"gray", "heatmap"},
		"description": "How to render the resulting buffer: 16-bit grayscale or false-colour heatmap. Default gray",
		"default":     "gray",
	}
	scaleProperty = map[string]interface{}{
		"type":        "number",
		"description": "Optional scale factor for the rendered image (nearest-neighbour). Default 1.0",
		"default":     1.0,
	}
	pointProperty = map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"x": map[string]interface{}{"type": "number"},
			"y": map[string]interface{}{"type": "number"},
		},
		"required": []string{"x", "y"},
	}
)

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, bit depth and luminance range.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "profile_sample",
			Description: "Bilinearly interpolate the image luminance (0-1) at fractional pixel coordinates. Coordinates outside the image are clamped to the nearest edge and flagged.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"points": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x":     map[string]interface{}{"type": "number"},
								"y":     map[string]interface{}{"type": "number"},
								"label": map[string]interface{}{"type": "string", "description": "Optional label for this point"},
							},
							"required": []string{"x", "y"},
						},
						"description": "Points to sample",
					},
					"region": regionProperty,
					"smooth": smoothProperty,
				},
				"required": []string{"path", "points"},
			},
		},
		{
			Name:        "profile_normalize",
			Description: "Stretch the image luminance to the 0-1 range (min to 0, max to 1; flat images become all zero) and return the rendered result with the original range.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":   pathProperty,
					"region": regionProperty,
					"smooth": smoothProperty,
					"render": renderProperty,
					"scale":  scaleProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "profile_radial",
			Description: "Compute a radial intensity profile: the mean of angular_steps samples on each of radial_steps rings between min_radius and max_radius around a centre. Without a centre the intensity centre of mass is used.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":   pathProperty,
					"center": pointProperty,
					"radial_steps": map[string]interface{}{
						"type":        "integer",
						"description": "Number of rings (output values). Default from server configuration (32)",
					},
					"angular_steps": map[string]interface{}{
						"type":        "integer",
						"description": "Samples per ring. Default from server configuration (64)",
					},
					"min_radius": map[string]interface{}{
						"type":        "number",
						"description": "Radius of the first ring in pixels. Default 0",
						"default":     0,
					},
					"max_radius": map[string]interface{}{
						"type":        "number",
						"description": "Radius of the last ring in pixels. Default: half the smaller image dimension",
					},
					"bounds": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"clamp", "skip", "zero"},
						"description": "Treatment of ring samples outside the image: clamp to the edge, skip them, or count them as zero. Default clamp",
						"default":     "clamp",
					},
					"normalize": map[string]interface{}{
						"type":        "boolean",
						"description": "Normalize the image to 0-1 before profiling. Default false",
						"default":     false,
					},
					"plot": map[string]interface{}{
						"type":        "boolean",
						"description": "Include a PNG line plot of the profile. Default false",
						"default":     false,
					},
					"region": regionProperty,
					"smooth": smoothProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "profile_center_of_mass",
			Description: "Estimate the centre of the brightest feature as the background-subtracted intensity centroid.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":   pathProperty,
					"region": regionProperty,
					"smooth": smoothProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "profile_generate_test_image",
			Description: "Generate a synthetic Gaussian point-spread function image (max_photons * exp(-r^2 / 2 size^2)) with optional Poisson photon noise. Optionally saves it as a 16-bit PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"width":  map[string]interface{}{"type": "integer", "description": "Image width in pixels"},
					"height": map[string]interface{}{"type": "integer", "description": "Image height in pixels"},
					"center": pointProperty,
					"size": map[string]interface{}{
						"type":        "number",
						"description": "Gaussian sigma in pixels. Default 3",
						"default":     3,
					},
					"max_photons": map[string]interface{}{
						"type":        "number",
						"description": "Peak intensity. Default 1000",
						"default":     1000,
					},
					"noise": map[string]interface{}{
						"type":        "boolean",
						"description": "Add Poisson photon noise. Default false",
						"default":     false,
					},
					"seed": map[string]interface{}{
						"type":        "integer",
						"description": "Noise seed. Default 1",
						"default":     1,
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional path to write the image as a 16-bit grayscale PNG",
					},
					"render": renderProperty,
					"scale":  scaleProperty,
				},
				"required": []string{"width", "height"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
