// Package server implements the MCP (Model Context Protocol) server for image
// sampling and radial profiling tools.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0, one request per
// line on stdin and one response per line on stdout. Supported MCP methods
// are initialize, tools/list, tools/call and ping.
//
// # Available Tools
//
//   - image_load: image metadata and luminance range
//   - profile_sample: bilinear samples at fractional coordinates
//   - profile_normalize: stretch luminance to 0-1 and render it
//   - profile_radial: ring-averaged radial intensity profile, optional plot
//   - profile_center_of_mass: background-subtracted intensity centroid
//   - profile_generate_test_image: synthetic Gaussian PSF with optional noise
//
// All profile tools work on the [0,1] luminance of the image file and accept
// an optional region of interest and Gaussian pre-smoothing.
//
// # Image Caching
//
// Decoded images and their luminance buffers are cached by path for the
// lifetime of the process. Files written by profile_generate_test_image are
// evicted so later calls see the new contents.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with code
// -32000 and the Go error string in data. Malformed tools/call parameters
// yield -32602 and unknown methods -32601.
//
// # Configuration
//
// See ConfigFromEnv for the environment variables read at startup.
package server
