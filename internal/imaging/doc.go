// Package imaging connects image files to the sampling buffers of package
// profile.
//
// It decodes PNG, JPEG and GIF files (with caching), converts them to [0,1]
// luminance buffers, optionally cropped to a region and smoothed, and renders
// buffers and radial profiles back to base64-encoded PNG for MCP responses.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with (0,0) at the top-left corner. For a
// Region, (X1,Y1) is inclusive and (X2,Y2) exclusive. A buffer produced from
// a Region uses coordinates relative to the region's top-left corner.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. Buffers returned by
// ImageCache.LoadGray are shared between callers and must not be modified;
// Clone them first. All other functions are stateless.
//
// # Luminance
//
// Color images are reduced to luminance with the ITU-R BT.601 weights
// (0.299*R + 0.587*G + 0.114*B). 16-bit grayscale images keep full precision.
package imaging
