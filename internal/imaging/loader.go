package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"sync"

	"github.com/ironsheep/radial-profile-mcp/internal/profile"
)

// cacheEntry holds a decoded image and, once requested, its luminance buffer.
type cacheEntry struct {
	img  image.Image
	gray *profile.Image
}

// ImageCache provides thread-safe caching of decoded images and of their
// floating-point luminance buffers.
//
// Entries are keyed by the exact path string passed to Load or LoadGray.
// The luminance buffer is computed on first use and shared by later callers,
// so it must be treated as read-only; Clone it before mutating.
//
// # Example Usage
//
//	cache := imaging.NewImageCache()
//	gray, err := cache.LoadGray("/path/to/bead.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	work := gray.Clone()
//	work.Normalize()
type ImageCache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
}

// NewImageCache creates and initializes a new empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		entries: make(map[string]*cacheEntry),
	}
}

// Load retrieves a decoded image from the cache or decodes it from disk.
// Supported formats are PNG, JPEG and GIF.
func (c *ImageCache) Load(path string) (image.Image, error) {
	e, err := c.entry(path)
	if err != nil {
		return nil, err
	}
	return e.img, nil
}

// LoadGray returns the luminance of the image at path as a float buffer with
// samples in [0,1]. The returned buffer is shared; do not modify it.
func (c *ImageCache) LoadGray(path string) (*profile.Image, error) {
	e, err := c.entry(path)
	if err != nil {
		return nil, err
	}

	c.mu.RLock()
	gray := e.gray
	c.mu.RUnlock()
	if gray != nil {
		return gray, nil
	}

	gray = Luminance(e.img)

	c.mu.Lock()
	if e.gray == nil {
		e.gray = gray
	}
	gray = e.gray
	c.mu.Unlock()

	return gray, nil
}

func (c *ImageCache) entry(path string) (*cacheEntry, error) {
	c.mu.RLock()
	if e, ok := c.entries[path]; ok {
		c.mu.RUnlock()
		return e, nil
	}
	c.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[path]; ok {
		return e, nil
	}
	e := &cacheEntry{img: img}
	c.entries[path] = e
	return e, nil
}

// Evict removes a specific image from the cache by its path. Unknown paths
// are ignored.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.entries, path)
	c.mu.Unlock()
}

// ImageInfo describes an image file and the luminance range of its pixels.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the format implied by the file extension: "png", "jpeg",
	// "gif", or "unknown".
	Format string `json:"format"`

	// BitDepth is the number of bits per channel of the decoded image (8 or 16).
	BitDepth int `json:"bit_depth"`

	// Grayscale reports whether the decoded image has a single gray channel.
	Grayscale bool `json:"grayscale"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`

	// LuminanceMin, LuminanceMax and LuminanceMean summarize the [0,1]
	// luminance buffer that sampling tools operate on.
	LuminanceMin  float64 `json:"luminance_min"`
	LuminanceMax  float64 `json:"luminance_max"`
	LuminanceMean float64 `json:"luminance_mean"`
}

// LoadImageInfo loads an image into the cache and describes it.
//
// The format is determined by file extension. Bit depth and grayscale
// detection use the decoded Go image type.
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}
	gray, err := cache.LoadGray(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "unknown"
	switch filepath.Ext(path) {
	case ".png":
		format = "png"
	case ".jpg", ".jpeg":
		format = "jpeg"
	case ".gif":
		format = "gif"
	}

	bitDepth := 8
	isGray := false
	switch img.(type) {
	case *image.RGBA64, *image.NRGBA64:
		bitDepth = 16
	case *image.Gray16:
		bitDepth = 16
		isGray = true
	case *image.Gray:
		isGray = true
	}

	stats := Stats(gray)
	bounds := img.Bounds()
	return &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        format,
		BitDepth:      bitDepth,
		Grayscale:     isGray,
		FileSizeBytes: stat.Size(),
		LuminanceMin:  stats.Min,
		LuminanceMax:  stats.Max,
		LuminanceMean: stats.Mean,
	}, nil
}
