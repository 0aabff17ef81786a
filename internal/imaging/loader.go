package imaging

import (
	"fmt"
	"os"
	"sync"

	"github.com/ironsheep/pixel-tools-mcp/internal/imgio"
	"github.com/ironsheep/pixel-tools-mcp/internal/pixel"
)

// ImageCache keeps decoded images keyed by path so repeated tool calls on the
// same file skip the disk.
//
// Entries are canonical buffers as produced by imgio.Load (3 channels, or 4
// when the source has alpha). Load hands out deep copies, so callers may draw
// into what they get without touching the cached entry.
//
// ImageCache is safe for concurrent use.
//
// # Memory Management
//
// Entries stay until Evict or Clear. Paths are used verbatim: a relative and
// an absolute path to the same file are two entries.
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]*pixel.Image8u
}

// NewImageCache returns an empty cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]*pixel.Image8u),
	}
}

// Load returns a private copy of the image at path, decoding it on first use.
// Errors come from imgio.Load and are never cached.
func (c *ImageCache) Load(path string) (*pixel.Image8u, error) {
	img, err := c.shared(path)
	if err != nil {
		return nil, err
	}
	return img.Clone(), nil
}

// shared returns the cached entry itself. Callers must not modify it.
func (c *ImageCache) shared(path string) (*pixel.Image8u, error) {
	c.mu.RLock()
	img, ok := c.images[path]
	c.mu.RUnlock()
	if ok {
		return img, nil
	}

	img, err := imgio.Load(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if cached, ok := c.images[path]; ok {
		img = cached
	} else {
		c.images[path] = img
	}
	c.mu.Unlock()

	return img, nil
}

// Len reports the number of cached images.
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

// Clear drops every cached image.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]*pixel.Image8u)
	c.mu.Unlock()
}

// Evict drops the image cached under path, if any.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// ImageInfo describes an image file as the loader sees it.
type ImageInfo struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	// Channels is the canonical channel count: 3, or 4 with alpha.
	Channels int `json:"channels"`

	// Format is "png" or "jpeg", taken from the extension.
	Format string `json:"format"`

	HasAlpha      bool  `json:"has_alpha"`
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo loads path through cache and reports its metadata.
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	img, err := cache.shared(path)
	if err != nil {
		return nil, err
	}

	format, err := imgio.FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: stat %s: %w", imgio.ErrIO, path, err)
	}

	return &ImageInfo{
		Width:         img.Width(),
		Height:        img.Height(),
		Channels:      img.Channels(),
		Format:        format.String(),
		HasAlpha:      img.Channels() == 4,
		FileSizeBytes: stat.Size(),
	}, nil
}

// DimensionsResult is the width and height of an image.
type DimensionsResult struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// GetDimensions loads path through cache and reports only its size.
func GetDimensions(cache *ImageCache, path string) (*DimensionsResult, error) {
	img, err := cache.shared(path)
	if err != nil {
		return nil, err
	}
	return &DimensionsResult{
		Width:  img.Width(),
		Height: img.Height(),
	}, nil
}
