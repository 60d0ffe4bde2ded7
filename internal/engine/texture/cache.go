// Package texture loads record images into GPU textures for the
// tooltip and detail panel, caching them per record.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration

	"github.com/AllenDang/cimgui-go/backend"
	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"  // BMP decoder registration
	_ "golang.org/x/image/webp" // WebP decoder registration

	"github.com/archiviz/universe/internal/logger"
)

// Entry is a loaded texture with its pixel dimensions. A nil texture
// marks a record whose image failed to load; the UI hides the image
// area for those instead of showing a broken placeholder.
type Entry struct {
	Texture *backend.Texture
	Width   int
	Height  int
}

// Cache loads images on demand and keeps them alive for the session.
// Failures are cached too so a broken path is fetched only once.
type Cache struct {
	entries map[int]*Entry
	client  *http.Client
}

// NewCache creates an empty texture cache.
func NewCache() *Cache {
	return &Cache{
		entries: make(map[int]*Entry),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Get returns the cached entry for a record, loading it on first use.
// The returned entry is never nil; check Entry.Texture before drawing.
func (c *Cache) Get(id int, path string) *Entry {
	if e, ok := c.entries[id]; ok {
		return e
	}

	e := &Entry{}
	c.entries[id] = e

	img, err := c.load(path)
	if err != nil {
		logger.Warn("image load failed",
			zap.Int("id", id), zap.String("path", path), zap.Error(err))
		return e
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			rgba.Set(x, y, img.At(x, y))
		}
	}

	e.Texture = backend.NewTextureFromRgba(rgba)
	e.Width = bounds.Dx()
	e.Height = bounds.Dy()
	return e
}

// Evict drops a cached entry so the next Get reloads it.
func (c *Cache) Evict(id int) {
	delete(c.entries, id)
}

// Clear drops every cached entry, e.g. after loading a new dataset.
func (c *Cache) Clear() {
	c.entries = make(map[int]*Entry)
}

func (c *Cache) load(path string) (image.Image, error) {
	if path == "" {
		return nil, os.ErrNotExist
	}

	var data []byte
	var err error
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		data, err = c.fetch(path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	return img, err
}

func (c *Cache) fetch(url string) ([]byte, error) {
	resp, err := c.client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}
	return io.ReadAll(resp.Body)
}
