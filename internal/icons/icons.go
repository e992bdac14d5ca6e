// Package icons caches per-process application icons, scaled to menu bar
// size, for the panel and list output. Best-effort: a process without an
// icon simply has none.
package icons

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"sync"
	"time"

	"github.com/stowbar/stowbar/internal/logging"
	"github.com/stowbar/stowbar/internal/platform"
	"golang.org/x/image/draw"
)

// DefaultSize is the square pixel size icons are scaled to.
const DefaultSize = 22

type entry struct {
	png     []byte
	fetched time.Time
}

// Cache holds scaled icons keyed by pid. Entries refresh after the
// configured interval so an app swapping its icon shows up eventually.
type Cache struct {
	mu      sync.Mutex
	procs   platform.ProcessResolver
	size    int
	refresh time.Duration
	entries map[int]entry
	log     *slog.Logger
}

// New creates a cache over the process resolver. size is the output pixel
// size; refresh is how long entries stay fresh.
func New(procs platform.ProcessResolver, size int, refresh time.Duration) *Cache {
	if size <= 0 {
		size = DefaultSize
	}
	return &Cache{
		procs:   procs,
		size:    size,
		refresh: refresh,
		entries: make(map[int]entry),
		log:     logging.Component(logging.CompIcons),
	}
}

// Icon returns the scaled PNG icon for a pid, fetching on miss or after
// the refresh interval.
func (c *Cache) Icon(pid int) ([]byte, error) {
	c.mu.Lock()
	if e, ok := c.entries[pid]; ok && time.Since(e.fetched) < c.refresh {
		data := e.png
		c.mu.Unlock()
		return data, nil
	}
	c.mu.Unlock()

	raw, err := c.procs.IconPNG(pid)
	if err != nil {
		return nil, fmt.Errorf("fetch icon for pid %d: %w", pid, err)
	}
	scaled, err := scalePNG(raw, c.size)
	if err != nil {
		return nil, fmt.Errorf("scale icon for pid %d: %w", pid, err)
	}

	c.mu.Lock()
	c.entries[pid] = entry{png: scaled, fetched: time.Now()}
	c.mu.Unlock()

	c.log.Debug("icon cached", "pid", pid, "bytes", len(scaled))
	return scaled, nil
}

// Evict drops the cached icon for a pid, typically when the process exits.
func (c *Cache) Evict(pid int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, pid)
}

// scalePNG decodes, scales to a size×size square, and re-encodes. Icons
// already at the target size pass through a re-encode only.
func scalePNG(data []byte, size int) ([]byte, error) {
	src, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
