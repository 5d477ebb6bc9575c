package geocode

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/rovira-studio/atelier/internal/models"
)

// Cache persists query string -> coordinate mappings in a single JSON file.
// The whole blob is rewritten on every insertion and entries are never
// invalidated; addresses of installed works do not move.
type Cache struct {
	path    string
	entries map[string]models.GeoPoint
}

// OpenCache loads the cache at path. A missing file starts empty; an
// unreadable or malformed file is logged and treated as empty, since this
// process is its only writer.
func OpenCache(path string) *Cache {
	c := &Cache{
		path:    path,
		entries: make(map[string]models.GeoPoint),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("Failed to read geocode cache, starting empty", "path", path, "error", err)
		}
		return c
	}

	if err := json.Unmarshal(data, &c.entries); err != nil {
		slog.Warn("Malformed geocode cache, starting empty", "path", path, "error", err)
		c.entries = make(map[string]models.GeoPoint)
	}
	return c
}

// Get returns the cached coordinate for query, if any.
func (c *Cache) Get(query string) (models.GeoPoint, bool) {
	pt, ok := c.entries[query]
	return pt, ok
}

// Put stores a coordinate and rewrites the cache file. The file is written
// to a temp path and renamed so a crash never leaves a truncated blob.
func (c *Cache) Put(query string, pt models.GeoPoint) error {
	c.entries[query] = pt

	data, err := json.MarshalIndent(c.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode geocode cache: %w", err)
	}

	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write geocode cache: %w", err)
	}
	return os.Rename(tmp, c.path)
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	return len(c.entries)
}
