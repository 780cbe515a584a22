package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// VariantCache persists generated variant sets between sessions, keyed by
// template id. Entries carry the geometry hash of the base template they
// were derived from; a lookup with a different hash is a miss. The theming
// core itself stays pure — this layer owns all memoization.
type VariantCache struct {
	path    string
	mu      sync.RWMutex
	version string
	entries map[string]CachedVariants
}

// NewVariantCache creates a VariantCache instance and loads it from disk.
func NewVariantCache(path string) (*VariantCache, error) {
	c := &VariantCache{
		path:    path,
		version: "1.0",
		entries: make(map[string]CachedVariants),
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	if err := c.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	return c, nil
}

// Load reads the cache from disk.
func (c *VariantCache) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := os.ReadFile(c.path)
	if err != nil {
		return err
	}

	var file VariantCacheFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse cache: %w", err)
	}

	c.version = file.Version
	c.entries = file.Entries
	if c.entries == nil {
		c.entries = make(map[string]CachedVariants)
	}

	return nil
}

// Save writes the cache to disk atomically.
func (c *VariantCache) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	file := VariantCacheFile{
		Version: c.version,
		Entries: c.entries,
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cache: %w", err)
	}

	tmpPath := c.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, c.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

// Get retrieves cached variants for a template. A stored entry whose
// geometry hash differs from the supplied one is stale and reported as a
// miss.
func (c *VariantCache) Get(templateID, geometryHash string) (CachedVariants, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[templateID]
	if !ok || entry.GeometryHash != geometryHash {
		return CachedVariants{}, false
	}
	return entry, true
}

// Set stores the variant set for a template.
func (c *VariantCache) Set(templateID string, entry CachedVariants) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[templateID] = entry
}

// Invalidate removes the cached variants for a template.
func (c *VariantCache) Invalidate(templateID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, templateID)
}

// InvalidateAll clears the cache.
func (c *VariantCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]CachedVariants)
}
