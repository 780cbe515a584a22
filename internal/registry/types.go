package registry

import (
	"time"
)

// TemplateRecord is a registered base template the CLI can theme by id.
type TemplateRecord struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Path         string    `json:"path"`
	Description  string    `json:"description,omitempty"`
	RegisteredAt time.Time `json:"registered_at"`
}

// RegistryFile is the JSON file format for the template registry.
type RegistryFile struct {
	Version   string           `json:"version"`
	Templates []TemplateRecord `json:"templates"`
}

// CachedVariants stores a generated variant set together with the geometry
// hash of the base template it was derived from. A differing hash means the
// entry is stale: the spatial context map is a pure function of geometry,
// so any geometry change invalidates every derived variant.
type CachedVariants struct {
	GeometryHash string    `json:"geometry_hash"`
	VariantIDs   []string  `json:"variant_ids"`
	GeneratedAt  time.Time `json:"generated_at"`
}

// VariantCacheFile is the JSON file format for the variant cache.
type VariantCacheFile struct {
	Version string                    `json:"version"`
	Entries map[string]CachedVariants `json:"entries"`
}
