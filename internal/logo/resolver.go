// Package logo resolves logo asset paths for themed templates. Resolution
// is a pure lookup keyed by template id and the background color the logo
// ends up sitting on, so a dark card gets the light asset variant and vice
// versa.
package logo

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cardforge/cardforge/internal/contrast"
	forgeerrors "github.com/cardforge/cardforge/pkg/errors"
)

// Resolver maps a template and its resolved background color to a logo
// asset path. Implementations must be pure and side-effect free.
type Resolver interface {
	Resolve(templateID, backgroundHex string) (string, error)
}

// NopResolver leaves logo layers untouched. It is the default when no
// catalog is configured.
type NopResolver struct{}

// Resolve returns an empty path, meaning "keep the existing asset".
func (NopResolver) Resolve(string, string) (string, error) {
	return "", nil
}

// Entry holds the asset variants for one template's logo.
type Entry struct {
	LightPath string `json:"light_path"`
	DarkPath  string `json:"dark_path"`
}

// CatalogResolver resolves logos from an in-memory catalog of per-template
// asset variants.
type CatalogResolver struct {
	entries map[string]Entry
}

// NewCatalogResolver creates a resolver over the given catalog.
func NewCatalogResolver(entries map[string]Entry) *CatalogResolver {
	return &CatalogResolver{entries: entries}
}

// LoadCatalog reads a JSON catalog file mapping template id to asset
// variants.
func LoadCatalog(path string) (*CatalogResolver, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, forgeerrors.NewParseError(path, 0, err)
	}

	var entries map[string]Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, forgeerrors.NewParseError(path, 0, err)
	}

	return NewCatalogResolver(entries), nil
}

// Resolve picks the asset variant that reads well on the given background:
// the light variant on dark backgrounds, the dark variant on light ones.
func (r *CatalogResolver) Resolve(templateID, backgroundHex string) (string, error) {
	entry, ok := r.entries[templateID]
	if !ok {
		return "", forgeerrors.NewResolveError(templateID, fmt.Errorf("no logo catalog entry"))
	}

	if contrast.IsDark(backgroundHex) {
		return entry.LightPath, nil
	}
	return entry.DarkPath, nil
}
