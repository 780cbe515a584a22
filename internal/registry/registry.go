package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Registry manages persisted template registrations.
type Registry struct {
	path      string
	mu        sync.RWMutex
	version   string
	templates []TemplateRecord
}

// NewRegistry creates a Registry instance and loads it from disk. A missing
// file starts an empty registry.
func NewRegistry(path string) (*Registry, error) {
	r := &Registry{
		path:    path,
		version: "1.0",
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create registry directory: %w", err)
	}

	if err := r.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		r.templates = []TemplateRecord{}
	}

	return r, nil
}

// Load reads the registry from disk.
func (r *Registry) Load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		return err
	}

	var file RegistryFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse registry: %w", err)
	}

	r.version = file.Version
	r.templates = file.Templates

	return nil
}

// Save writes the registry to disk atomically.
func (r *Registry) Save() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	file := RegistryFile{
		Version:   r.version,
		Templates: r.templates,
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal registry: %w", err)
	}

	tmpPath := r.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, r.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

// List returns all registered templates.
func (r *Registry) List() []TemplateRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]TemplateRecord, len(r.templates))
	copy(result, r.templates)
	return result
}

// Get retrieves a template record by id.
func (r *Registry) Get(id string) (TemplateRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.templates {
		if t.ID == id {
			return t, nil
		}
	}

	return TemplateRecord{}, fmt.Errorf("template not found: %s", id)
}

// Add registers a new template.
func (r *Registry) Add(t TemplateRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.templates {
		if existing.ID == t.ID {
			return fmt.Errorf("template with ID %s already exists", t.ID)
		}
	}

	r.templates = append(r.templates, t)
	return nil
}

// Remove deletes a template registration.
func (r *Registry) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, t := range r.templates {
		if t.ID == id {
			r.templates = append(r.templates[:i], r.templates[i+1:]...)
			return nil
		}
	}

	return fmt.Errorf("template not found: %s", id)
}
