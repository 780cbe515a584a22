package template

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	forgeerrors "github.com/cardforge/cardforge/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads a template document from disk, validates it, and returns the
// resulting model. The format is chosen by file extension: .json is decoded
// as JSON, everything else as YAML.
func Load(path string) (*CardTemplate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, forgeerrors.NewParseError(path, 0, err)
	}

	var t CardTemplate
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &t); err != nil {
			return nil, forgeerrors.NewParseError(path, 0, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &t); err != nil {
			return nil, forgeerrors.NewParseError(path, extractLine(err), err)
		}
	}

	if err := Validate(&t); err != nil {
		return nil, err
	}

	return &t, nil
}

// Save writes a template document to disk in the format implied by the
// file extension.
func Save(path string, t *CardTemplate) error {
	var (
		data []byte
		err  error
	)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err = json.MarshalIndent(t, "", "  ")
	} else {
		data, err = yaml.Marshal(t)
	}
	if err != nil {
		return fmt.Errorf("encode template %s: %w", t.ID, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write template %s: %w", t.ID, err)
	}
	return nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
