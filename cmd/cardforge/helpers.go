package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cardforge/cardforge/internal/contrast"
	"github.com/cardforge/cardforge/internal/logger"
	"github.com/cardforge/cardforge/internal/registry"
	"github.com/cardforge/cardforge/internal/template"
)

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}

func defaultRegistryPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".cardforge", "registry.json"), nil
}

func defaultVariantCachePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".cardforge", "variants.json"), nil
}

func newCommandLogger(flags *rootFlags) (*logger.Logger, error) {
	level := "info"
	if flags.verbose {
		level = "debug"
	}

	return logger.New(logger.Options{Level: level, HumanReadable: true})
}

// resolveTemplateArg accepts either a template file path or a registered
// template id and returns the path to load.
func resolveTemplateArg(arg string) (string, error) {
	if _, err := os.Stat(arg); err == nil {
		return arg, nil
	}

	registryPath, err := defaultRegistryPath()
	if err != nil {
		return "", err
	}

	reg, err := registry.NewRegistry(registryPath)
	if err != nil {
		return "", err
	}

	record, err := reg.Get(arg)
	if err != nil {
		return "", fmt.Errorf("%q is neither a file nor a registered template id", arg)
	}

	return record.Path, nil
}

func loadTemplate(arg string) (*template.CardTemplate, error) {
	path, err := resolveTemplateArg(arg)
	if err != nil {
		return nil, err
	}

	return template.Load(path)
}

// swatch renders a hex color as a labelled color block.
func swatch(hex string) string {
	fg := "#ffffff"
	if !contrast.IsDark(hex) {
		fg = "#000000"
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(fg)).
		Render(" " + hex + " ")
}

func valueOrFallback(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
