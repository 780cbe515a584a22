package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cardforge/cardforge/internal/registry"
	"github.com/cardforge/cardforge/internal/template"
)

type registerOptions struct {
	id          string
	name        string
	description string
}

func newRegisterCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &registerOptions{}

	cmd := &cobra.Command{
		Use:   "register <template-path>",
		Short: "Register a template so other commands can refer to it by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegister(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.id, "id", "i", "", "Template ID (auto-generated if omitted)")
	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "Template name (defaults to the document's name)")
	cmd.Flags().StringVarP(&opts.description, "description", "d", "", "Optional description")

	return cmd
}

func runRegister(cmd *cobra.Command, path string, opts *registerOptions) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return newCommandError("register", fmt.Sprintf("resolving template path %q", path), err, "Check that the file exists and you have permission to read it.")
	}

	t, err := template.Load(absPath)
	if err != nil {
		return newCommandError("register", fmt.Sprintf("loading template %q", path), err, "Fix the template document and try again.")
	}

	if opts.id == "" {
		opts.id = registry.GenerateTemplateID(absPath)
	}
	if err := registry.ValidateTemplateID(opts.id); err != nil {
		return newCommandError("register", fmt.Sprintf("validating id %q", opts.id), err, "IDs are lowercase alphanumerics with inner hyphens or underscores.")
	}

	if opts.name == "" {
		opts.name = valueOrFallback(t.Name, deriveNameFromPath(absPath))
	}

	registryPath, err := defaultRegistryPath()
	if err != nil {
		return newCommandError("register", "determining registry path", err, "Ensure your HOME directory is set correctly.")
	}

	reg, err := registry.NewRegistry(registryPath)
	if err != nil {
		return newCommandError("register", "loading template registry", err, "Check registry file permissions and try again.")
	}

	record := registry.TemplateRecord{
		ID:           opts.id,
		Name:         opts.name,
		Path:         absPath,
		Description:  opts.description,
		RegisteredAt: time.Now().UTC(),
	}

	if err := reg.Add(record); err != nil {
		return newCommandError("register", fmt.Sprintf("adding template %q", opts.id), err, "Use a different --id, or unregister the existing entry first.")
	}

	if err := reg.Save(); err != nil {
		return newCommandError("register", "saving template registry", err, "Check registry file permissions and try again.")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Registered %s (%s)\n", record.ID, record.Name)
	return nil
}

func deriveNameFromPath(path string) string {
	base := filepath.Base(path)
	if idx := strings.LastIndex(base, "."); idx > 0 {
		base = base[:idx]
	}
	return strings.TrimSpace(base)
}
