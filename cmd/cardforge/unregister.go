package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cardforge/cardforge/internal/registry"
)

func newUnregisterCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unregister <id>",
		Short: "Remove a template from the registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUnregister(cmd, args[0])
		},
	}

	return cmd
}

func runUnregister(cmd *cobra.Command, id string) error {
	registryPath, err := defaultRegistryPath()
	if err != nil {
		return newCommandError("unregister", "determining registry path", err, "Ensure your HOME directory is set correctly.")
	}

	reg, err := registry.NewRegistry(registryPath)
	if err != nil {
		return newCommandError("unregister", "loading template registry", err, "Check registry file permissions and try again.")
	}

	if err := reg.Remove(id); err != nil {
		return newCommandError("unregister", fmt.Sprintf("removing template %q", id), err, "Run 'cardforge list' to see registered template ids.")
	}

	if err := reg.Save(); err != nil {
		return newCommandError("unregister", "saving template registry", err, "Check registry file permissions and try again.")
	}

	cachePath, err := defaultVariantCachePath()
	if err == nil {
		if cache, cacheErr := registry.NewVariantCache(cachePath); cacheErr == nil {
			cache.Invalidate(id)
			_ = cache.Save()
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Unregistered %s\n", id)
	return nil
}
