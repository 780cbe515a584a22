package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cardforge/cardforge/internal/registry"
	"github.com/cardforge/cardforge/internal/template"
	"github.com/cardforge/cardforge/internal/theme"
	"github.com/cardforge/cardforge/internal/variation"
)

type variationsOptions struct {
	count       int
	seeds       []string
	outDir      string
	logoCatalog string
	noCache     bool
}

func newVariationsCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &variationsOptions{}

	cmd := &cobra.Command{
		Use:   "variations <template>",
		Short: "Generate themed variants of a template",
		Long: `Generate up to ten variants of a template: the unthemed base plus distinct
themed versions. With --seeds the set is deterministic; otherwise palettes are
drawn at random. Results are cached per template and reused until the
template's geometry changes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVariations(cmd, rootFlags, args[0], opts)
		},
	}

	cmd.Flags().IntVarP(&opts.count, "count", "c", 9, "Maximum number of themed variants (1-9)")
	cmd.Flags().StringSliceVar(&opts.seeds, "seeds", nil, "Comma-separated seed strings for deterministic variants")
	cmd.Flags().StringVarP(&opts.outDir, "out", "o", "", "Directory to write variant documents into")
	cmd.Flags().StringVar(&opts.logoCatalog, "logo-catalog", "", "Path to a JSON logo catalog")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "Skip the variant cache")

	return cmd
}

func runVariations(cmd *cobra.Command, rootFlags *rootFlags, arg string, opts *variationsOptions) error {
	if opts.count < 1 || opts.count > 9 {
		return fmt.Errorf("--count must be between 1 and 9, got %d", opts.count)
	}

	log, err := newCommandLogger(rootFlags)
	if err != nil {
		return err
	}

	t, err := loadTemplate(arg)
	if err != nil {
		return newCommandError("variations", fmt.Sprintf("loading template %q", arg), err, "Check the template path or register the template first.")
	}

	var cache *registry.VariantCache
	if !opts.noCache {
		cachePath, err := defaultVariantCachePath()
		if err != nil {
			return newCommandError("variations", "determining variant cache path", err, "Ensure your HOME directory is set correctly.")
		}
		cache, err = registry.NewVariantCache(cachePath)
		if err != nil {
			return newCommandError("variations", "loading variant cache", err, "Check cache file permissions, or pass --no-cache.")
		}
	}

	logos, err := loadLogoResolver(opts.logoCatalog)
	if err != nil {
		return newCommandError("variations", "loading logo catalog", err, "Check the catalog path and JSON format.")
	}

	gen := variation.NewGenerator(theme.New(logos, log), log)

	// A cache entry stores variant ids, each of which embeds the palette
	// seed, so a hit rebuilds the same documents deterministically instead
	// of drawing fresh palettes.
	geometryHash := t.GeometryHash()
	if cache != nil && len(opts.seeds) == 0 {
		if entry, ok := cache.Get(t.ID, geometryHash); ok {
			if seeds := cachedSeeds(t.ID, entry.VariantIDs); seeds != nil {
				variants := gen.VariationsSeeded(t, seeds)
				if opts.outDir != "" {
					if err := writeVariants(opts.outDir, variants); err != nil {
						return newCommandError("variations", fmt.Sprintf("writing variants to %q", opts.outDir), err, "Check directory permissions.")
					}
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Using %d cached variants for %s (generated %s)\n",
					len(variants)-1, t.ID, entry.GeneratedAt.Format(time.RFC3339))
				printVariants(cmd, variants)
				return nil
			}
		}
	}

	var variants []*template.CardTemplate
	if len(opts.seeds) > 0 {
		variants = gen.VariationsSeeded(t, opts.seeds)
	} else {
		variants = gen.Variations(t)
	}
	if len(variants) > opts.count+1 {
		variants = variants[:opts.count+1]
	}

	if opts.outDir != "" {
		if err := writeVariants(opts.outDir, variants); err != nil {
			return newCommandError("variations", fmt.Sprintf("writing variants to %q", opts.outDir), err, "Check directory permissions.")
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated %d variants of %s\n", len(variants)-1, t.ID)
	printVariants(cmd, variants)

	if cache != nil && len(opts.seeds) == 0 {
		ids := make([]string, len(variants))
		for i, v := range variants {
			ids[i] = v.ID
		}
		cache.Set(t.ID, registry.CachedVariants{
			GeometryHash: geometryHash,
			VariantIDs:   ids,
			GeneratedAt:  time.Now().UTC(),
		})
		if err := cache.Save(); err != nil {
			log.Error(err, "failed to save variant cache")
		}
	}

	return nil
}

func printVariants(cmd *cobra.Command, variants []*template.CardTemplate) {
	for i, v := range variants {
		label := v.ID
		if i == 0 {
			label += " (base)"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", label)
	}
}

// cachedSeeds recovers the palette seeds from cached variant ids of the form
// <baseID>_gen_<seed>. The first id is the base template itself. Any id that
// does not fit the form marks the entry unusable, and nil forces a fresh run.
func cachedSeeds(baseID string, ids []string) []string {
	if len(ids) < 2 || ids[0] != baseID {
		return nil
	}

	prefix := baseID + "_gen_"
	seeds := make([]string, 0, len(ids)-1)
	for _, id := range ids[1:] {
		if !strings.HasPrefix(id, prefix) || len(id) == len(prefix) {
			return nil
		}
		seeds = append(seeds, strings.TrimPrefix(id, prefix))
	}
	return seeds
}

func writeVariants(dir string, variants []*template.CardTemplate) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, v := range variants {
		name := strings.ReplaceAll(v.ID, "/", "_") + ".yaml"
		if err := template.Save(filepath.Join(dir, name), v); err != nil {
			return err
		}
	}
	return nil
}
