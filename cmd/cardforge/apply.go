package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cardforge/cardforge/internal/logo"
	"github.com/cardforge/cardforge/internal/palette"
	"github.com/cardforge/cardforge/internal/template"
	"github.com/cardforge/cardforge/internal/theme"
)

type applyOptions struct {
	seed        string
	output      string
	logoCatalog string
}

func newApplyCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &applyOptions{}

	cmd := &cobra.Command{
		Use:   "apply <template>",
		Short: "Apply a generated palette to a template",
		Long:  `Generate a palette (seeded or random), theme the template with it, and write the themed document.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, rootFlags, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.seed, "seed", "s", "", "Seed string for deterministic generation")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output path (defaults to <template>_themed.yaml)")
	cmd.Flags().StringVar(&opts.logoCatalog, "logo-catalog", "", "Path to a JSON logo catalog")

	return cmd
}

func runApply(cmd *cobra.Command, rootFlags *rootFlags, arg string, opts *applyOptions) error {
	log, err := newCommandLogger(rootFlags)
	if err != nil {
		return err
	}

	t, err := loadTemplate(arg)
	if err != nil {
		return newCommandError("apply", fmt.Sprintf("loading template %q", arg), err, "Check the template path or register the template first.")
	}

	logos, err := loadLogoResolver(opts.logoCatalog)
	if err != nil {
		return newCommandError("apply", "loading logo catalog", err, "Check the catalog path and JSON format.")
	}

	var pal palette.ColorPalette
	if opts.seed != "" {
		pal = palette.Generate(opts.seed)
	} else {
		pal = palette.GenerateRandom()
	}

	applier := theme.New(logos, log)
	themed := applier.ApplyPalette(t, pal)

	outPath := opts.output
	if outPath == "" {
		path, err := resolveTemplateArg(arg)
		if err != nil {
			return err
		}
		outPath = themedOutputPath(path)
	}

	if err := template.Save(outPath, themed); err != nil {
		return newCommandError("apply", fmt.Sprintf("writing themed template to %q", outPath), err, "Check directory permissions.")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Applied palette %s (%s) to %s\n", pal.ID, pal.Name, t.ID)
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", outPath)
	return nil
}

func loadLogoResolver(catalogPath string) (logo.Resolver, error) {
	if catalogPath == "" {
		return logo.NopResolver{}, nil
	}
	return logo.LoadCatalog(catalogPath)
}

func themedOutputPath(path string) string {
	for _, ext := range []string{".yaml", ".yml", ".json"} {
		if strings.HasSuffix(path, ext) {
			return strings.TrimSuffix(path, ext) + "_themed" + ext
		}
	}
	return path + "_themed.yaml"
}
