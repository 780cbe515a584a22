package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cardforge/cardforge/internal/palette"
)

type paletteOptions struct {
	seed       string
	jsonOutput bool
}

func newPaletteCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &paletteOptions{}

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Generate a color palette",
		Long:  `Generate a color palette, deterministically from --seed or randomly when the seed is omitted.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPalette(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.seed, "seed", "s", "", "Seed string for deterministic generation")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runPalette(cmd *cobra.Command, opts *paletteOptions) error {
	var pal palette.ColorPalette
	if opts.seed != "" {
		pal = palette.Generate(opts.seed)
	} else {
		pal = palette.GenerateRandom()
	}

	if opts.jsonOutput {
		return renderPaletteJSON(cmd, pal)
	}

	renderPalette(cmd, pal)
	return nil
}

func renderPaletteJSON(cmd *cobra.Command, pal palette.ColorPalette) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(pal)
}

func renderPalette(cmd *cobra.Command, pal palette.ColorPalette) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s (%s)\n\n", pal.Name, pal.ID)
	for _, role := range []struct {
		name string
		hex  string
	}{
		{"primary", pal.Primary},
		{"secondary", pal.Secondary},
		{"accent", pal.Accent},
		{"background", pal.Background},
		{"text", pal.Text},
		{"subtext", pal.Subtext},
	} {
		fmt.Fprintf(out, "  %-12s %s\n", role.name, swatch(role.hex))
	}

	polarity := "light"
	if pal.IsDark {
		polarity = "dark"
	}
	fmt.Fprintf(out, "\n  polarity: %s\n", polarity)
}
