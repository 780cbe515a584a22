package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cardforge/cardforge/internal/theme"
	"github.com/cardforge/cardforge/internal/tui/preview"
	"github.com/cardforge/cardforge/internal/variation"
)

type previewOptions struct {
	seeds       []string
	logoCatalog string
}

func newPreviewCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview <template>",
		Short: "Browse generated variants interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, rootFlags, args[0], opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.seeds, "seeds", nil, "Comma-separated seed strings for deterministic variants")
	cmd.Flags().StringVar(&opts.logoCatalog, "logo-catalog", "", "Path to a JSON logo catalog")

	return cmd
}

func runPreview(cmd *cobra.Command, rootFlags *rootFlags, arg string, opts *previewOptions) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("preview requires an interactive terminal; use 'cardforge variations' for scripted output")
	}

	log, err := newCommandLogger(rootFlags)
	if err != nil {
		return err
	}

	t, err := loadTemplate(arg)
	if err != nil {
		return newCommandError("preview", fmt.Sprintf("loading template %q", arg), err, "Check the template path or register the template first.")
	}

	logos, err := loadLogoResolver(opts.logoCatalog)
	if err != nil {
		return newCommandError("preview", "loading logo catalog", err, "Check the catalog path and JSON format.")
	}

	gen := variation.NewGenerator(theme.New(logos, log), log)

	program := tea.NewProgram(preview.NewModel(gen, t, opts.seeds), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("preview failed: %w", err)
	}

	if m, ok := final.(preview.Model); ok && m.Selected() != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Selected %s\n", m.Selected())
	}

	return nil
}
