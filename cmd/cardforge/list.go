package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cardforge/cardforge/internal/registry"
)

type listOptions struct {
	jsonOutput bool
}

func newListCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runList(cmd *cobra.Command, opts *listOptions) error {
	registryPath, err := defaultRegistryPath()
	if err != nil {
		return newCommandError("list", "determining registry path", err, "Ensure your HOME directory is set correctly.")
	}

	reg, err := registry.NewRegistry(registryPath)
	if err != nil {
		return newCommandError("list", "loading template registry", err, "Check registry file permissions and try again.")
	}

	records := reg.List()
	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No templates registered yet.")
		fmt.Fprintln(cmd.OutOrStdout(), "\nRun 'cardforge register <template-path>' to add your first template.")
		return nil
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].ID < records[j].ID
	})

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(records)
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tNAME\tREGISTERED\tPATH")
	for _, r := range records {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n",
			r.ID,
			valueOrFallback(r.Name, "(no name)"),
			r.RegisteredAt.Format("2006-01-02"),
			r.Path,
		)
	}

	return writer.Flush()
}
