package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "cardforge",
		Short:         "Cardforge generates seeded color themes for card templates",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newPaletteCmd(flags))
	cmd.AddCommand(newAnalyzeCmd(flags))
	cmd.AddCommand(newApplyCmd(flags))
	cmd.AddCommand(newVariationsCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newRegisterCmd(flags))
	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newUnregisterCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
