package cmd

import (
	"github.com/spf13/cobra"
)

func newAddCommand(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <component...>",
		Short: "Add official components or components from third-party URLs",
		Long: `Add components with the shadcn generator and record them in the index.

Existing components are stashed while the generator runs and merged back
afterwards; regenerated files replace their stashed copies.

Examples:
  shadcn-helper add button card
  shadcn-helper add https://example.com/r/date-picker.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inst, err := g.newInstaller(cmd)
			if err != nil {
				return err
			}
			return inst.Add(cmd.Context(), args...)
		},
	}
}

func newInstallCommand(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Install added components",
		Long: `Regenerate every component recorded in the index, e.g. after cloning a
project whose components directory is git-ignored.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inst, err := g.newInstaller(cmd)
			if err != nil {
				return err
			}
			return inst.Install(cmd.Context())
		},
	}
}
