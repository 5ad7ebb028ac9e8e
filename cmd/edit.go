package cmd

import (
	"github.com/spf13/cobra"

	"shadcn-helper/internal/installer"
)

func newEditCommand(g *globalOptions) *cobra.Command {
	var opts installer.EditOptions

	cmd := &cobra.Command{
		Use:   "edit <component>",
		Short: "Edit a component and add it to git",
		Long: `Detach a component from the index so "install" no longer regenerates it,
un-ignore it, stage it with git and open it in your editor.

The component can be given by its index entry or by the last segment of
its URL.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inst, err := g.newInstaller(cmd)
			if err != nil {
				return err
			}
			_, err = inst.Edit(cmd.Context(), args[0], opts)
			return err
		},
	}

	cmd.Flags().BoolVar(&opts.Commit, "commit", false, `Commit the component after staging it ("Add <component>")`)
	cmd.Flags().BoolVar(&opts.NoOpen, "no-open", false, "Do not open the component in an editor")
	return cmd
}
