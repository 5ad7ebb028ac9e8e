package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"shadcn-helper/internal/installer"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	presentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	missingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

func newListCommand(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tracked components",
		Long: `List the components recorded in the index and whether their files exist.
Missing components are restored by "install".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inst, err := g.newInstaller(cmd)
			if err != nil {
				return err
			}
			entries, err := inst.List()
			if err != nil {
				return err
			}
			renderList(cmd.OutOrStdout(), inst.Framework().String(), inst.Layout().RelIndexFile, entries)
			return nil
		},
	}
}

func renderList(w io.Writer, framework, indexFile string, entries []installer.Entry) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%s components", framework))+
		mutedStyle.Render(fmt.Sprintf(" (%s)", indexFile)))

	if len(entries) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("  No components tracked. Add one with: shadcn-helper add <component>"))
		return
	}

	width := 0
	for _, e := range entries {
		width = max(width, lipgloss.Width(e.ID))
	}
	idStyle := lipgloss.NewStyle().Width(width + 2)

	missing := 0
	for _, e := range entries {
		status := presentStyle.Render("✓ present")
		if !e.Present {
			status = missingStyle.Render("✗ missing")
			missing++
		}
		fmt.Fprintf(w, "  %s%s  %s\n", idStyle.Render(e.ID), status, mutedStyle.Render(e.Path))
	}

	if missing > 0 {
		fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("\n  %d missing, run: shadcn-helper install", missing)))
	}
}
