package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available datasets and their descriptions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := opts.loadManifest(cmd.Context())
			if err != nil {
				return err
			}

			names := m.Names()
			width := 0
			for _, name := range names {
				width = max(width, lipgloss.Width(name))
			}

			out := cmd.OutOrStdout()
			nameStyle := lipgloss.NewRenderer(out).NewStyle().Bold(true).Width(width)
			for _, name := range names {
				ds, _ := m.Lookup(name)
				fmt.Fprintf(out, "%s\t%s\n", nameStyle.Render(name), ds.Description)
			}
			return nil
		},
	}
}
