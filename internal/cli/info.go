package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/handiism/rover/internal/download"
)

// newInfoCmd prints details one name at a time. Unlike fetch, an unknown
// name only stops the listing at that point; earlier entries have already
// been printed.
func newInfoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "info <datasets...>",
		Short: "Show detailed information for specified datasets",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := opts.loadManifest(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, name := range args {
				ds, ok := m.Lookup(name)
				if !ok {
					return &download.UnknownDatasetsError{Names: []string{name}}
				}
				fmt.Fprintln(out, name)
				fmt.Fprint(out, ds.Info())
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}
