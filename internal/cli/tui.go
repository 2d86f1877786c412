package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/handiism/rover/internal/ctxlog"
	"github.com/handiism/rover/internal/tui"
)

func newTUICmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Pick datasets to fetch interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := opts.loadManifest(cmd.Context())
			if err != nil {
				return err
			}
			// The TUI owns the terminal; keep log records out of it.
			ctx := ctxlog.WithLogger(cmd.Context(), ctxlog.New(io.Discard, false))
			return tui.Run(ctx, m, opts.settings)
		},
	}
}
