package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/handiism/rover/internal/download"
)

func newFetchCmd(opts *options) *cobra.Command {
	var (
		dir     string
		saveDir bool
	)

	cmd := &cobra.Command{
		Use:   "fetch <datasets...>",
		Short: "Retrieve datasets to the current directory",
		Long: "Fetch the named datasets using the URLs and filenames defined in the roverfile.\n" +
			"Nothing is downloaded unless every name is known.",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := opts.loadManifest(cmd.Context())
			if err != nil {
				return err
			}

			if dir != "" {
				opts.settings.OutputDir = dir
			}
			if saveDir {
				if dir == "" {
					return fmt.Errorf("--save-dir needs --dir")
				}
				if err := opts.saveSettings(); err != nil {
					return fmt.Errorf("save settings: %w", err)
				}
			}

			out := cmd.OutOrStdout()
			manager := download.NewManager(m, download.NewHTTPFetcher(opts.settings), func(event download.ProgressEvent) {
				switch event.Level {
				case download.LevelError:
					// reported once by Execute's caller
					return
				case download.LevelVerbose:
					if !opts.verbose {
						return
					}
				}
				fmt.Fprintln(out, progressPrefix(event.Level)+event.Message)
			})

			return manager.Execute(cmd.Context(), args)
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "directory to write datasets to (default: current directory)")
	cmd.Flags().BoolVar(&saveDir, "save-dir", false, "remember --dir as output_dir in the settings file")
	return cmd
}

func progressPrefix(level download.ProgressLevel) string {
	switch level {
	case download.LevelError:
		return "x "
	case download.LevelWarning:
		return "! "
	case download.LevelSuccess:
		return "✓ "
	case download.LevelInfo:
		return "› "
	}
	return "  "
}
