// Package cli wires the rover commands: list, fetch, info and tui.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/handiism/rover/internal/config"
	"github.com/handiism/rover/internal/ctxlog"
	"github.com/handiism/rover/internal/manifest"
)

// options holds the global flags and the settings they produce.
type options struct {
	manifestPath string
	configPath   string
	verbose      bool

	// settingsPath is where settings were read from, "" when no
	// location could be determined.
	settingsPath string
	settings     *config.Settings
}

// NewRootCmd builds the rover command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "rover",
		Short:         "Simple utility for fetching datasets from the internet",
		Long:          "rover fetches datasets described in a roverfile to the current directory.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.init(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.manifestPath, "manifest", "m", "", "path to the roverfile (default: <config dir>/rover/roverfile)")
	flags.StringVar(&opts.configPath, "config", "", "path to the settings file (default: <config dir>/rover/settings.json)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "show verbose output")

	root.AddCommand(
		newListCmd(opts),
		newFetchCmd(opts),
		newInfoCmd(opts),
		newTUICmd(opts),
	)
	return root
}

// Execute runs rover with args and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func (o *options) init(cmd *cobra.Command) error {
	logger := ctxlog.New(cmd.ErrOrStderr(), o.verbose)
	cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))

	path := o.configPath
	if path == "" {
		var err error
		path, err = config.DefaultSettingsPath()
		if err != nil {
			logger.Debug("no settings file location, using defaults", "err", err)
			o.settings = config.DefaultSettings()
			return nil
		}
	}

	settings, err := config.Load(path)
	if err != nil {
		return err
	}
	o.settingsPath = path
	o.settings = settings
	return nil
}

// saveSettings writes the current settings back to the file they came
// from.
func (o *options) saveSettings() error {
	if o.settingsPath == "" {
		return fmt.Errorf("no settings file location; pass --config")
	}
	return o.settings.Save(o.settingsPath)
}

func (o *options) loadManifest(ctx context.Context) (*manifest.Manifest, error) {
	return manifest.Load(ctx, o.manifestPath, o.settings.ManifestLocator())
}
