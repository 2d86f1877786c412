package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/handiism/rover/internal/config"
	"github.com/handiism/rover/internal/ctxlog"
	"github.com/handiism/rover/internal/manifest"
	"github.com/handiism/rover/internal/tui"
)

func main() {
	var (
		manifestFlag = flag.String("manifest", "", "Path to the roverfile")
		configFlag   = flag.String("config", "", "Path to the settings file")
	)
	flag.Parse()

	if err := run(*manifestFlag, *configFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(manifestPath, configPath string) error {
	if configPath == "" {
		var err error
		if configPath, err = config.DefaultSettingsPath(); err != nil {
			return err
		}
	}

	settings, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if manifestPath != "" {
		settings.ManifestPath = manifestPath
	}

	// The TUI owns the terminal; keep log records out of it.
	ctx := ctxlog.WithLogger(context.Background(), ctxlog.New(io.Discard, false))

	m, err := manifest.Load(ctx, "", settings.ManifestLocator())
	if err != nil {
		return err
	}
	return tui.Run(ctx, m, settings)
}
