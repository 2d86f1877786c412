// Package config provides configuration management for rover.
//
// This package handles:
//   - Locating the default manifest under the user configuration directory
//   - Loading and saving settings from JSON files
//   - Default configuration values
//
// # Default Locations
//
// Both files live in the rover directory of os.UserConfigDir:
//
//	~/.config/rover/roverfile       (Linux)
//	~/.config/rover/settings.json
//
// DefaultManifestPath is the single function that reads platform state. It
// has the Locator signature so the manifest loader can be handed a fixed
// path in tests instead.
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/settings.json")
//	// a missing file yields DefaultSettings()
//
// # Configuration Options
//
// Settings includes:
//   - An explicit manifest path
//   - The output directory for fetched datasets
//   - The User-Agent sent with requests
//   - An optional request timeout (none by default)
package config
