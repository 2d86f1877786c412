package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	// AppDir is the directory under the user configuration directory that
	// holds rover's files.
	AppDir = "rover"

	// ManifestFileName is the name of the default manifest file.
	ManifestFileName = "roverfile"

	// SettingsFileName is the name of the default settings file.
	SettingsFileName = "settings.json"

	// DefaultUserAgent is sent with every dataset request.
	DefaultUserAgent = "rover"
)

// Locator returns the path of a file when none was given explicitly.
type Locator func() (string, error)

// Settings holds all configuration options.
type Settings struct {
	// ManifestPath is an explicit manifest location. Empty means the
	// default location under the user configuration directory.
	ManifestPath string `json:"manifest_path"`

	// OutputDir is the directory datasets are written to. Empty means the
	// current working directory.
	OutputDir string `json:"output_dir"`

	UserAgent string `json:"user_agent"`

	// TimeoutSeconds bounds a whole request. Zero leaves the transport
	// defaults in place.
	TimeoutSeconds float64 `json:"timeout_seconds"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		UserAgent: DefaultUserAgent,
	}
}

// Load reads settings from a JSON file. A missing file yields the
// defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Timeout returns TimeoutSeconds as a duration.
func (s *Settings) Timeout() time.Duration {
	if s.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(s.TimeoutSeconds * float64(time.Second))
}

// ManifestLocator returns the locator the manifest loader should use:
// the configured ManifestPath when set, DefaultManifestPath otherwise.
func (s *Settings) ManifestLocator() Locator {
	if s.ManifestPath == "" {
		return DefaultManifestPath
	}
	path := s.ManifestPath
	return func() (string, error) { return path, nil }
}

// DefaultManifestPath returns <user config dir>/rover/roverfile.
//
// This is the only place rover consults process-wide platform state.
func DefaultManifestPath() (string, error) {
	return inConfigDir(ManifestFileName)
}

// DefaultSettingsPath returns <user config dir>/rover/settings.json.
func DefaultSettingsPath() (string, error) {
	return inConfigDir(SettingsFileName)
}

func inConfigDir(name string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not find config dirs: %w", err)
	}
	return filepath.Join(dir, AppDir, name), nil
}
