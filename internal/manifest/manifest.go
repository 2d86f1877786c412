package manifest

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/handiism/rover/internal/ctxlog"
	"github.com/handiism/rover/internal/model"
)

// Manifest is the parsed roverfile: named datasets plus optional metadata.
//
// A Manifest is immutable once built; it only exposes read accessors.
type Manifest struct {
	path     string
	author   string
	hasAuth  bool
	datasets map[string]model.Dataset
}

// New builds a Manifest from already validated datasets. The map is
// copied.
func New(datasets map[string]model.Dataset) *Manifest {
	return &Manifest{datasets: maps.Clone(nonNil(datasets))}
}

func nonNil(m map[string]model.Dataset) map[string]model.Dataset {
	if m == nil {
		return map[string]model.Dataset{}
	}
	return m
}

// Load reads and decodes the manifest at path.
//
// When path is empty, locate is called to find it. Files ending in ".hcl"
// are decoded as HCL, everything else as TOML.
//
// Errors wrap ErrNotFound when no path can be determined or the file
// cannot be opened, and are a *ParseError when the content does not match
// the manifest schema.
func Load(ctx context.Context, path string, locate func() (string, error)) (*Manifest, error) {
	logger := ctxlog.FromContext(ctx)

	if path == "" {
		if locate == nil {
			return nil, fmt.Errorf("%w: no manifest path given", ErrNotFound)
		}
		located, err := locate()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		path = located
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}

	logger.Debug("loading manifest", "path", path, "format", formatFor(path))

	var out *Manifest
	switch formatFor(path) {
	case formatHCL:
		out, err = decodeHCL(data, path)
	default:
		out, err = decodeTOML(ctx, data, path)
	}
	if err != nil {
		return nil, err
	}

	out.path = path
	logger.Debug("manifest loaded", "path", path, "datasets", len(out.datasets))
	return out, nil
}

// Names returns every dataset name in lexicographic order.
func (m *Manifest) Names() []string {
	return slices.Sorted(maps.Keys(m.datasets))
}

// Lookup returns the dataset stored under name. Matching is exact and
// case-sensitive.
func (m *Manifest) Lookup(name string) (model.Dataset, bool) {
	ds, ok := m.datasets[name]
	return ds, ok
}

// Len returns the number of datasets.
func (m *Manifest) Len() int {
	return len(m.datasets)
}

// Author returns the optional author field.
func (m *Manifest) Author() (string, bool) {
	return m.author, m.hasAuth
}

// Path returns the file the manifest was loaded from, or "" for a
// Manifest built with New.
func (m *Manifest) Path() string {
	return m.path
}
