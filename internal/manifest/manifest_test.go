package manifest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handiism/rover/internal/model"
)

const irisWine = `author = "Jane Doe"

[datasets.iris]
filename = "iris.csv"
description = "Fisher's iris flower dataset"
url = "https://example.org/iris.csv"

[datasets.wine]
filename = "wine.csv"
description = "Wine recognition data"
url = "https://example.org/wine.csv"
`

func writeManifest(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func fixed(path string) func() (string, error) {
	return func() (string, error) { return path, nil }
}

func TestLoad_RoundTrip(t *testing.T) {
	path := writeManifest(t, "roverfile", `
[datasets.a]
filename = "a.csv"
description = "d"
url = "u"
`)

	m, err := Load(context.Background(), path, nil)
	require.NoError(t, err)

	got, ok := m.Lookup("a")
	require.True(t, ok)
	if diff := cmp.Diff(model.Dataset{Filename: "a.csv", Description: "d", URL: "u"}, got); diff != "" {
		t.Errorf("Lookup(a) mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, path, m.Path())

	_, hasAuthor := m.Author()
	assert.False(t, hasAuthor)
}

func TestLoad_UsesLocatorWhenPathEmpty(t *testing.T) {
	path := writeManifest(t, "roverfile", irisWine)

	m, err := Load(context.Background(), "", fixed(path))
	require.NoError(t, err)

	assert.Equal(t, path, m.Path())
	assert.Equal(t, 2, m.Len())
	author, ok := m.Author()
	assert.True(t, ok)
	assert.Equal(t, "Jane Doe", author)
}

func TestLoad_ExplicitPathSkipsLocator(t *testing.T) {
	path := writeManifest(t, "roverfile", irisWine)

	_, err := Load(context.Background(), path, func() (string, error) {
		t.Fatal("locator must not be called")
		return "", nil
	})
	require.NoError(t, err)
}

func TestLoad_NotFound(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		locate func() (string, error)
	}{
		{"missing file", filepath.Join(t.TempDir(), "absent"), nil},
		{"locator fails", "", func() (string, error) { return "", errors.New("no config dir") }},
		{"no locator", "", nil},
		{"located file missing", "", fixed(filepath.Join(t.TempDir(), "absent"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(context.Background(), tt.path, tt.locate)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestLoad_ParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{
			name:    "syntax",
			content: "[datasets.iris\nfilename = ",
		},
		{
			name:    "missing datasets table",
			content: `author = "x"`,
			wantMsg: `missing required table "datasets"`,
		},
		{
			name: "missing url",
			content: `[datasets.iris]
filename = "iris.csv"
description = "d"
`,
			wantMsg: `dataset "iris": missing required field "url"`,
		},
		{
			name: "missing filename",
			content: `[datasets.iris]
description = "d"
url = "u"
`,
			wantMsg: `missing required field "filename"`,
		},
		{
			name: "wrong type",
			content: `[datasets.iris]
filename = 42
description = "d"
url = "u"
`,
		},
		{
			name:    "datasets not a table",
			content: `datasets = "iris"`,
		},
		{
			name:    "author not a string",
			content: "author = 1\n[datasets]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, "roverfile", tt.content)

			_, err := Load(context.Background(), path, nil)
			require.Error(t, err)

			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr), "want *ParseError, got %T: %v", err, err)
			assert.Equal(t, path, parseErr.Path)
			assert.NotErrorIs(t, err, ErrNotFound)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestLoad_ParseErrorNamesFirstIncompleteDataset(t *testing.T) {
	path := writeManifest(t, "roverfile", `[datasets.wine]
filename = "wine.csv"

[datasets.abalone]
description = "d"

[datasets.iris]
url = "u"
`)

	for range 10 {
		_, err := Load(context.Background(), path, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `dataset "abalone": missing required field "filename"`)
	}
}

func TestLoad_EmptyDatasetsTable(t *testing.T) {
	path := writeManifest(t, "roverfile", "[datasets]\n")

	m, err := Load(context.Background(), path, nil)
	require.NoError(t, err)
	assert.Zero(t, m.Len())
	assert.Empty(t, m.Names())
}

func TestLoad_IgnoresUnknownKeys(t *testing.T) {
	path := writeManifest(t, "roverfile", `
license = "MIT"

[datasets.iris]
filename = "iris.csv"
description = "d"
url = "u"
checksum = "abc"
`)

	m, err := Load(context.Background(), path, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"iris"}, m.Names())
}

func TestLoad_HCL(t *testing.T) {
	path := writeManifest(t, "roverfile.hcl", `
author = "Jane Doe"

dataset "iris" {
  filename    = "iris.csv"
  description = "Fisher's iris flower dataset"
  url         = "https://example.org/iris.csv"
}

dataset "wine" {
  filename    = "wine.csv"
  description = "Wine recognition data"
  url         = "https://example.org/wine.csv"
}
`)

	m, err := Load(context.Background(), path, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"iris", "wine"}, m.Names())
	ds, ok := m.Lookup("wine")
	require.True(t, ok)
	assert.Equal(t, model.Dataset{Filename: "wine.csv", Description: "Wine recognition data", URL: "https://example.org/wine.csv"}, ds)

	author, ok := m.Author()
	assert.True(t, ok)
	assert.Equal(t, "Jane Doe", author)
}

func TestLoad_HCLParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{
			name:    "syntax",
			content: `dataset "iris" {`,
		},
		{
			name: "missing attribute",
			content: `dataset "iris" {
  filename = "iris.csv"
  url      = "u"
}`,
			wantMsg: "description",
		},
		{
			name: "duplicate label",
			content: `dataset "iris" {
  filename    = "a"
  description = "b"
  url         = "c"
}
dataset "iris" {
  filename    = "d"
  description = "e"
  url         = "f"
}`,
			wantMsg: `dataset "iris" declared more than once`,
		},
		{
			name: "unknown attribute",
			content: `dataset "iris" {
  filename    = "a"
  description = "b"
  url         = "c"
  checksum    = "d"
}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, "roverfile.hcl", tt.content)

			_, err := Load(context.Background(), path, nil)
			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr), "want *ParseError, got %T: %v", err, err)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestManifest_NamesSorted(t *testing.T) {
	m := New(map[string]model.Dataset{
		"wine":    {Filename: "wine.csv"},
		"abalone": {Filename: "abalone.csv"},
		"iris":    {Filename: "iris.csv"},
		"Zoo":     {Filename: "zoo.csv"},
	})

	assert.Equal(t, []string{"Zoo", "abalone", "iris", "wine"}, m.Names())
}

func TestManifest_LookupIsExact(t *testing.T) {
	m := New(map[string]model.Dataset{"iris": {Filename: "iris.csv"}})

	_, ok := m.Lookup("iris")
	assert.True(t, ok)

	for _, name := range []string{"Iris", "iri", "iris ", ""} {
		_, ok := m.Lookup(name)
		assert.False(t, ok, "Lookup(%q)", name)
	}
}

func TestNew_CopiesInput(t *testing.T) {
	src := map[string]model.Dataset{"iris": {Filename: "iris.csv"}}
	m := New(src)
	delete(src, "iris")

	_, ok := m.Lookup("iris")
	assert.True(t, ok)
	assert.Zero(t, New(nil).Len())
}
