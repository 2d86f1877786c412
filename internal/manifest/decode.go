package manifest

import (
	"context"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/handiism/rover/internal/ctxlog"
	"github.com/handiism/rover/internal/model"
)

type format string

const (
	formatTOML format = "toml"
	formatHCL  format = "hcl"
)

func formatFor(path string) format {
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		return formatHCL
	}
	return formatTOML
}

// tomlFile mirrors the TOML layout. Pointers tell a missing field apart
// from an empty one.
type tomlFile struct {
	Author   *string                `toml:"author"`
	Datasets map[string]tomlDataset `toml:"datasets"`
}

type tomlDataset struct {
	Filename    *string `toml:"filename"`
	Description *string `toml:"description"`
	URL         *string `toml:"url"`
}

func decodeTOML(ctx context.Context, data []byte, path string) (*Manifest, error) {
	var raw tomlFile
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if !md.IsDefined("datasets") {
		return nil, parseErrorf(path, "missing required table %q", "datasets")
	}

	for _, key := range md.Undecoded() {
		ctxlog.FromContext(ctx).Debug("ignoring unknown manifest key", "path", path, "key", key.String())
	}

	out := &Manifest{datasets: make(map[string]model.Dataset, len(raw.Datasets))}
	if raw.Author != nil {
		out.author, out.hasAuth = *raw.Author, true
	}

	for _, name := range slices.Sorted(maps.Keys(raw.Datasets)) {
		ds := raw.Datasets[name]
		missing := firstMissing(
			field{"filename", ds.Filename},
			field{"description", ds.Description},
			field{"url", ds.URL},
		)
		if missing != "" {
			return nil, parseErrorf(path, "dataset %q: missing required field %q", name, missing)
		}
		out.datasets[name] = model.Dataset{
			Filename:    *ds.Filename,
			Description: *ds.Description,
			URL:         *ds.URL,
		}
	}
	return out, nil
}

type field struct {
	name  string
	value *string
}

func firstMissing(fields ...field) string {
	for _, f := range fields {
		if f.value == nil {
			return f.name
		}
	}
	return ""
}

// hclFile is the HCL layout: one labelled dataset block per entry.
//
//	dataset "iris" {
//	  filename    = "iris.csv"
//	  description = "Fisher's iris flower dataset"
//	  url         = "https://example.org/iris.csv"
//	}
type hclFile struct {
	Author   *string      `hcl:"author,optional"`
	Datasets []hclDataset `hcl:"dataset,block"`
}

type hclDataset struct {
	Name        string `hcl:"name,label"`
	Filename    string `hcl:"filename"`
	Description string `hcl:"description"`
	URL         string `hcl:"url"`
}

func decodeHCL(data []byte, path string) (*Manifest, error) {
	file, diags := hclparse.NewParser().ParseHCL(data, path)
	if diags.HasErrors() {
		return nil, &ParseError{Path: path, Err: diags}
	}

	var raw hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, &ParseError{Path: path, Err: diags}
	}

	out := &Manifest{datasets: make(map[string]model.Dataset, len(raw.Datasets))}
	if raw.Author != nil {
		out.author, out.hasAuth = *raw.Author, true
	}

	for _, ds := range raw.Datasets {
		if _, dup := out.datasets[ds.Name]; dup {
			return nil, parseErrorf(path, "dataset %q declared more than once", ds.Name)
		}
		out.datasets[ds.Name] = model.Dataset{
			Filename:    ds.Filename,
			Description: ds.Description,
			URL:         ds.URL,
		}
	}
	return out, nil
}
