// Package manifest loads the roverfile: the declarative list of datasets
// rover can fetch.
//
// # Format
//
// The default format is TOML:
//
//	author = "Jane Doe"
//
//	[datasets.iris]
//	filename = "iris.csv"
//	description = "Fisher's iris flower dataset"
//	url = "https://example.org/iris.csv"
//
// Files with an ".hcl" extension are read as HCL instead, with one
// labelled block per dataset:
//
//	author = "Jane Doe"
//
//	dataset "iris" {
//	  filename    = "iris.csv"
//	  description = "Fisher's iris flower dataset"
//	  url         = "https://example.org/iris.csv"
//	}
//
// Every dataset needs filename, description and url. Anything else that
// does not fit the schema is reported as a *ParseError before any dataset
// logic runs. Unknown TOML keys are ignored; the HCL schema is closed.
//
// # Loading
//
//	m, err := manifest.Load(ctx, "", config.DefaultManifestPath)
//	if errors.Is(err, manifest.ErrNotFound) {
//	    // no roverfile
//	}
//	for _, name := range m.Names() {
//	    ds, _ := m.Lookup(name)
//	    fmt.Println(name, ds.Description)
//	}
package manifest
