package model

import (
	"fmt"
	"strings"
)

// Dataset describes one downloadable entry of a manifest.
//
// A Dataset has no identity of its own; it is known by the key it is
// stored under in the manifest. Values are treated as immutable once the
// manifest has been loaded.
type Dataset struct {
	// Filename is the local destination path. It is used as-is and is not
	// checked for path traversal.
	Filename string

	// Description is free text shown to the user.
	Description string

	// URL is the location the dataset is retrieved from.
	URL string
}

// Info returns the human readable summary of the dataset:
//
//	Filename    : iris.csv
//	Description : Fisher's iris flower dataset
//	Source      : https://example.org/iris.csv
func (d Dataset) Info() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Filename    : %s\n", d.Filename)
	fmt.Fprintf(&b, "Description : %s\n", d.Description)
	fmt.Fprintf(&b, "Source      : %s\n", d.URL)
	return b.String()
}
