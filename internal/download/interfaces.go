package download

import (
	"context"

	"github.com/handiism/rover/internal/model"
)

//go:generate mockgen -source=interfaces.go -destination=mock/mock_interfaces.go -package=mock_download

// Catalog is the read-only view of a manifest the resolver needs.
// *manifest.Manifest satisfies it.
type Catalog interface {
	// Lookup returns the dataset stored under name, matching exactly.
	Lookup(name string) (model.Dataset, bool)

	// Names returns every dataset name.
	Names() []string
}

// Fetcher retrieves one dataset and persists it locally.
type Fetcher interface {
	Fetch(ctx context.Context, ds model.Dataset) error
}
