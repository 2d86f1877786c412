package download

import "github.com/handiism/rover/internal/model"

// Resolve maps requested names to datasets, all or nothing.
//
// When every name is known the datasets come back in request order,
// repeats included. Otherwise no dataset is returned and the error is an
// *UnknownDatasetsError naming every unknown entry, not just the first.
// An empty request resolves to an empty slice.
func Resolve(catalog Catalog, requested []string) ([]model.Dataset, error) {
	resolved := make([]model.Dataset, 0, len(requested))
	for _, name := range requested {
		ds, ok := catalog.Lookup(name)
		if !ok {
			return nil, diagnose(catalog, requested)
		}
		resolved = append(resolved, ds)
	}
	return resolved, nil
}

// diagnose rescans the whole request against the catalog's key set. It
// only runs once the optimistic pass has failed.
func diagnose(catalog Catalog, requested []string) error {
	known := make(map[string]struct{})
	for _, name := range catalog.Names() {
		known[name] = struct{}{}
	}

	seen := make(map[string]struct{})
	var unknown []string
	for _, name := range requested {
		if _, ok := known[name]; ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		unknown = append(unknown, name)
	}
	return &UnknownDatasetsError{Names: unknown}
}
