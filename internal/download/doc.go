// Package download resolves dataset names against a manifest and fetches
// them.
//
// # Resolve
//
// Resolve is all or nothing. It first looks every requested name up
// optimistically; only when that fails does it rescan the request and
// collect every unknown name into one *UnknownDatasetsError:
//
//	datasets, err := download.Resolve(m, []string{"iris", "banana"})
//	// err: unknown dataset(s) encountered: banana
//
// # Manager
//
// The Manager runs a whole batch:
//
//  1. Resolve every requested name
//  2. Fetch each dataset in request order
//  3. Stop at the first failure
//
// No fetch happens unless every name resolved, so a typo in a long request
// has no side effects.
//
//	fetcher := download.NewHTTPFetcher(settings)
//	manager := download.NewManager(m, fetcher, func(event download.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//	if err := manager.Execute(ctx, []string{"iris", "wine"}); err != nil {
//	    log.Fatal(err)
//	}
//
// # Errors
//
//   - *UnknownDatasetsError: one or more names are not in the manifest
//   - *NetworkError: the request failed or returned a non-2xx status
//   - *IOError: the destination file could not be written
//
// # Concurrency
//
// Fetches are strictly sequential and there is no retry. Manager methods
// that report state are safe to call from another goroutine while Execute
// runs.
package download
