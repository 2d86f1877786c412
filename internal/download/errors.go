package download

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAlreadyRun is returned when Execute is called on a Manager that has
// already run. A failed batch is retried with a new Manager.
var ErrAlreadyRun = errors.New("batch already executed")

// UnknownDatasetsError lists every requested name missing from the
// manifest.
type UnknownDatasetsError struct {
	Names []string
}

func (e *UnknownDatasetsError) Error() string {
	return "unknown dataset(s) encountered: " + strings.Join(e.Names, " ")
}

// NetworkError reports a failed retrieval: transport errors, malformed
// URLs and non-2xx responses.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IOError reports a failure to write a fetched dataset to disk.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
