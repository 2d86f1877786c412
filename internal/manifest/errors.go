package manifest

import (
	"errors"
	"fmt"
)

// ErrNotFound is wrapped by Load when the manifest cannot be located or
// opened.
var ErrNotFound = errors.New("manifest not found")

// ParseError reports manifest content that does not match the schema.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse manifest %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseErrorf(path, format string, args ...any) *ParseError {
	return &ParseError{Path: path, Err: fmt.Errorf(format, args...)}
}
