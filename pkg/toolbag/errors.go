package toolbag

import (
	"errors"
	"fmt"
)

// ErrUnknownFormat indicates the input format could not be determined.
var ErrUnknownFormat = errors.New("unknown file format")

// ErrNotLabeled indicates a reader that requires labels found none.
var ErrNotLabeled = errors.New("no axis labels found")

// ReadError represents an error while reading a file.
type ReadError struct {
	Path   string
	Format Format
	Err    error
}

func (e *ReadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("read error (%s): %v", e.Format, e.Err)
	}
	return fmt.Sprintf("read error in %q (%s): %v", e.Path, e.Format, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// NewReadError creates a new ReadError.
func NewReadError(path string, format Format, err error) *ReadError {
	return &ReadError{
		Path:   path,
		Format: format,
		Err:    err,
	}
}
