package storage

import (
	"errors"
	"fmt"
)

// Error kinds. Match with errors.Is.
var (
	ErrEncode = errors.New("encoding failure")
	ErrDecode = errors.New("decoding failure")
	ErrRead   = errors.New("file read failure")
	ErrWrite  = errors.New("file write failure")
)

// Error describes a failed storage operation.
type Error struct {
	Op   string // "save", "load" or "validate"
	Path string
	Kind error // one of the Err* kinds
	Err  error // underlying cause
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %s: %v", e.Op, e.Path, e.Kind, e.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func newError(op, path string, kind, err error) *Error {
	return &Error{Op: op, Path: path, Kind: kind, Err: err}
}

// ValidationError represents a schema violation at a JSON path.
type ValidationError struct {
	Path string // JSON path to the error location, e.g. "[0].date"
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
