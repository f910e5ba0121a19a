// Package errors defines the error taxonomy of the file adapter.
//
// Every failure surfaced by a load, save, or directory listing wraps exactly
// one of the sentinel errors below, so callers can branch with errors.Is
// without inspecting operating system error values.
package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// Standard errors returned by the file adapter.
var (
	// ErrNotFound indicates a file or directory was not found.
	ErrNotFound = errors.New("not found")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrDecodeFailure indicates the content could not be decoded with
	// either the primary or the fallback encoding.
	ErrDecodeFailure = errors.New("cannot decode content")

	// ErrPermissionDenied indicates the operation was not permitted.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrOSFailure covers every other I/O error.
	ErrOSFailure = errors.New("os failure")
)

// PathError represents an error associated with a file path.
type PathError struct {
	Op   string // Operation that failed (open, save, list)
	Path string // File path
	Err  error  // One of the sentinel errors
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *PathError) Error() string {
	if e.Cause != nil && !errors.Is(e.Cause, e.Err) {
		return fmt.Sprintf("%s %s: %v: %v", e.Op, e.Path, e.Err, e.Cause)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the sentinel and the underlying cause.
func (e *PathError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// NewPathError creates a new PathError.
func NewPathError(op, path string, err error) *PathError {
	return &PathError{Op: op, Path: path, Err: err}
}

// Classify wraps an I/O error from op on path in the matching sentinel. It
// returns nil for a nil error and leaves an existing PathError untouched.
func Classify(op, path string, err error) error {
	if err == nil {
		return nil
	}
	var pe *PathError
	if errors.As(err, &pe) {
		return err
	}
	return &PathError{Op: op, Path: path, Err: Kind(err), Cause: err}
}

// Kind returns the sentinel that best describes err.
func Kind(err error) error {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, fs.ErrNotExist):
		return ErrNotFound
	case errors.Is(err, ErrIsDirectory), errors.Is(err, syscall.EISDIR):
		return ErrIsDirectory
	case errors.Is(err, ErrPermissionDenied), errors.Is(err, fs.ErrPermission):
		return ErrPermissionDenied
	case errors.Is(err, ErrDecodeFailure):
		return ErrDecodeFailure
	default:
		return ErrOSFailure
	}
}

// IsNotFound returns true if the error indicates a file was not found.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDirectory returns true if the error indicates the path is a directory.
func IsDirectory(err error) bool {
	return errors.Is(err, ErrIsDirectory)
}

// IsPermission returns true if the error indicates a permission failure.
func IsPermission(err error) bool {
	return errors.Is(err, ErrPermissionDenied)
}

// IsDecodeFailure returns true if the content could not be decoded.
func IsDecodeFailure(err error) bool {
	return errors.Is(err, ErrDecodeFailure)
}
