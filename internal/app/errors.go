package app

import (
	"errors"
	"fmt"
	"path/filepath"

	perrors "github.com/dshills/te/internal/project/errors"
)

// Application errors.
var (
	// ErrQuit signals that the application should exit normally.
	ErrQuit = errors.New("quit requested")

	// ErrAlreadyRunning indicates the application is already running.
	ErrAlreadyRunning = errors.New("application already running")

	// ErrNoBackend indicates the application was created without a terminal.
	ErrNoBackend = errors.New("no terminal backend")
)

// OperationError represents an error that occurred during a specific operation.
type OperationError struct {
	Op     string // Operation name (e.g., "save", "load")
	Target string // Target of the operation (e.g., file path)
	Err    error  // Underlying error
}

// NewOperationError creates a new OperationError.
func NewOperationError(op, target string, err error) *OperationError {
	return &OperationError{Op: op, Target: target, Err: err}
}

func (e *OperationError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Op
	if e.Target != "" {
		msg = fmt.Sprintf("%s %s", e.Op, e.Target)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// StatusText returns the message-line text for a file operation failure.
func StatusText(err error) string {
	if err == nil {
		return ""
	}
	var pe *perrors.PathError
	if !errors.As(err, &pe) {
		return fmt.Sprintf("OS Error: %v", err)
	}

	name := filepath.Base(pe.Path)
	switch {
	case perrors.IsDirectory(err):
		return fmt.Sprintf("Error: '%s' is a directory.", name)
	case perrors.IsNotFound(err):
		return fmt.Sprintf("File not found: %s", pe.Path)
	case perrors.IsPermission(err):
		if pe.Op == "save" {
			return fmt.Sprintf("Permission denied: Cannot write to '%s'.", name)
		}
		return fmt.Sprintf("Permission denied: Cannot read '%s'.", name)
	case perrors.IsDecodeFailure(err):
		return fmt.Sprintf("Error opening file: cannot decode '%s'.", name)
	}

	cause := pe.Cause
	if cause == nil {
		cause = pe.Err
	}
	return fmt.Sprintf("OS Error: %v", cause)
}
