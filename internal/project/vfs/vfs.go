// Package vfs is the file system the editor opens, saves and browses
// through.
//
// Disk is the host file system. Memory keeps everything in a map so the
// file adapter and the browser can be tested without touching the disk.
// Path arithmetic is left to path/filepath; both implementations use
// absolute slash-separated paths.
package vfs

import (
	"errors"
	"io/fs"
	"path/filepath"
)

// FS is the set of file operations the editor performs.
type FS interface {
	// Abs resolves path against the working directory.
	Abs(path string) (string, error)

	// Stat describes the file or directory at path.
	Stat(path string) (Entry, error)

	// List returns the children of dir sorted by name.
	List(dir string) ([]Entry, error)

	// Read returns the content of the file at path.
	Read(path string) ([]byte, error)

	// Write replaces the content of the file at path, creating the file
	// and any missing parent directories.
	Write(path string, data []byte) error
}

// Entry describes one file or directory.
type Entry struct {
	Path string
	Name string
	Size int64
	Dir  bool
}

// Exists reports whether path may exist. A path that cannot be checked for
// lack of permission counts as existing.
func Exists(f FS, path string) bool {
	_, err := f.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}

// IsDir reports whether path is a directory.
func IsDir(f FS, path string) bool {
	e, err := f.Stat(path)
	return err == nil && e.Dir
}

// IsRoot reports whether path has no parent.
func IsRoot(path string) bool {
	return filepath.Dir(path) == path
}
