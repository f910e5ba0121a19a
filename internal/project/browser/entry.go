package browser

import (
	"errors"
	"io/fs"
	"sort"

	"github.com/dshills/te/internal/project/vfs"
)

// EntryKind classifies a browser entry.
type EntryKind uint8

const (
	// EntryParent is the synthetic link to the parent directory.
	EntryParent EntryKind = iota
	// EntryDir is a subdirectory.
	EntryDir
	// EntryFile is a regular file.
	EntryFile
	// EntryError stands in for a directory that could not be listed.
	EntryError
)

// Entry is one row of the browser.
type Entry struct {
	Name string
	Path string
	Kind EntryKind
}

// Label returns the text shown for the entry. Directories are bracketed.
func (e Entry) Label() string {
	switch e.Kind {
	case EntryParent:
		return "[..]"
	case EntryDir, EntryError:
		return "[" + e.Name + "]"
	default:
		return e.Name
	}
}

// Listing is the result of reading one directory.
type Listing struct {
	Dirs  []FileRef
	Files []FileRef
	// Err is set when the directory could not be read.
	Err error
}

// FileRef names a listed file or directory.
type FileRef struct {
	Name string
	Path string
}

// List reads dir through v and splits the result into directories and
// files, each sorted by name.
func List(v vfs.FS, dir string) Listing {
	children, err := v.List(dir)
	if err != nil {
		return Listing{Err: err}
	}
	var l Listing
	for _, c := range children {
		ref := FileRef{Name: c.Name, Path: c.Path}
		if c.Dir {
			l.Dirs = append(l.Dirs, ref)
		} else {
			l.Files = append(l.Files, ref)
		}
	}
	byName := func(refs []FileRef) {
		sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	}
	byName(l.Dirs)
	byName(l.Files)
	return l
}

// errorEntry describes a listing failure as a single entry.
func errorEntry(err error) Entry {
	if errors.Is(err, fs.ErrPermission) {
		return Entry{Name: "Permission Denied", Kind: EntryError}
	}
	return Entry{Name: "Error: " + err.Error(), Kind: EntryError}
}
