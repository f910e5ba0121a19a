// Package filestore loads documents from and saves them to a file system.
//
// Load reads and decodes a file, falling back to a legacy single-byte
// encoding when the bytes are not valid UTF-8. Save joins lines with a
// single newline, adds no trailing terminator and creates missing parent
// directories. Every failure is a *errors.PathError wrapping one sentinel
// from the project errors package.
package filestore

import (
	"context"
	"strings"

	"github.com/dshills/te/internal/engine/buffer"
	perrors "github.com/dshills/te/internal/project/errors"
	"github.com/dshills/te/internal/project/vfs"
)

// Document is the result of a successful load.
type Document struct {
	// Path is the absolute path the document was read from.
	Path string
	// Lines holds the decoded content, always at least one line.
	Lines []string
	// Encoding is the encoding that decoded the content.
	Encoding vfs.Encoding
	// Fallback is true if the legacy encoding was needed.
	Fallback bool
}

// FileStore is the file I/O adapter.
type FileStore struct {
	vfs     vfs.FS
	decoder *vfs.Decoder
}

// Option configures a FileStore.
type Option func(*FileStore)

// WithDecoder replaces the default UTF-8/Latin-1 decoder.
func WithDecoder(d *vfs.Decoder) Option {
	return func(s *FileStore) {
		s.decoder = d
	}
}

// NewFileStore creates a new FileStore.
func NewFileStore(v vfs.FS, opts ...Option) *FileStore {
	s := &FileStore{vfs: v, decoder: vfs.NewDecoder()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Abs returns the absolute form of path, or path itself if it cannot be
// resolved.
func (s *FileStore) Abs(path string) string {
	if abs, err := s.vfs.Abs(path); err == nil {
		return abs
	}
	return path
}

// Exists returns true if path names an existing file or directory.
func (s *FileStore) Exists(path string) bool {
	return vfs.Exists(s.vfs, path)
}

// Load reads and decodes the file at path.
func (s *FileStore) Load(ctx context.Context, path string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, &perrors.PathError{Op: "open", Path: path, Err: perrors.ErrOSFailure, Cause: err}
	}
	absPath := s.Abs(path)

	info, err := s.vfs.Stat(absPath)
	if err != nil {
		return nil, perrors.Classify("open", path, err)
	}
	if info.Dir {
		return nil, perrors.NewPathError("open", path, perrors.ErrIsDirectory)
	}

	content, err := s.vfs.Read(absPath)
	if err != nil {
		return nil, perrors.Classify("open", path, err)
	}

	text, enc, err := s.decoder.Decode(content)
	if err != nil {
		return nil, &perrors.PathError{Op: "open", Path: path, Err: perrors.ErrDecodeFailure, Cause: err}
	}

	return &Document{
		Path:     absPath,
		Lines:    buffer.SplitLines(text),
		Encoding: enc,
		Fallback: enc != vfs.EncodingUTF8,
	}, nil
}

// Save writes lines to path joined by "\n". It returns the absolute path
// written.
func (s *FileStore) Save(ctx context.Context, path string, lines []string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &perrors.PathError{Op: "save", Path: path, Err: perrors.ErrOSFailure, Cause: err}
	}
	absPath := s.Abs(path)

	if vfs.IsDir(s.vfs, absPath) {
		return "", perrors.NewPathError("save", path, perrors.ErrIsDirectory)
	}

	data := []byte(strings.Join(lines, "\n"))
	if err := s.vfs.Write(absPath, data); err != nil {
		return "", perrors.Classify("save", path, err)
	}
	return absPath, nil
}
