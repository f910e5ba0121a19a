package vfs

import (
	"io/fs"
	"path"
	"sort"
	"sync"
	"syscall"
)

// Memory is an FS held in a map, rooted at "/". Relative paths are taken
// to be relative to the root.
//
// Paths passed to Deny, and everything below them, fail with
// fs.ErrPermission. This lets tests cover permission failures whatever the
// privileges of the test process.
type Memory struct {
	mu     sync.RWMutex
	nodes  map[string]*node
	denied map[string]bool
}

// node is a file, or a directory when data is nil and dir is set.
type node struct {
	data []byte
	dir  bool
}

var _ FS = (*Memory)(nil)

// NewMemory returns an empty file system holding only the root.
func NewMemory() *Memory {
	return &Memory{
		nodes:  map[string]*node{"/": {dir: true}},
		denied: map[string]bool{},
	}
}

func clean(p string) string {
	return path.Clean("/" + p)
}

func (m *Memory) Abs(p string) (string, error) {
	return clean(p), nil
}

func (m *Memory) Stat(p string) (Entry, error) {
	p = clean(p)
	m.mu.RLock()
	defer m.mu.RUnlock()
	n, ok := m.nodes[p]
	if !ok {
		return Entry{}, &fs.PathError{Op: "stat", Path: p, Err: fs.ErrNotExist}
	}
	return n.entry(p), nil
}

func (m *Memory) List(dir string) ([]Entry, error) {
	dir = clean(dir)
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.check("readdir", dir); err != nil {
		return nil, err
	}
	n, ok := m.nodes[dir]
	switch {
	case !ok:
		return nil, &fs.PathError{Op: "readdir", Path: dir, Err: fs.ErrNotExist}
	case !n.dir:
		return nil, &fs.PathError{Op: "readdir", Path: dir, Err: syscall.ENOTDIR}
	}
	var out []Entry
	for p, child := range m.nodes {
		if p != dir && path.Dir(p) == dir {
			out = append(out, child.entry(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *Memory) Read(p string) ([]byte, error) {
	p = clean(p)
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.check("read", p); err != nil {
		return nil, err
	}
	n, ok := m.nodes[p]
	switch {
	case !ok:
		return nil, &fs.PathError{Op: "read", Path: p, Err: fs.ErrNotExist}
	case n.dir:
		return nil, &fs.PathError{Op: "read", Path: p, Err: syscall.EISDIR}
	}
	return append([]byte(nil), n.data...), nil
}

func (m *Memory) Write(p string, data []byte) error {
	p = clean(p)
	m.mu.Lock()
	defer m.mu.Unlock()
	if n, ok := m.nodes[p]; ok && n.dir {
		return &fs.PathError{Op: "write", Path: p, Err: syscall.EISDIR}
	}
	if err := m.mkdir(path.Dir(p)); err != nil {
		return err
	}
	if err := m.check("write", p); err != nil {
		return err
	}
	m.nodes[p] = &node{data: append([]byte{}, data...)}
	return nil
}

// Mkdir creates dir and its missing parents.
func (m *Memory) Mkdir(dir string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mkdir(clean(dir))
}

// mkdir must be called with the write lock held.
func (m *Memory) mkdir(dir string) error {
	if n, ok := m.nodes[dir]; ok {
		if !n.dir {
			return &fs.PathError{Op: "mkdir", Path: dir, Err: syscall.ENOTDIR}
		}
		return nil
	}
	if err := m.mkdir(path.Dir(dir)); err != nil {
		return err
	}
	if err := m.check("mkdir", dir); err != nil {
		return err
	}
	m.nodes[dir] = &node{dir: true}
	return nil
}

// AddFile stores content at p, creating parent directories.
func (m *Memory) AddFile(p, content string) error {
	return m.Write(p, []byte(content))
}

// AddFileBytes stores raw content at p, creating parent directories.
func (m *Memory) AddFileBytes(p string, content []byte) error {
	return m.Write(p, content)
}

// Deny makes every access to p, and to anything below it, fail with
// fs.ErrPermission.
func (m *Memory) Deny(p string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.denied[clean(p)] = true
}

// Files returns the paths of all regular files, sorted.
func (m *Memory) Files() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []string
	for p, n := range m.nodes {
		if !n.dir {
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out
}

// check walks from p up to the root looking for a denied path. It must be
// called with the lock held.
func (m *Memory) check(op, p string) error {
	for q := p; ; q = path.Dir(q) {
		if m.denied[q] {
			return &fs.PathError{Op: op, Path: p, Err: fs.ErrPermission}
		}
		if q == "/" {
			return nil
		}
	}
}

func (n *node) entry(p string) Entry {
	return Entry{Path: p, Name: path.Base(p), Size: int64(len(n.data)), Dir: n.dir}
}
