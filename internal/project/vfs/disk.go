package vfs

import (
	"io/fs"
	"os"
	"path/filepath"
)

// Disk is the host file system.
type Disk struct{}

var _ FS = Disk{}

// NewDisk returns the host file system.
func NewDisk() Disk {
	return Disk{}
}

func (Disk) Abs(path string) (string, error) {
	return filepath.Abs(path)
}

func (Disk) Stat(path string) (Entry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Entry{}, err
	}
	return diskEntry(path, info), nil
}

// List follows symlinks, so a link to a directory is listed as one.
// Children that vanish or cannot be described are left out.
func (Disk) List(dir string) ([]Entry, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	out := make([]Entry, 0, len(des))
	for _, de := range des {
		p := filepath.Join(dir, de.Name())
		info, err := os.Stat(p)
		if err != nil {
			if info, err = de.Info(); err != nil {
				continue
			}
		}
		out = append(out, diskEntry(p, info))
	}
	return out, nil
}

func (Disk) Read(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Write keeps the mode of a file that already exists.
func (Disk) Write(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func diskEntry(path string, info fs.FileInfo) Entry {
	return Entry{Path: path, Name: info.Name(), Size: info.Size(), Dir: info.IsDir()}
}
