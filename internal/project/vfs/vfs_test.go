package vfs

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"
)

// TestFS runs the same checks against both implementations.
func TestFS(t *testing.T) {
	t.Run("Memory", func(t *testing.T) {
		testFS(t, NewMemory(), "/work")
	})
	t.Run("Disk", func(t *testing.T) {
		testFS(t, NewDisk(), t.TempDir())
	})
}

func testFS(t *testing.T, f FS, root string) {
	t.Run("WriteRead", func(t *testing.T) {
		p := filepath.Join(root, "test.txt")
		if err := f.Write(p, []byte("hello world")); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
		got, err := f.Read(p)
		if err != nil {
			t.Fatalf("Read failed: %v", err)
		}
		if string(got) != "hello world" {
			t.Errorf("content mismatch: got %q", got)
		}
		e, err := f.Stat(p)
		if err != nil || e.Dir || e.Size != 11 || e.Name != "test.txt" {
			t.Errorf("Stat(%q) = %+v, %v", p, e, err)
		}
	})

	t.Run("ReadMissing", func(t *testing.T) {
		_, err := f.Read(filepath.Join(root, "missing.txt"))
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Read(missing) error = %v, want fs.ErrNotExist", err)
		}
		if Exists(f, filepath.Join(root, "missing.txt")) {
			t.Error("missing file reported as existing")
		}
	})

	t.Run("WriteCreatesParents", func(t *testing.T) {
		p := filepath.Join(root, "a", "b", "c.txt")
		if err := f.Write(p, nil); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
		dir := filepath.Join(root, "a", "b")
		if !IsDir(f, dir) || !Exists(f, dir) {
			t.Errorf("%q should exist as a directory", dir)
		}
		if IsDir(f, p) {
			t.Errorf("%q should be a file", p)
		}
	})

	t.Run("List", func(t *testing.T) {
		dir := filepath.Join(root, "list")
		_ = f.Write(filepath.Join(dir, "sub", "x"), nil)
		_ = f.Write(filepath.Join(dir, "b.txt"), nil)
		_ = f.Write(filepath.Join(dir, "a.txt"), nil)

		entries, err := f.List(dir)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		var names []string
		for _, e := range entries {
			names = append(names, e.Name)
			if e.Dir != (e.Name == "sub") {
				t.Errorf("%q: Dir = %v", e.Name, e.Dir)
			}
			if e.Path != filepath.Join(dir, e.Name) {
				t.Errorf("%q: Path = %q", e.Name, e.Path)
			}
		}
		if len(names) != 3 || names[0] != "a.txt" || names[1] != "b.txt" || names[2] != "sub" {
			t.Errorf("List = %v, want [a.txt b.txt sub]", names)
		}
	})

	t.Run("ListFile", func(t *testing.T) {
		if _, err := f.List(filepath.Join(root, "test.txt")); err == nil {
			t.Error("List on a file should fail")
		}
	})
}

func TestIsRoot(t *testing.T) {
	if !IsRoot("/") {
		t.Error("/ should be the root")
	}
	if IsRoot("/work") {
		t.Error("/work is not the root")
	}
}

func TestMemoryAbs(t *testing.T) {
	m := NewMemory()
	for in, want := range map[string]string{
		"relative.txt":   "/relative.txt",
		"/a/../b/./c":    "/b/c",
		"":               "/",
		"/trailing/dir/": "/trailing/dir",
	} {
		if got, _ := m.Abs(in); got != want {
			t.Errorf("Abs(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMemoryReadDirectory(t *testing.T) {
	m := NewMemory()
	_ = m.Mkdir("/docs")
	if _, err := m.Read("/docs"); err == nil {
		t.Error("Read on a directory should fail")
	}
	if err := m.Write("/docs", []byte("x")); err == nil {
		t.Error("Write onto a directory should fail")
	}
}

func TestMemoryFileInPath(t *testing.T) {
	m := NewMemory()
	_ = m.AddFile("/plain", "x")
	if err := m.Write("/plain/child.txt", nil); err == nil {
		t.Error("Write below a file should fail")
	}
	if err := m.Mkdir("/plain/sub"); err == nil {
		t.Error("Mkdir below a file should fail")
	}
}

func TestMemoryDeny(t *testing.T) {
	m := NewMemory()
	_ = m.AddFile("/secret/key.txt", "hidden")
	m.Deny("/secret")

	if _, err := m.List("/secret"); !errors.Is(err, fs.ErrPermission) {
		t.Errorf("List error = %v, want fs.ErrPermission", err)
	}
	if _, err := m.Read("/secret/key.txt"); !errors.Is(err, fs.ErrPermission) {
		t.Errorf("Read error = %v, want fs.ErrPermission", err)
	}
	if err := m.Write("/secret/new.txt", nil); !errors.Is(err, fs.ErrPermission) {
		t.Errorf("Write error = %v, want fs.ErrPermission", err)
	}
	if err := m.Mkdir("/secret/deeper/still"); !errors.Is(err, fs.ErrPermission) {
		t.Errorf("Mkdir error = %v, want fs.ErrPermission", err)
	}

	// Siblings are unaffected.
	if err := m.AddFile("/public/readme", "ok"); err != nil {
		t.Errorf("AddFile outside denied tree failed: %v", err)
	}
}

func TestMemoryFiles(t *testing.T) {
	m := NewMemory()
	_ = m.AddFile("/b", "")
	_ = m.AddFile("/a/c", "")
	files := m.Files()
	if len(files) != 2 || files[0] != "/a/c" || files[1] != "/b" {
		t.Errorf("Files() = %v", files)
	}
}
