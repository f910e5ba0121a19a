package browser

import (
	"path/filepath"

	"github.com/dshills/te/internal/project/vfs"
)

// Browser is the state of the file browser.
type Browser struct {
	fs       vfs.FS
	dir      string
	entries  []Entry
	selected int
	top      int
	visible  int
}

// New creates a browser showing dir. An empty dir means the root.
func New(v vfs.FS, dir string) *Browser {
	if abs, err := v.Abs(dir); err == nil {
		dir = abs
	}
	b := &Browser{fs: v, visible: NewLayout(defaultWidth, defaultHeight).ItemRows()}
	b.enter(dir)
	return b
}

// Dir returns the directory being shown.
func (b *Browser) Dir() string {
	return b.dir
}

// Title returns the base name of the directory, or the directory itself at
// the root.
func (b *Browser) Title() string {
	if vfs.IsRoot(b.dir) {
		return b.dir
	}
	return filepath.Base(b.dir)
}

// Entries returns the current entries.
func (b *Browser) Entries() []Entry {
	return b.entries
}

// Selected returns the index of the selected entry.
func (b *Browser) Selected() int {
	return b.selected
}

// SelectedEntry returns the selected entry.
func (b *Browser) SelectedEntry() (Entry, bool) {
	if b.selected < 0 || b.selected >= len(b.entries) {
		return Entry{}, false
	}
	return b.entries[b.selected], true
}

// Top returns the index of the first visible entry.
func (b *Browser) Top() int {
	return b.top
}

// SetVisibleRows sets how many entries fit in the window and scrolls so the
// selected entry stays visible.
func (b *Browser) SetVisibleRows(n int) {
	b.visible = max(1, n)
	b.follow()
}

// Refresh re-reads the current directory, keeping the selection in range.
func (b *Browser) Refresh() {
	b.entries = b.load(b.dir)
	if b.selected >= len(b.entries) {
		b.selected = max(0, len(b.entries)-1)
	}
	b.follow()
}

// Up selects the previous entry.
func (b *Browser) Up() {
	if b.selected > 0 {
		b.selected--
		b.follow()
	}
}

// Down selects the next entry.
func (b *Browser) Down() {
	if b.selected < len(b.entries)-1 {
		b.selected++
		b.follow()
	}
}

// Parent moves to the parent directory. It returns false at the root.
func (b *Browser) Parent() bool {
	parent := filepath.Dir(b.dir)
	if parent == b.dir {
		return false
	}
	b.enter(parent)
	return true
}

// Activate acts on the selected entry. Directories are entered and a file
// is returned as chosen.
func (b *Browser) Activate() (path string, chosen bool) {
	e, ok := b.SelectedEntry()
	if !ok {
		return "", false
	}
	switch e.Kind {
	case EntryParent:
		b.Parent()
	case EntryDir:
		if vfs.IsDir(b.fs, e.Path) {
			b.enter(e.Path)
		}
	case EntryFile:
		return e.Path, true
	}
	return "", false
}

// Click handles a click on the visible row at offset row. A click on the
// selected entry activates it; any other click selects.
func (b *Browser) Click(row int) (path string, chosen bool) {
	i := b.top + row
	if row < 0 || i >= len(b.entries) {
		return "", false
	}
	if i == b.selected {
		return b.Activate()
	}
	b.selected = i
	b.follow()
	return "", false
}

func (b *Browser) enter(dir string) {
	b.dir = dir
	b.entries = b.load(dir)
	b.selected = 0
	b.top = 0
}

func (b *Browser) load(dir string) []Entry {
	var entries []Entry
	if parent := filepath.Dir(dir); parent != dir {
		entries = append(entries, Entry{Name: "..", Path: parent, Kind: EntryParent})
	}

	l := List(b.fs, dir)
	if l.Err != nil {
		return append(entries, errorEntry(l.Err))
	}
	for _, d := range l.Dirs {
		entries = append(entries, Entry{Name: d.Name, Path: d.Path, Kind: EntryDir})
	}
	for _, f := range l.Files {
		entries = append(entries, Entry{Name: f.Name, Path: f.Path, Kind: EntryFile})
	}
	return entries
}

func (b *Browser) follow() {
	if b.selected < b.top {
		b.top = b.selected
	} else if b.selected >= b.top+b.visible {
		b.top = b.selected - b.visible + 1
	}
	b.top = max(0, b.top)
}
