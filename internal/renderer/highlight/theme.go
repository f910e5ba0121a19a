package highlight

import (
	"sort"

	"github.com/dshills/te/internal/renderer/core"
)

// Descriptor is the per-kind style a theme specifies.
type Descriptor struct {
	Color     core.Color
	HasColor  bool
	Bold      bool
	Italic    bool
	Underline bool
}

// IsPlain returns true if the descriptor changes nothing.
func (d Descriptor) IsPlain() bool {
	return !d.HasColor && !d.Bold && !d.Italic && !d.Underline
}

// Theme is a named, ordered set of descriptors.
type Theme struct {
	Name    string
	Entries []ThemeEntry
}

// ThemeEntry binds a token kind to its descriptor.
type ThemeEntry struct {
	Kind       Kind
	Descriptor Descriptor
}

// NextTheme returns the theme after current in sorted order, wrapping at
// the end. Unknown names restart at the first theme.
func NextTheme(names []string, current string) string {
	if len(names) == 0 {
		return current
	}
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)
	for i, n := range sorted {
		if n == current {
			return sorted[(i+1)%len(sorted)]
		}
	}
	return sorted[0]
}
