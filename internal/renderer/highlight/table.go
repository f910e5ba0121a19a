package highlight

import (
	"errors"
	"fmt"

	"github.com/dshills/te/internal/renderer/core"
)

// ErrStyleLookupExhausted reports a theme with more distinct styles than the
// table can hold.
var ErrStyleLookupExhausted = errors.New("style table exhausted")

// DefaultCapacity is the number of distinct styles a table registers.
const DefaultCapacity = 63

// StyleTable maps token kinds to cell styles for one theme. It registers at
// most capacity distinct styles; once full it freezes and kinds whose style
// was not registered resolve to the default style.
type StyleTable struct {
	theme      string
	capacity   int
	kinds      map[Kind]core.Style
	registered map[Descriptor]core.Style
	dropped    int
}

// NewStyleTable builds the table for theme. reduce adapts colors to the
// terminal and may be nil.
func NewStyleTable(theme Theme, capacity int, reduce Reducer) *StyleTable {
	if reduce == nil {
		reduce = ReducerFor(256)
	}
	t := &StyleTable{
		theme:      theme.Name,
		capacity:   max(0, capacity),
		kinds:      make(map[Kind]core.Style, len(theme.Entries)),
		registered: make(map[Descriptor]core.Style),
	}
	for _, e := range theme.Entries {
		if e.Descriptor.IsPlain() {
			continue
		}
		style, ok := t.register(e.Descriptor, reduce)
		if !ok {
			continue
		}
		t.kinds[e.Kind] = style
	}
	return t
}

func (t *StyleTable) register(d Descriptor, reduce Reducer) (core.Style, bool) {
	if s, ok := t.registered[d]; ok {
		return s, true
	}
	if len(t.registered) >= t.capacity {
		t.dropped++
		return core.Style{}, false
	}

	s := core.DefaultStyle()
	if d.HasColor {
		s = s.WithForeground(reduce(d.Color))
	}
	if d.Bold {
		s = s.With(core.AttrBold)
	}
	if d.Italic {
		s = s.With(core.AttrItalic)
	}
	if d.Underline {
		s = s.With(core.AttrUnderline)
	}
	t.registered[d] = s
	return s, true
}

// Lookup returns the style for kind, falling back to its sub-category and
// category, then to the default style.
func (t *StyleTable) Lookup(kind Kind) core.Style {
	if s, ok := t.kinds[kind]; ok {
		return s
	}
	if s, ok := t.kinds[kind.SubCategory()]; ok {
		return s
	}
	if s, ok := t.kinds[kind.Category()]; ok {
		return s
	}
	return core.DefaultStyle()
}

// Theme returns the theme name the table was built for.
func (t *StyleTable) Theme() string {
	return t.theme
}

// Len returns the number of registered distinct styles.
func (t *StyleTable) Len() int {
	return len(t.registered)
}

// Exhausted returns true if any style was refused.
func (t *StyleTable) Exhausted() bool {
	return t.dropped > 0
}

// Err returns ErrStyleLookupExhausted, annotated with the refusal count,
// when the table overflowed.
func (t *StyleTable) Err() error {
	if t.dropped == 0 {
		return nil
	}
	return fmt.Errorf("%w: theme %q, %d styles over capacity %d", ErrStyleLookupExhausted, t.theme, t.dropped, t.capacity)
}
