package cursor

import "fmt"

// Selection is a range between an anchor and the active end.
// Selection is an immutable value type.
type Selection struct {
	Anchor Point // Where selection started
	Active Point // Follows the cursor
}

// NewSelection creates a selection from anchor to active.
func NewSelection(anchor, active Point) Selection {
	return Selection{Anchor: anchor, Active: active}
}

// Normalize returns the endpoints ordered so that lo <= hi.
func (s Selection) Normalize() (lo, hi Point) {
	if s.Active.Before(s.Anchor) {
		return s.Active, s.Anchor
	}
	return s.Anchor, s.Active
}

// Contains reports whether the cell at p is selected. The range is
// half-open: lo is included and hi is not.
func (s Selection) Contains(p Point) bool {
	lo, hi := s.Normalize()
	return p.Compare(lo) >= 0 && p.Before(hi)
}

// IsEmpty returns true if the selection covers no cells.
func (s Selection) IsEmpty() bool {
	return s.Anchor == s.Active
}

// Extend returns a selection with the same anchor and a new active end.
func (s Selection) Extend(p Point) Selection {
	return Selection{Anchor: s.Anchor, Active: p}
}

// String returns a debug representation.
func (s Selection) String() string {
	return fmt.Sprintf("Selection{%v -> %v}", s.Anchor, s.Active)
}

// StartOrExtend moves p by (dy, dx) and grows sel to the new position.
// A nil sel starts a new selection anchored at p. It returns the new
// cursor position and the resulting selection.
func StartOrExtend(doc Document, sel *Selection, p Point, dy, dx int) (Point, *Selection) {
	anchor := p
	if sel != nil {
		anchor = sel.Anchor
	}
	next := Move(doc, p, dy, dx)
	return next, &Selection{Anchor: anchor, Active: next}
}
