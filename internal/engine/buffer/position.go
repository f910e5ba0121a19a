package buffer

import "fmt"

// Point is a line and column position. Both are 0-indexed and Column is
// measured in runes.
type Point struct {
	Line   int
	Column int
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Column)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other,
// ordering by line and then column.
func (p Point) Compare(other Point) int {
	if p.Line < other.Line {
		return -1
	}
	if p.Line > other.Line {
		return 1
	}
	if p.Column < other.Column {
		return -1
	}
	if p.Column > other.Column {
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Point) Before(other Point) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other.
func (p Point) After(other Point) bool {
	return p.Compare(other) > 0
}

// IsZero returns true if this is the zero point (0:0).
func (p Point) IsZero() bool {
	return p.Line == 0 && p.Column == 0
}

// MinPoint returns the earlier of two points.
func MinPoint(a, b Point) Point {
	if b.Before(a) {
		return b
	}
	return a
}

// MaxPoint returns the later of two points.
func MaxPoint(a, b Point) Point {
	if b.After(a) {
		return b
	}
	return a
}
