package cursor

import "github.com/dshills/te/internal/engine/buffer"

// Point is an alias for buffer.Point for convenience.
type Point = buffer.Point

// Document is the shape information movement needs.
type Document interface {
	LineCount() int
	LineLen(line int) int
}

// Move applies dy and dx to p independently and returns the new position.
// The line is clamped to the document and the column, computed from p's
// column, is clamped to the destination line's length.
func Move(doc Document, p Point, dy, dx int) Point {
	line := clamp(p.Line+dy, 0, doc.LineCount()-1)
	col := clamp(p.Column+dx, 0, doc.LineLen(line))
	return Point{Line: line, Column: col}
}

// Clamp returns p moved into the valid cursor range of doc.
func Clamp(doc Document, p Point) Point {
	return Move(doc, p, 0, 0)
}

// Valid reports whether p is a legal cursor position in doc.
func Valid(doc Document, p Point) bool {
	return p.Line >= 0 && p.Line < doc.LineCount() &&
		p.Column >= 0 && p.Column <= doc.LineLen(p.Line)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	return min(max(v, lo), hi)
}
