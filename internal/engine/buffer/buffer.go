package buffer

import "strings"

// Buffer is the document: an ordered, never-empty sequence of lines.
type Buffer struct {
	lines [][]rune
}

// NewBuffer creates a buffer holding one empty line.
func NewBuffer(opts ...Option) *Buffer {
	b := &Buffer{lines: [][]rune{{}}}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewBufferFromString creates a buffer from text.
func NewBufferFromString(text string) *Buffer {
	return NewBuffer(WithText(text))
}

// LineCount returns the number of lines. It is always at least one.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// LastLine returns the index of the last line.
func (b *Buffer) LastLine() int {
	return len(b.lines) - 1
}

// LineLen returns the length of line in runes, or 0 when out of range.
func (b *Buffer) LineLen(line int) int {
	if line < 0 || line >= len(b.lines) {
		return 0
	}
	return len(b.lines[line])
}

// LineText returns the text of line, or "" when out of range.
func (b *Buffer) LineText(line int) string {
	if line < 0 || line >= len(b.lines) {
		return ""
	}
	return string(b.lines[line])
}

// LineRunes returns the runes of line. The slice must not be modified.
func (b *Buffer) LineRunes(line int) []rune {
	if line < 0 || line >= len(b.lines) {
		return nil
	}
	return b.lines[line]
}

// Lines returns a copy of every line.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, l := range b.lines {
		out[i] = string(l)
	}
	return out
}

// Text returns the lines joined by a single newline.
func (b *Buffer) Text() string {
	return strings.Join(b.Lines(), "\n")
}

// IsEmpty returns true when the buffer is a single empty line.
func (b *Buffer) IsEmpty() bool {
	return len(b.lines) == 1 && len(b.lines[0]) == 0
}

// Clamp returns p moved into the valid cursor range.
func (b *Buffer) Clamp(p Point) Point {
	p.Line = min(max(p.Line, 0), b.LastLine())
	p.Column = min(max(p.Column, 0), len(b.lines[p.Line]))
	return p
}

// Reset replaces the contents. Empty input leaves one empty line.
func (b *Buffer) Reset(lines []string) {
	b.lines = [][]rune{{}}
	WithLines(lines)(b)
}

// InsertChar splices ch at p and returns the position after it.
func (b *Buffer) InsertChar(p Point, ch rune) Point {
	line := b.lines[p.Line]
	line = append(line, 0)
	copy(line[p.Column+1:], line[p.Column:])
	line[p.Column] = ch
	b.lines[p.Line] = line
	return Point{Line: p.Line, Column: p.Column + 1}
}

// SplitLine truncates the line at p, moves the remainder onto a new following
// line and returns the start of that line.
func (b *Buffer) SplitLine(p Point) Point {
	line := b.lines[p.Line]
	rest := make([]rune, len(line)-p.Column)
	copy(rest, line[p.Column:])
	b.lines[p.Line] = line[:p.Column:p.Column]
	b.insertLine(p.Line+1, rest)
	return Point{Line: p.Line + 1}
}

// JoinWithPrevious appends line to line-1 and removes it. It returns the
// join point, which is the previous line's former end. Line 0 is a no-op.
func (b *Buffer) JoinWithPrevious(line int) Point {
	if line <= 0 || line >= len(b.lines) {
		return Point{Line: max(0, min(line, b.LastLine()))}
	}
	prev := b.lines[line-1]
	col := len(prev)
	b.lines[line-1] = append(prev[:col:col], b.lines[line]...)
	b.removeLine(line)
	return Point{Line: line - 1, Column: col}
}

// DeleteForward removes the rune at p, or joins the next line when p is at
// the end of a line. At the end of the last line it does nothing. The cursor
// does not move, so p is returned.
func (b *Buffer) DeleteForward(p Point) Point {
	line := b.lines[p.Line]
	if p.Column < len(line) {
		b.lines[p.Line] = append(line[:p.Column], line[p.Column+1:]...)
		return p
	}
	if p.Line < b.LastLine() {
		b.JoinWithPrevious(p.Line + 1)
	}
	return p
}

// Backspace removes the rune before p, or joins the line with the previous
// one at column 0. At (0,0) it does nothing.
func (b *Buffer) Backspace(p Point) Point {
	if p.Column > 0 {
		line := b.lines[p.Line]
		b.lines[p.Line] = append(line[:p.Column-1], line[p.Column:]...)
		return Point{Line: p.Line, Column: p.Column - 1}
	}
	if p.Line > 0 {
		return b.JoinWithPrevious(p.Line)
	}
	return p
}

// ReplaceLine swaps line for the given lines and returns the end of the last
// inserted line. An empty replacement keeps a single empty line.
func (b *Buffer) ReplaceLine(line int, with []string) Point {
	if len(with) == 0 {
		with = []string{""}
	}
	b.lines[line] = []rune(with[0])
	for i, l := range with[1:] {
		b.insertLine(line+1+i, []rune(l))
	}
	last := line + len(with) - 1
	return Point{Line: last, Column: len(b.lines[last])}
}

func (b *Buffer) insertLine(at int, line []rune) {
	b.lines = append(b.lines, nil)
	copy(b.lines[at+1:], b.lines[at:])
	b.lines[at] = line
}

// removeLine deletes a line, keeping the one-line minimum.
func (b *Buffer) removeLine(at int) {
	b.lines = append(b.lines[:at], b.lines[at+1:]...)
	if len(b.lines) == 0 {
		b.lines = [][]rune{{}}
	}
}
