package engine

import (
	"github.com/dshills/te/internal/engine/buffer"
	"github.com/dshills/te/internal/engine/cursor"
	"github.com/dshills/te/internal/renderer/viewport"
)

// Re-export commonly used types for convenience.
type (
	// Point represents a line/column position.
	Point = buffer.Point

	// Selection represents an anchor/active selection.
	Selection = cursor.Selection
)

// Engine is the editing state of one session.
type Engine struct {
	buf  *buffer.Buffer
	cur  Point
	sel  *cursor.Selection
	view *viewport.Viewport
	path string

	viewHeight int
	wheelLines int

	// dragAnchor is the press position of an in-progress pointer drag.
	dragAnchor *Point
}

// New creates a new engine with the given options.
func New(opts ...Option) *Engine {
	e := &Engine{
		buf:        buffer.NewBuffer(),
		viewHeight: DefaultViewportHeight,
		wheelLines: DefaultWheelLines,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.view = viewport.NewViewport(e.viewHeight)
	return e
}

func splitLines(text string) []string {
	return buffer.SplitLines(text)
}

// Read access

// LineCount returns the number of lines.
func (e *Engine) LineCount() int { return e.buf.LineCount() }

// LineLen returns the length of line in runes.
func (e *Engine) LineLen(line int) int { return e.buf.LineLen(line) }

// LineText returns the text of line.
func (e *Engine) LineText(line int) string { return e.buf.LineText(line) }

// LineRunes returns the runes of line. The slice must not be modified.
func (e *Engine) LineRunes(line int) []rune { return e.buf.LineRunes(line) }

// Lines returns a copy of every line.
func (e *Engine) Lines() []string { return e.buf.Lines() }

// Text returns the document joined by newlines.
func (e *Engine) Text() string { return e.buf.Text() }

// Cursor returns the cursor position.
func (e *Engine) Cursor() Point { return e.cur }

// Selection returns a copy of the active selection, or nil.
func (e *Engine) Selection() *Selection {
	if e.sel == nil {
		return nil
	}
	s := *e.sel
	return &s
}

// HasSelection returns true if a selection is active.
func (e *Engine) HasSelection() bool { return e.sel != nil }

// TopLine returns the first visible line.
func (e *Engine) TopLine() int { return e.view.TopLine() }

// ViewportHeight returns the number of content rows.
func (e *Engine) ViewportHeight() int { return e.view.Height() }

// Path returns the file association, or "" for an unsaved buffer.
func (e *Engine) Path() string { return e.path }

// HasPath returns true if the buffer is associated with a file.
func (e *Engine) HasPath() bool { return e.path != "" }

// SetPath updates the file association.
func (e *Engine) SetPath(path string) { e.path = path }

// Document lifecycle

// Reset replaces the document, moves the cursor and viewport to the top,
// clears the selection and sets the file association.
func (e *Engine) Reset(lines []string, path string) {
	e.buf.Reset(lines)
	e.cur = Point{}
	e.sel = nil
	e.dragAnchor = nil
	e.view.Reset()
	e.path = path
}

// NewDocument discards the document and starts an unsaved empty one.
func (e *Engine) NewDocument() {
	e.Reset(nil, "")
}

// Resize updates the content height after a terminal resize.
func (e *Engine) Resize(height int) {
	e.view.Resize(height, e.cur.Line, e.buf.LineCount())
}

// Editing

// InsertChar inserts ch at the cursor.
func (e *Engine) InsertChar(ch rune) {
	e.sel = nil
	e.setCursor(e.buf.InsertChar(e.cur, ch))
}

// InsertNewline splits the line at the cursor.
func (e *Engine) InsertNewline() {
	e.sel = nil
	e.setCursor(e.buf.SplitLine(e.cur))
}

// Backspace deletes the rune before the cursor or joins with the previous line.
func (e *Engine) Backspace() {
	e.sel = nil
	e.setCursor(e.buf.Backspace(e.cur))
}

// DeleteForward deletes the rune under the cursor or joins the next line.
func (e *Engine) DeleteForward() {
	e.sel = nil
	e.setCursor(e.buf.DeleteForward(e.cur))
}

// ReplaceLine replaces the cursor line with lines and moves the cursor to
// the end of the inserted text.
func (e *Engine) ReplaceLine(lines []string) {
	e.sel = nil
	e.setCursor(e.buf.ReplaceLine(e.cur.Line, lines))
}

// Movement

// Move moves the cursor by (dy, dx) and clears the selection.
func (e *Engine) Move(dy, dx int) {
	e.sel = nil
	e.setCursor(cursor.Move(e.buf, e.cur, dy, dx))
}

// ExtendSelection moves the cursor by (dy, dx), starting a selection at the
// current position if none is active.
func (e *Engine) ExtendSelection(dy, dx int) {
	p, sel := cursor.StartOrExtend(e.buf, e.sel, e.cur, dy, dx)
	e.sel = sel
	e.setCursor(p)
}

// LineStart moves the cursor to column 0.
func (e *Engine) LineStart() {
	e.Move(0, -e.cur.Column)
}

// LineEnd moves the cursor to the end of the line.
func (e *Engine) LineEnd() {
	e.Move(0, e.buf.LineLen(e.cur.Line)-e.cur.Column)
}

// ClearSelection drops the selection.
func (e *Engine) ClearSelection() {
	e.sel = nil
	e.dragAnchor = nil
}

// Scrolling

// ScrollBy scrolls the viewport by n lines. The cursor moves only if it
// would otherwise leave the window.
func (e *Engine) ScrollBy(n int) {
	e.view.ScrollBy(n, e.buf.LineCount())
	if e.view.IsVisible(e.cur.Line) {
		return
	}
	line := e.view.ClampLine(e.cur.Line, e.buf.LineCount())
	e.cur = e.buf.Clamp(Point{Line: line, Column: e.cur.Column})
}

// Wheel scrolls by the configured wheel step in direction dir (-1 or 1).
func (e *Engine) Wheel(dir int) {
	e.ScrollBy(dir * e.wheelLines)
}

// Page scrolls by one content height in direction dir (-1 or 1).
func (e *Engine) Page(dir int) {
	e.ScrollBy(dir * e.view.Height())
}

// Pointer

// PositionAt converts a content-area cell (row relative to the first
// content row, column relative to the text start) to a document position.
func (e *Engine) PositionAt(row, col int) Point {
	return e.buf.Clamp(Point{Line: e.view.TopLine() + row, Column: col})
}

// PointerPress places the cursor at p, clears the selection and remembers p
// as the anchor of a possible drag.
func (e *Engine) PointerPress(p Point) {
	p = e.buf.Clamp(p)
	e.sel = nil
	e.dragAnchor = &p
	e.setCursor(p)
}

// PointerDrag extends a selection from the press position to p.
func (e *Engine) PointerDrag(p Point) {
	p = e.buf.Clamp(p)
	if e.dragAnchor == nil {
		e.PointerPress(p)
		return
	}
	sel := cursor.NewSelection(*e.dragAnchor, p)
	e.sel = &sel
	e.setCursor(p)
}

// PointerRelease ends a drag. A release at the press position is a plain
// click and leaves no selection.
func (e *Engine) PointerRelease(p Point) {
	if e.dragAnchor != nil {
		e.PointerDrag(p)
	}
	if e.sel != nil && e.sel.IsEmpty() {
		e.sel = nil
	}
	e.dragAnchor = nil
}

func (e *Engine) setCursor(p Point) {
	e.cur = e.buf.Clamp(p)
	e.view.Follow(e.cur.Line, e.buf.LineCount())
}
