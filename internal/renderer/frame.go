package renderer

import (
	"strings"

	"github.com/dshills/te/internal/renderer/core"
)

// Frame is a grid of cells plus the terminal cursor state. Writes outside the
// grid are dropped.
type Frame struct {
	width, height int
	cells         []core.Cell

	cursor        core.ScreenPos
	cursorVisible bool
}

// NewFrame creates a blank frame.
func NewFrame(width, height int) *Frame {
	width, height = max(0, width), max(0, height)
	f := &Frame{width: width, height: height, cells: make([]core.Cell, width*height)}
	for i := range f.cells {
		f.cells[i] = core.EmptyCell()
	}
	return f
}

// Width returns the frame width.
func (f *Frame) Width() int { return f.width }

// Height returns the frame height.
func (f *Frame) Height() int { return f.height }

// Contains reports whether (x, y) is inside the frame.
func (f *Frame) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < f.width && y < f.height
}

// Set writes one cell.
func (f *Frame) Set(x, y int, c core.Cell) {
	if !f.Contains(x, y) {
		return
	}
	f.cells[y*f.width+x] = c
}

// Cell returns the cell at (x, y), or an empty cell outside the frame.
func (f *Frame) Cell(x, y int) core.Cell {
	if !f.Contains(x, y) {
		return core.EmptyCell()
	}
	return f.cells[y*f.width+x]
}

// Text draws s starting at (x, y) and returns the column after the last
// cell written. Control characters are drawn as spaces.
func (f *Frame) Text(x, y int, s string, style core.Style) int {
	for _, r := range s {
		if x >= f.width {
			break
		}
		c := core.NewStyledCell(printable(r), style)
		f.Set(x, y, c)
		x += max(1, c.Width)
	}
	return x
}

// Fill sets every cell of r to a blank in style.
func (f *Frame) Fill(r core.ScreenRect, style core.Style) {
	blank := core.NewStyledCell(' ', style)
	for y := r.Top; y < r.Bottom; y++ {
		for x := r.Left; x < r.Right; x++ {
			f.Set(x, y, blank)
		}
	}
}

// Row returns the characters of row y.
func (f *Frame) Row(y int) string {
	if y < 0 || y >= f.height {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < f.width; x++ {
		sb.WriteRune(f.cells[y*f.width+x].Rune)
	}
	return sb.String()
}

// SetCursor shows the cursor at pos.
func (f *Frame) SetCursor(pos core.ScreenPos) {
	f.cursor = pos
	f.cursorVisible = true
}

// HideCursor hides the cursor.
func (f *Frame) HideCursor() {
	f.cursorVisible = false
}

// Cursor returns the cursor position and whether it is shown.
func (f *Frame) Cursor() (core.ScreenPos, bool) {
	return f.cursor, f.cursorVisible
}

func printable(r rune) rune {
	if r < 32 || r == 0x7F {
		return ' '
	}
	return r
}
