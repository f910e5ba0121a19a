package browser

import "github.com/dshills/te/internal/renderer/core"

// Window geometry, in cells.
const (
	// windowTop is the row of the top border.
	windowTop  = 2
	windowLeft = 2
	// reservedRows is the screen height not used by the window body.
	reservedRows = 8
	// reservedCols is the screen width not used by the window.
	reservedCols = 4
	minBodyRows  = 3
	minWidth     = 10

	// defaultWidth and defaultHeight size a browser before the first
	// SetVisibleRows.
	defaultWidth  = 80
	defaultHeight = 24
)

// Layout computes the browser window geometry for a screen size.
type Layout struct {
	Width, Height int
}

// NewLayout creates a layout for a width x height screen.
func NewLayout(width, height int) Layout {
	return Layout{Width: width, Height: height}
}

// bodyRows is the number of rows between the borders.
func (l Layout) bodyRows() int {
	return l.Height - reservedRows
}

// Fits returns true if the window can be drawn.
func (l Layout) Fits() bool {
	return l.bodyRows() >= minBodyRows && l.WindowWidth() >= minWidth
}

// WindowWidth returns the width of the window including borders.
func (l Layout) WindowWidth() int {
	return l.Width - reservedCols
}

// Box returns the window rectangle including both borders.
func (l Layout) Box() core.ScreenRect {
	return core.RectFromSize(windowTop, windowLeft, l.bodyRows()+2, l.WindowWidth())
}

// PathRow returns the row of the directory path line.
func (l Layout) PathRow() int {
	return windowTop + 1
}

// FirstItemRow returns the row of the first entry.
func (l Layout) FirstItemRow() int {
	return windowTop + 2
}

// ItemRows returns how many entries are visible.
func (l Layout) ItemRows() int {
	return max(0, l.bodyRows()-2)
}

// ItemWidth returns the text width available to an entry label.
func (l Layout) ItemWidth() int {
	return max(0, l.WindowWidth()-4)
}

// InstructionsRow returns the row below the bottom border.
func (l Layout) InstructionsRow() int {
	return l.Box().Bottom
}

// ItemAt maps a screen cell to a visible row offset.
func (l Layout) ItemAt(x, y int) (int, bool) {
	row := y - l.FirstItemRow()
	if row < 0 || row >= l.ItemRows() {
		return 0, false
	}
	if x < windowLeft+1 || x >= l.Width-reservedCols {
		return 0, false
	}
	return row, true
}
