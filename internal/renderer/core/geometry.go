package core

// Screen layout: row 0 is the menu bar, the last three rows are the status,
// message and help lines, and everything in between is document content.
const (
	ContentTop   = 1
	ReservedRows = 4
	MinWidth     = 20
	MinHeight    = 6
)

// Geometry is the screen size plus the current gutter width.
type Geometry struct {
	Width, Height int
	GutterWidth   int
}

// ContentHeight returns the number of document rows on screen.
func (g Geometry) ContentHeight() int {
	return max(0, g.Height-ReservedRows)
}

// StatusRow returns the row of the status line.
func (g Geometry) StatusRow() int { return g.Height - 3 }

// MessageRow returns the row of the transient message line.
func (g Geometry) MessageRow() int { return g.Height - 2 }

// HelpRow returns the row of the help line.
func (g Geometry) HelpRow() int { return g.Height - 1 }

// TooSmall returns true if the screen is below the usable minimum.
func (g Geometry) TooSmall() bool {
	return g.Width < MinWidth || g.Height < MinHeight
}

// InContent returns true if row y shows document text.
func (g Geometry) InContent(y int) bool {
	return y >= ContentTop && y < g.StatusRow()
}

// Content returns the rectangle of document text, excluding the gutter.
func (g Geometry) Content() ScreenRect {
	return ScreenRect{
		Top:    ContentTop,
		Left:   min(g.GutterWidth, g.Width),
		Bottom: ContentTop + g.ContentHeight(),
		Right:  g.Width,
	}
}

// DocumentOffset converts a screen cell in the content area to a row offset
// from the first visible line and a column in the line.
func (g Geometry) DocumentOffset(x, y int) (row, col int) {
	return max(0, y-ContentTop), max(0, x-g.GutterWidth)
}
