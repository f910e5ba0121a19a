// Package viewport maintains the vertical scroll offset of the editing area.
package viewport

// Viewport is the visible window into the document: the first visible line
// and the number of content rows.
//
// The top line always satisfies 0 <= top <= max(0, lineCount-height).
type Viewport struct {
	topLine int
	height  int
}

// NewViewport creates a viewport with the given content height.
// Height is clamped to a minimum of 1.
func NewViewport(height int) *Viewport {
	return &Viewport{height: max(1, height)}
}

// TopLine returns the first visible line.
func (v *Viewport) TopLine() int {
	return v.topLine
}

// Height returns the number of content rows.
func (v *Viewport) Height() int {
	return v.height
}

// bottomLine returns the last line index the window can show.
func (v *Viewport) bottomLine() int {
	return v.topLine + v.height - 1
}

// Reset scrolls back to the top.
func (v *Viewport) Reset() {
	v.topLine = 0
}

// Resize changes the content height and keeps the cursor line visible.
func (v *Viewport) Resize(height, cursorLine, lineCount int) {
	v.height = max(1, height)
	v.Follow(cursorLine, lineCount)
}

// Follow scrolls the minimum amount needed to make cursorLine visible.
func (v *Viewport) Follow(cursorLine, lineCount int) {
	if cursorLine < v.topLine {
		v.topLine = cursorLine
	}
	if cursorLine >= v.topLine+v.height {
		v.topLine = cursorLine - v.height + 1
	}
	v.clamp(lineCount)
}

// ScrollBy moves the top line by n lines, clamped to the valid range.
// It returns true if the top line changed.
func (v *Viewport) ScrollBy(n, lineCount int) bool {
	before := v.topLine
	v.topLine += n
	v.clamp(lineCount)
	return v.topLine != before
}

// IsVisible reports whether line is inside the window.
func (v *Viewport) IsVisible(line int) bool {
	return line >= v.topLine && line < v.topLine+v.height
}

// ClampLine returns line moved into the window and into [0, lineCount).
func (v *Viewport) ClampLine(line, lineCount int) int {
	line = min(max(line, v.topLine), v.bottomLine())
	return min(max(line, 0), max(0, lineCount-1))
}

// MaxTopLine returns the largest legal top line.
func (v *Viewport) MaxTopLine(lineCount int) int {
	return max(0, lineCount-v.height)
}

func (v *Viewport) clamp(lineCount int) {
	v.topLine = min(max(v.topLine, 0), v.MaxTopLine(lineCount))
}
