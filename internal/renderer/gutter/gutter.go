// Package gutter formats the optional line-number column.
package gutter

import (
	"strconv"

	"github.com/dshills/te/internal/renderer/core"
)

// DefaultWidth is the gutter width in cells, including the separator.
const DefaultWidth = 5

// Gutter renders right-aligned, 1-based line numbers in a fixed width
// followed by one blank separator column.
type Gutter struct {
	enabled bool
	width   int
	style   core.Style
}

// New creates a gutter of the given width.
func New(width int, enabled bool) *Gutter {
	if width < 2 {
		width = DefaultWidth
	}
	return &Gutter{enabled: enabled, width: width, style: core.DefaultStyle().Dim()}
}

// Enabled returns true if line numbers are shown.
func (g *Gutter) Enabled() bool {
	return g.enabled
}

// SetEnabled shows or hides line numbers.
func (g *Gutter) SetEnabled(enabled bool) {
	g.enabled = enabled
}

// Toggle flips the gutter and returns the new state.
func (g *Gutter) Toggle() bool {
	g.enabled = !g.enabled
	return g.enabled
}

// Width returns the columns the gutter occupies, or 0 when hidden.
func (g *Gutter) Width() int {
	if !g.enabled {
		return 0
	}
	return g.width
}

// Style returns the gutter cell style.
func (g *Gutter) Style() core.Style {
	return g.style
}

// Format returns the gutter text for a 0-indexed line.
func (g *Gutter) Format(line int) string {
	return Format(line, g.width)
}

// Format returns the 1-based number of line right-aligned in width-1
// columns plus a trailing space. Numbers too wide keep their low digits.
func Format(line, width int) string {
	digits := width - 1
	s := strconv.Itoa(line + 1)
	if len(s) > digits {
		s = s[len(s)-digits:]
	}
	return PadLeft(s, digits) + " "
}

// PadLeft pads a string with spaces on the left to the specified width.
func PadLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := make([]byte, width-len(s))
	for i := range padding {
		padding[i] = ' '
	}
	return string(padding) + s
}
