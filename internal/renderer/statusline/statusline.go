// Package statusline builds the text of the three bottom rows: the status
// line, the transient message line and the mode-specific help line.
package statusline

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// Mode names understood by the help line.
const (
	ModeEdit    = "edit"
	ModeMenu    = "menu"
	ModeBrowser = "browser"
)

// Untitled is shown for buffers without a file association.
const Untitled = "Untitled"

// Info is what the status line reports.
type Info struct {
	Path   string
	Line   int // 0-indexed
	Column int // 0-indexed
	Theme  string
	Mode   string
}

// Status returns the status line text.
func Status(info Info) string {
	name := info.Path
	if name == "" {
		name = Untitled
	}
	return fmt.Sprintf("File: %s | Ln %d, Col %d | Theme: %s", name, info.Line+1, info.Column+1, info.Theme)
}

// ModeIndicator returns the right-aligned mode badge.
func ModeIndicator(mode string) string {
	return fmt.Sprintf(" Mode: %s ", strings.ToUpper(mode))
}

// Help returns the help line for mode.
func Help(mode string) string {
	switch mode {
	case ModeMenu:
		return "MENU MODE: ←→ Select Menu | ↑↓ Navigate Items | Enter: Select | Esc: Close | F9: Edit Mode | Click text to edit"
	case ModeBrowser:
		return BrowserInstructions
	default:
		return "F1: Open | F2: Save | F3: New | F4: Theme | F5: Line Num | F9: Menu | Esc x3: Quit"
	}
}

// BrowserInstructions is the key summary shown with the file browser.
const BrowserInstructions = "↑↓: Navigate | Enter: Select/Open | Esc: Cancel | Backspace: Parent Dir"

// Fit truncates or pads s with spaces to exactly width cells.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	var sb strings.Builder
	w := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cw := g.Width()
		if w+cw > width {
			break
		}
		sb.WriteString(g.Str())
		w += cw
	}
	if w < width {
		sb.WriteString(strings.Repeat(" ", width-w))
	}
	return sb.String()
}

// Truncate shortens s to at most width cells, ending in "..." when cut.
func Truncate(s string, width int) string {
	if uniseg.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return strings.TrimRight(Fit(s, width), " ")
	}
	return strings.TrimRight(Fit(s, width-3), " ") + "..."
}

// TruncateLeft keeps the tail of s, prefixing "..." when cut.
func TruncateLeft(s string, width int) string {
	if uniseg.StringWidth(s) <= width {
		return s
	}
	runes := []rune(s)
	keep := max(0, width-3)
	for len(runes) > 0 && uniseg.StringWidth(string(runes)) > keep {
		runes = runes[1:]
	}
	return "..." + string(runes)
}
