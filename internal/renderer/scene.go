package renderer

import (
	"github.com/dshills/te/internal/engine"
	"github.com/dshills/te/internal/project/browser"
	"github.com/dshills/te/internal/renderer/core"
	"github.com/dshills/te/internal/renderer/gutter"
	"github.com/dshills/te/internal/renderer/highlight"
)

// Document is the read-only view of the editing session a frame shows.
type Document interface {
	LineCount() int
	LineRunes(line int) []rune
	Cursor() engine.Point
	Selection() *engine.Selection
	TopLine() int
	Path() string
}

// MenuView is the menu bar state.
type MenuView interface {
	Titles() []string
	Current() int
	Selected() int
	IsOpen() bool
	Items() []string
	DropdownWidth() int
}

// BrowserView is the file browser state.
type BrowserView interface {
	Title() string
	Dir() string
	Entries() []browser.Entry
	Selected() int
	Top() int
}

// Scene is everything one frame depends on.
type Scene struct {
	Geometry core.Geometry

	Doc Document

	// Mode is the active mode name and ModeName its status badge text.
	Mode     string
	ModeName string

	// CursorVisible is false for modes that hide the terminal cursor.
	CursorVisible bool

	Menu MenuView

	// Browser is drawn instead of the document when non-nil.
	Browser BrowserView

	Styles     *highlight.StyleTable
	Classifier highlight.Classifier
	Gutter     *gutter.Gutter

	Theme   string
	Message string

	// Prompt replaces the message line while a prompt is active.
	Prompt       string
	PromptActive bool
}
