package mode

import (
	"path/filepath"

	"github.com/dshills/te/internal/engine"
	"github.com/dshills/te/internal/input"
	"github.com/dshills/te/internal/input/menu"
	"github.com/dshills/te/internal/project/browser"
	"github.com/dshills/te/internal/project/vfs"
	"github.com/dshills/te/internal/renderer/core"
)

// Mode names.
const (
	ModeEdit    = "edit"
	ModeMenu    = "menu"
	ModeBrowser = "browser"
)

// Mode defines the interface for editor modes.
type Mode interface {
	// Name returns the unique mode identifier.
	Name() string

	// DisplayName returns a human-readable name for the status line.
	DisplayName() string

	// CursorVisible reports whether the terminal cursor is shown.
	CursorVisible() bool

	// Enter is called when entering this mode.
	Enter(ctx *Context) error

	// Exit is called when leaving this mode.
	Exit(ctx *Context) error

	// HandleEvent handles one input event. It returns nil if there is
	// nothing further to do.
	HandleEvent(ev input.Event, ctx *Context) *Action
}

// Context carries the session state a mode may read and mutate.
type Context struct {
	// PreviousMode is the mode being transitioned from (for Enter).
	PreviousMode string

	// NextMode is the mode being transitioned to (for Exit).
	NextMode string

	Engine *engine.Engine
	Menu   *menu.Menu

	// Browser exists only while the browser mode is active.
	Browser *browser.Browser

	// FS is listed by the browser.
	FS vfs.FS

	// WorkDir is where the browser starts for an unsaved document.
	WorkDir string

	Geometry core.Geometry
}

// browserStart returns the directory the browser opens in.
func (c *Context) browserStart() string {
	if c.Engine != nil && c.Engine.HasPath() {
		return filepath.Dir(c.Engine.Path())
	}
	return c.WorkDir
}
