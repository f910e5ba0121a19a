package mode

import (
	"github.com/dshills/te/internal/input"
	"github.com/dshills/te/internal/input/key"
	"github.com/dshills/te/internal/project/browser"
)

// BrowserMode handles the file browser.
type BrowserMode struct{}

// NewBrowserMode creates the browser mode.
func NewBrowserMode() *BrowserMode {
	return &BrowserMode{}
}

// Name returns the mode identifier.
func (m *BrowserMode) Name() string { return ModeBrowser }

// DisplayName returns the human-readable mode name.
func (m *BrowserMode) DisplayName() string { return "BROWSER" }

// CursorVisible returns false.
func (m *BrowserMode) CursorVisible() bool { return false }

// Enter creates the browser in the current file's directory, or in the
// working directory for an unsaved document.
func (m *BrowserMode) Enter(ctx *Context) error {
	ctx.Browser = browser.New(ctx.FS, ctx.browserStart())
	return nil
}

// Exit discards the browser.
func (m *BrowserMode) Exit(ctx *Context) error {
	ctx.Browser = nil
	return nil
}

// HandleEvent handles key and pointer input.
func (m *BrowserMode) HandleEvent(ev input.Event, ctx *Context) *Action {
	b := ctx.Browser
	if b == nil {
		return switchTo(ModeEdit, "")
	}

	switch ev.Kind {
	case input.EventKey:
		switch ev.Key.Key {
		case key.KeyEscape:
			return switchTo(ModeEdit, "Open file cancelled.")
		case key.KeyUp:
			b.Up()
		case key.KeyDown:
			b.Down()
		case key.KeyBackspace:
			b.Parent()
		case key.KeyEnter:
			return chosen(b.Activate())
		}
	case input.EventMouse:
		if !ev.Mouse.IsPress() {
			return nil
		}
		l := browser.NewLayout(ctx.Geometry.Width, ctx.Geometry.Height)
		if row, ok := l.ItemAt(ev.Mouse.X, ev.Mouse.Y); ok {
			b.SetVisibleRows(l.ItemRows())
			return chosen(b.Click(row))
		}
	}
	return nil
}

func chosen(path string, ok bool) *Action {
	if !ok {
		return nil
	}
	return &Action{Command: CmdLoad, Path: path, SwitchTo: ModeEdit}
}
