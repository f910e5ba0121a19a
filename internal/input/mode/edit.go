package mode

import (
	"github.com/dshills/te/internal/input"
	"github.com/dshills/te/internal/input/key"
	"github.com/dshills/te/internal/input/mouse"
)

// EditMode handles text entry and navigation.
type EditMode struct{}

// NewEditMode creates the edit mode.
func NewEditMode() *EditMode {
	return &EditMode{}
}

// Name returns the mode identifier.
func (m *EditMode) Name() string { return ModeEdit }

// DisplayName returns the human-readable mode name.
func (m *EditMode) DisplayName() string { return "EDIT" }

// CursorVisible returns true; the edit cursor is always shown.
func (m *EditMode) CursorVisible() bool { return true }

// Enter is called when entering edit mode.
func (m *EditMode) Enter(ctx *Context) error { return nil }

// Exit is called when leaving edit mode.
func (m *EditMode) Exit(ctx *Context) error { return nil }

// HandleEvent handles key and pointer input.
func (m *EditMode) HandleEvent(ev input.Event, ctx *Context) *Action {
	switch ev.Kind {
	case input.EventKey:
		return m.handleKey(ev.Key, ctx)
	case input.EventMouse:
		return m.handleMouse(ev.Mouse, ctx)
	}
	return nil
}

func (m *EditMode) handleKey(ev key.Event, ctx *Context) *Action {
	e := ctx.Engine
	if ev.IsShiftArrow() {
		dy, dx := ev.Key.Delta()
		e.ExtendSelection(dy, dx)
		return nil
	}
	e.ClearSelection()

	switch ev.Key {
	case key.KeyEscape:
		// Counted by the manager.
		return nil
	case key.KeyUp, key.KeyDown, key.KeyLeft, key.KeyRight:
		e.Move(ev.Key.Delta())
	case key.KeyHome:
		e.LineStart()
	case key.KeyEnd:
		e.LineEnd()
	case key.KeyPageUp:
		e.Page(-1)
	case key.KeyPageDown:
		e.Page(1)
	case key.KeyEnter:
		e.InsertNewline()
	case key.KeyBackspace:
		e.Backspace()
	case key.KeyDelete:
		e.DeleteForward()
	case key.KeyF1:
		return run(CmdOpen)
	case key.KeyF2:
		return run(CmdSave)
	case key.KeyF3:
		return run(CmdNew)
	case key.KeyF4:
		return run(CmdNextTheme)
	case key.KeyF5:
		return run(CmdToggleLineNumbers)
	case key.KeyF9:
		return switchTo(ModeMenu, "Menu navigation enabled.")
	case key.KeyRune:
		if ev.IsChar() {
			e.InsertChar(ev.Rune)
		}
	}
	return nil
}

func (m *EditMode) handleMouse(ev mouse.Event, ctx *Context) *Action {
	if ev.IsScroll() {
		ctx.Engine.Wheel(ev.ScrollDelta())
		return nil
	}
	if ev.Button != mouse.ButtonLeft {
		return nil
	}

	g := ctx.Geometry
	if ev.Y == 0 {
		if ev.Action != mouse.ActionPress {
			return nil
		}
		ctx.Menu.Click(ev.X, ev.Y)
		return switchTo(ModeMenu, "Menu navigation enabled.")
	}
	if !g.InContent(ev.Y) {
		return nil
	}

	row, col := g.DocumentOffset(ev.X, ev.Y)
	p := ctx.Engine.PositionAt(row, col)
	switch ev.Action {
	case mouse.ActionPress:
		ctx.Engine.PointerPress(p)
	case mouse.ActionDrag:
		ctx.Engine.PointerDrag(p)
	case mouse.ActionRelease:
		ctx.Engine.PointerRelease(p)
	}
	return nil
}
