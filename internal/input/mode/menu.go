package mode

import (
	"github.com/dshills/te/internal/input"
	"github.com/dshills/te/internal/input/key"
	"github.com/dshills/te/internal/input/menu"
	"github.com/dshills/te/internal/input/mouse"
)

const returnedToEdit = "Returned to editing mode."

// MenuMode handles menu bar navigation.
type MenuMode struct{}

// NewMenuMode creates the menu mode.
func NewMenuMode() *MenuMode {
	return &MenuMode{}
}

// Name returns the mode identifier.
func (m *MenuMode) Name() string { return ModeMenu }

// DisplayName returns the human-readable mode name.
func (m *MenuMode) DisplayName() string { return "MENU" }

// CursorVisible returns false.
func (m *MenuMode) CursorVisible() bool { return false }

// Enter keeps whatever dropdown state the entering click produced.
func (m *MenuMode) Enter(ctx *Context) error { return nil }

// Exit closes the dropdown.
func (m *MenuMode) Exit(ctx *Context) error {
	if ctx.Menu != nil {
		ctx.Menu.Close()
	}
	return nil
}

// HandleEvent handles key and pointer input.
func (m *MenuMode) HandleEvent(ev input.Event, ctx *Context) *Action {
	switch ev.Kind {
	case input.EventKey:
		return m.handleKey(ev.Key, ctx)
	case input.EventMouse:
		return m.handleMouse(ev.Mouse, ctx)
	}
	return nil
}

func (m *MenuMode) handleKey(ev key.Event, ctx *Context) *Action {
	mu := ctx.Menu
	switch ev.Key {
	case key.KeyEscape:
		return switchTo(ModeEdit, returnedToEdit)
	case key.KeyF9:
		return switchTo(ModeEdit, "Text editing mode.")
	case key.KeyLeft:
		mu.Prev()
	case key.KeyRight:
		mu.Next()
	case key.KeyUp:
		mu.Up()
	case key.KeyDown:
		mu.Down()
	case key.KeyEnter:
		if item, res := mu.Activate(); res == menu.ResultSelect {
			return selectItem(item)
		}
	}
	return nil
}

func (m *MenuMode) handleMouse(ev mouse.Event, ctx *Context) *Action {
	if !ev.IsPress() {
		return nil
	}
	item, res := ctx.Menu.Click(ev.X, ev.Y)
	switch res {
	case menu.ResultSelect:
		return selectItem(item)
	case menu.ResultOutside:
		g := ctx.Geometry
		if !g.InContent(ev.Y) {
			return nil
		}
		row, col := g.DocumentOffset(ev.X, ev.Y)
		ctx.Engine.PointerPress(ctx.Engine.PositionAt(row, col))
		return switchTo(ModeEdit, returnedToEdit)
	}
	return nil
}

// selectItem resolves a menu entry. Every resolution leaves the menu.
func selectItem(item menu.Item) *Action {
	return &Action{Command: CmdMenuItem, Item: item, SwitchTo: ModeEdit}
}
