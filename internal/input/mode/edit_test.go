package mode

import (
	"testing"

	"github.com/dshills/te/internal/engine/buffer"
	"github.com/dshills/te/internal/input/key"
	"github.com/dshills/te/internal/input/mouse"
)

func TestEditTyping(t *testing.T) {
	ctx := newTestContext(t, "")
	m := newTestManager(t, ctx)

	dispatch(t, m, ctx, runeEv('a'), runeEv('b'))
	if got := ctx.Engine.Lines(); len(got) != 1 || got[0] != "ab" {
		t.Fatalf("Lines() = %q, want [ab]", got)
	}
	dispatch(t, m, ctx, keyEv(key.KeyEnter))
	if got := ctx.Engine.Cursor(); got != (buffer.Point{Line: 1}) {
		t.Errorf("Cursor() after Enter = %v", got)
	}
	dispatch(t, m, ctx, keyEv(key.KeyBackspace))
	if got := ctx.Engine.Cursor(); got != (buffer.Point{Line: 0, Column: 2}) {
		t.Errorf("Cursor() after Backspace = %v", got)
	}
	dispatch(t, m, ctx, keyEv(key.KeyHome), keyEv(key.KeyDelete))
	if got := ctx.Engine.LineText(0); got != "b" {
		t.Errorf("line after Home+Delete = %q", got)
	}
}

func TestEditIgnoresControlRunes(t *testing.T) {
	ctx := newTestContext(t, "")
	m := newTestManager(t, ctx)

	dispatch(t, m, ctx, runeEv('\x07'))
	ctrl := keyEv(key.KeyRune)
	ctrl.Key.Rune = 'x'
	ctrl.Key.Modifiers = key.ModCtrl
	dispatch(t, m, ctx, ctrl)
	if ctx.Engine.LineText(0) != "" {
		t.Errorf("control input inserted %q", ctx.Engine.LineText(0))
	}
}

func TestEditShiftSelection(t *testing.T) {
	ctx := newTestContext(t, "hello\nworld")
	m := newTestManager(t, ctx)

	dispatch(t, m, ctx, shiftEv(key.KeyRight), shiftEv(key.KeyDown))
	sel := ctx.Engine.Selection()
	if sel == nil {
		t.Fatal("expected a selection")
	}
	if sel.Anchor != (buffer.Point{}) || sel.Active != (buffer.Point{Line: 1, Column: 1}) {
		t.Errorf("selection = %v", sel)
	}

	// A plain arrow clears it.
	dispatch(t, m, ctx, keyEv(key.KeyLeft))
	if ctx.Engine.HasSelection() {
		t.Error("non-selection key should clear the selection")
	}
}

func TestEditFunctionKeys(t *testing.T) {
	tests := []struct {
		k    key.Key
		want Command
	}{
		{key.KeyF1, CmdOpen},
		{key.KeyF2, CmdSave},
		{key.KeyF3, CmdNew},
		{key.KeyF4, CmdNextTheme},
		{key.KeyF5, CmdToggleLineNumbers},
	}
	for _, tt := range tests {
		t.Run(tt.k.String(), func(t *testing.T) {
			ctx := newTestContext(t, "")
			act := NewEditMode().HandleEvent(keyEv(tt.k), ctx)
			if act == nil || act.Command != tt.want {
				t.Errorf("HandleEvent(%v) = %+v, want %v", tt.k, act, tt.want)
			}
		})
	}
}

func TestEditF9EntersMenu(t *testing.T) {
	ctx := newTestContext(t, "")
	m := newTestManager(t, ctx)
	act := dispatch(t, m, ctx, keyEv(key.KeyF9))
	if m.CurrentName() != ModeMenu {
		t.Errorf("mode = %q, want menu", m.CurrentName())
	}
	if act.Message != "Menu navigation enabled." {
		t.Errorf("Message = %q", act.Message)
	}
	if ctx.Menu.IsOpen() {
		t.Error("F9 should not open a dropdown")
	}
}

func TestEditClickPlacesCursor(t *testing.T) {
	ctx := newTestContext(t, "first\nsecond line\nthird")
	ctx.Geometry.GutterWidth = 5
	m := newTestManager(t, ctx)

	// Row 2 on screen is document line 1; column 8 minus the gutter is 3.
	dispatch(t, m, ctx, clickEv(8, 2, mouse.ActionPress), clickEv(8, 2, mouse.ActionRelease))
	if got := ctx.Engine.Cursor(); got != (buffer.Point{Line: 1, Column: 3}) {
		t.Errorf("Cursor() = %v, want (1,3)", got)
	}
	if ctx.Engine.HasSelection() {
		t.Error("plain click should leave no selection")
	}

	// Beyond the line end clamps.
	dispatch(t, m, ctx, clickEv(70, 3, mouse.ActionPress))
	if got := ctx.Engine.Cursor(); got != (buffer.Point{Line: 2, Column: 5}) {
		t.Errorf("Cursor() = %v, want (2,5)", got)
	}
}

func TestEditDragSelects(t *testing.T) {
	ctx := newTestContext(t, "abcdef\nghijkl")
	m := newTestManager(t, ctx)

	dispatch(t, m, ctx,
		clickEv(1, 1, mouse.ActionPress),
		clickEv(3, 2, mouse.ActionDrag),
		clickEv(4, 2, mouse.ActionRelease),
	)
	sel := ctx.Engine.Selection()
	if sel == nil {
		t.Fatal("drag should leave a selection")
	}
	if sel.Anchor != (buffer.Point{Column: 1}) || sel.Active != (buffer.Point{Line: 1, Column: 4}) {
		t.Errorf("selection = %v", sel)
	}
}

func TestEditClickMenuBar(t *testing.T) {
	ctx := newTestContext(t, "")
	m := newTestManager(t, ctx)
	dispatch(t, m, ctx, clickEv(12, 0, mouse.ActionPress))
	if m.CurrentName() != ModeMenu {
		t.Fatalf("mode = %q, want menu", m.CurrentName())
	}
	if !ctx.Menu.IsOpen() || ctx.Menu.Current() != 1 {
		t.Errorf("menu open=%v current=%d, want Edit dropdown open", ctx.Menu.IsOpen(), ctx.Menu.Current())
	}
}

func TestEditClickStatusRowsIgnored(t *testing.T) {
	ctx := newTestContext(t, "abc\ndef")
	m := newTestManager(t, ctx)
	dispatch(t, m, ctx, clickEv(2, 22, mouse.ActionPress))
	if got := ctx.Engine.Cursor(); got != (buffer.Point{}) {
		t.Errorf("click on the message line moved the cursor to %v", got)
	}
}

func TestEditWheel(t *testing.T) {
	ctx := newTestContext(t, "")
	lines := make([]string, 100)
	ctx.Engine.Reset(lines, "")
	m := newTestManager(t, ctx)

	dispatch(t, m, ctx, wheelEv(mouse.ButtonScrollDown))
	if ctx.Engine.TopLine() != 3 {
		t.Errorf("TopLine() = %d, want 3", ctx.Engine.TopLine())
	}
	if ctx.Engine.Cursor().Line != 3 {
		t.Errorf("cursor should be pulled into view, got line %d", ctx.Engine.Cursor().Line)
	}
	dispatch(t, m, ctx, wheelEv(mouse.ButtonScrollUp))
	if ctx.Engine.TopLine() != 0 {
		t.Errorf("TopLine() = %d, want 0", ctx.Engine.TopLine())
	}
}

func TestEditPageKeys(t *testing.T) {
	ctx := newTestContext(t, "")
	ctx.Engine.Reset(make([]string, 100), "")
	m := newTestManager(t, ctx)

	dispatch(t, m, ctx, keyEv(key.KeyPageDown))
	if ctx.Engine.TopLine() != 20 {
		t.Errorf("TopLine() = %d, want 20", ctx.Engine.TopLine())
	}
	dispatch(t, m, ctx, keyEv(key.KeyPageUp))
	if ctx.Engine.TopLine() != 0 {
		t.Errorf("TopLine() = %d, want 0", ctx.Engine.TopLine())
	}
}
