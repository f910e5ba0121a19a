package mode

import (
	"testing"

	"github.com/dshills/te/internal/engine"
	"github.com/dshills/te/internal/input"
	"github.com/dshills/te/internal/input/key"
	"github.com/dshills/te/internal/input/menu"
	"github.com/dshills/te/internal/input/mouse"
	"github.com/dshills/te/internal/project/vfs"
	"github.com/dshills/te/internal/renderer/core"
)

func newTestContext(t *testing.T, content string) *Context {
	t.Helper()
	fs := vfs.NewMemory()
	_ = fs.AddFile("/work/notes.txt", "hello")
	_ = fs.AddFile("/work/src/main.go", "package main")
	return &Context{
		Engine:   engine.New(engine.WithContent(content), engine.WithViewportHeight(20)),
		Menu:     menu.Default(),
		FS:       fs,
		WorkDir:  "/work",
		Geometry: core.Geometry{Width: 80, Height: 24},
	}
}

func keyEv(k key.Key) input.Event {
	return input.KeyEvent(key.NewSpecialEvent(k, key.ModNone))
}

func shiftEv(k key.Key) input.Event {
	return input.KeyEvent(key.NewSpecialEvent(k, key.ModShift))
}

func runeEv(r rune) input.Event {
	return input.KeyEvent(key.NewRuneEvent(r))
}

func clickEv(x, y int, action mouse.Action) input.Event {
	return input.MouseEvent(mouse.Event{X: x, Y: y, Button: mouse.ButtonLeft, Action: action})
}

func wheelEv(b mouse.Button) input.Event {
	return input.MouseEvent(mouse.Event{X: 5, Y: 5, Button: b, Action: mouse.ActionScroll})
}

func newTestManager(t *testing.T, ctx *Context) *Manager {
	t.Helper()
	m := NewDefaultManager(ctx)
	if m.CurrentName() != ModeEdit {
		t.Fatalf("initial mode = %q, want edit", m.CurrentName())
	}
	return m
}

func dispatch(t *testing.T, m *Manager, ctx *Context, evs ...input.Event) *Action {
	t.Helper()
	var last *Action
	for _, ev := range evs {
		act, err := m.Dispatch(ev, ctx)
		if err != nil {
			t.Fatalf("Dispatch(%v) error = %v", ev, err)
		}
		last = act
	}
	return last
}

func TestModeNames(t *testing.T) {
	modes := []Mode{NewEditMode(), NewMenuMode(), NewBrowserMode()}
	want := []struct {
		name, display string
		cursor        bool
	}{
		{ModeEdit, "EDIT", true},
		{ModeMenu, "MENU", false},
		{ModeBrowser, "BROWSER", false},
	}
	for i, mode := range modes {
		if mode.Name() != want[i].name || mode.DisplayName() != want[i].display || mode.CursorVisible() != want[i].cursor {
			t.Errorf("mode %d = %s/%s/%v", i, mode.Name(), mode.DisplayName(), mode.CursorVisible())
		}
	}
}

func TestCommandString(t *testing.T) {
	if CmdSaveAs.String() != "save-as" {
		t.Errorf("CmdSaveAs.String() = %q", CmdSaveAs.String())
	}
	if Command(200).String() != "Command(200)" {
		t.Errorf("unknown command String() = %q", Command(200).String())
	}
}
