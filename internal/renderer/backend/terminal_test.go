package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/te/internal/renderer/core"
)

func newSimTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	term := newTerminal(sim)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(term.Shutdown)
	sim.SetSize(20, 5)
	return term, sim
}

// next skips events until one of type want arrives.
func next(t *testing.T, term *Terminal, want EventType) Event {
	t.Helper()
	for i := 0; i < 10; i++ {
		if ev := term.PollEvent(); ev.Type == want {
			return ev
		}
	}
	t.Fatalf("no event of type %v", want)
	return Event{}
}

func TestTerminalNonBlockingIdle(t *testing.T) {
	term, _ := newSimTerminal(t)
	if ev := term.PollEvent(); ev.Type != EventNone {
		t.Errorf("PollEvent() = %+v, want EventNone", ev)
	}
}

func TestTerminalKeys(t *testing.T) {
	tests := []struct {
		name    string
		key     tcell.Key
		r       rune
		mod     tcell.ModMask
		wantKey Key
		wantMod ModMask
	}{
		{"rune", tcell.KeyRune, 'x', tcell.ModNone, KeyRune, ModNone},
		{"page down", tcell.KeyPgDn, 0, tcell.ModNone, KeyPageDown, ModNone},
		{"shift right", tcell.KeyRight, 0, tcell.ModShift, KeyRight, ModShift},
		{"f2", tcell.KeyF2, 0, tcell.ModNone, KeyF2, ModNone},
		{"ctrl alt up", tcell.KeyUp, 0, tcell.ModCtrl | tcell.ModAlt, KeyUp, ModCtrl | ModAlt},
		{"unbound", tcell.KeyInsert, 0, tcell.ModNone, KeyNone, ModNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term, sim := newSimTerminal(t)
			sim.InjectKey(tt.key, tt.r, tt.mod)
			ev := next(t, term, EventKey)
			if ev.Key != tt.wantKey || ev.Mod != tt.wantMod {
				t.Errorf("event = %+v, want key %v mod %v", ev, tt.wantKey, tt.wantMod)
			}
			if tt.wantKey == KeyRune && ev.Rune != tt.r {
				t.Errorf("Rune = %q, want %q", ev.Rune, tt.r)
			}
		})
	}
}

func TestTerminalMousePressRelease(t *testing.T) {
	term, sim := newSimTerminal(t)

	sim.InjectMouse(3, 2, tcell.Button1, tcell.ModNone)
	ev := next(t, term, EventMouse)
	if ev.MouseX != 3 || ev.MouseY != 2 || ev.MouseButton != MouseLeft || ev.MouseAction != MousePress {
		t.Errorf("press = %+v", ev)
	}

	sim.InjectMouse(4, 2, tcell.Button1, tcell.ModNone)
	if ev := next(t, term, EventMouse); ev.MouseAction != MouseDrag {
		t.Errorf("drag = %+v", ev)
	}

	sim.InjectMouse(4, 2, tcell.ButtonNone, tcell.ModNone)
	if ev := next(t, term, EventMouse); ev.MouseButton != MouseLeft || ev.MouseAction != MouseRelease {
		t.Errorf("release = %+v", ev)
	}
}

func TestTerminalSetCell(t *testing.T) {
	term, sim := newSimTerminal(t)
	style := core.DefaultStyle().WithForeground(core.ColorFromIndex(2)).Bold().Reverse().With(core.AttrUnderline)
	term.SetCell(1, 0, core.NewStyledCell('Q', style))
	term.SetCell(99, 99, core.NewCell('!'))
	term.Show()

	cells, w, _ := sim.GetContents()
	c := cells[1]
	if len(c.Runes) == 0 || c.Runes[0] != 'Q' {
		t.Fatalf("cell runes = %q", c.Runes)
	}
	fg, bg, attrs := c.Style.Decompose()
	if fg != tcell.PaletteColor(2) || bg != tcell.ColorDefault {
		t.Errorf("colors = %v, %v", fg, bg)
	}
	if attrs&tcell.AttrBold == 0 || attrs&tcell.AttrReverse == 0 || attrs&tcell.AttrUnderline == 0 || attrs&tcell.AttrItalic != 0 {
		t.Errorf("attrs = %b", attrs)
	}
	if w != 20 {
		t.Errorf("width = %d, want 20", w)
	}
}

func TestTerminalRGBColor(t *testing.T) {
	want := tcell.NewRGBColor(10, 20, 30)
	if got := tcellColor(core.ColorFromRGB(10, 20, 30)); got != want {
		t.Errorf("tcellColor(rgb) = %v, want %v", got, want)
	}
	if tcellColor(core.ColorDefault) != tcell.ColorDefault {
		t.Error("default color should stay default")
	}
}
