package backend

import (
	"github.com/gdamore/tcell/v2"
	"github.com/gdamore/tcell/v2/encoding"

	"github.com/dshills/te/internal/renderer/core"
)

// Terminal is the tcell Backend. It is driven from the control loop only.
type Terminal struct {
	screen   tcell.Screen
	blocking bool
	// held is the button mask of the previous mouse event. Press, drag and
	// release are derived from how it changes.
	held tcell.ButtonMask
}

// NewTerminal opens the controlling terminal.
func NewTerminal() (*Terminal, error) {
	encoding.Register()
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return newTerminal(screen), nil
}

func newTerminal(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

var _ Backend = (*Terminal)(nil)

func (t *Terminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnableMouse(tcell.MouseButtonEvents, tcell.MouseDragEvents)
	t.screen.SetStyle(tcell.StyleDefault)
	return nil
}

func (t *Terminal) Shutdown() {
	t.screen.DisableMouse()
	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) { return t.screen.Size() }

func (t *Terminal) Colors() int { return t.screen.Colors() }

func (t *Terminal) SetCell(x, y int, cell core.Cell) {
	t.screen.SetContent(x, y, cell.Rune, nil, tcellStyle(cell.Style))
}

func (t *Terminal) Show() { t.screen.Show() }

func (t *Terminal) ShowCursor(x, y int) { t.screen.ShowCursor(x, y) }

func (t *Terminal) HideCursor() { t.screen.HideCursor() }

func (t *Terminal) SetBlocking(blocking bool) { t.blocking = blocking }

func (t *Terminal) PollEvent() Event {
	if !t.blocking && !t.screen.HasPendingEvent() {
		return Event{Type: EventNone}
	}
	return t.translate(t.screen.PollEvent())
}

var styleAttrs = []struct {
	from core.Attribute
	to   tcell.AttrMask
}{
	{core.AttrBold, tcell.AttrBold},
	{core.AttrDim, tcell.AttrDim},
	{core.AttrItalic, tcell.AttrItalic},
	{core.AttrReverse, tcell.AttrReverse},
}

func tcellStyle(s core.Style) tcell.Style {
	var mask tcell.AttrMask
	for _, a := range styleAttrs {
		if s.Attributes.Has(a.from) {
			mask |= a.to
		}
	}
	style := tcell.StyleDefault.
		Foreground(tcellColor(s.Foreground)).
		Background(tcellColor(s.Background)).
		Attributes(mask)
	// Underline also carries a line style, so it is not a plain mask bit.
	if s.Attributes.Has(core.AttrUnderline) {
		style = style.Underline(true)
	}
	return style
}

func tcellColor(c core.Color) tcell.Color {
	switch {
	case c.IsDefault():
		return tcell.ColorDefault
	case c.Indexed:
		return tcell.PaletteColor(int(c.R))
	default:
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
}

func (t *Terminal) translate(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return Event{Type: EventKey, Key: keys[e.Key()], Rune: e.Rune(), Mod: modMask(e.Modifiers())}
	case *tcell.EventMouse:
		x, y := e.Position()
		cur := e.Buttons()
		button, action := mouseTransition(t.held, cur)
		t.held = cur & buttonsHeld
		return Event{
			Type:        EventMouse,
			MouseX:      x,
			MouseY:      y,
			MouseButton: button,
			MouseAction: action,
			Mod:         modMask(e.Modifiers()),
		}
	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}
	}
	return Event{Type: EventNone}
}

const buttonsHeld = tcell.Button1 | tcell.Button2 | tcell.Button3

// mouseTransition derives the button and action from the previous and
// current button masks. The wheel is reported on its own.
func mouseTransition(prev, cur tcell.ButtonMask) (MouseButton, MouseAction) {
	switch {
	case cur&tcell.WheelUp != 0:
		return MouseWheelUp, MouseWheel
	case cur&tcell.WheelDown != 0:
		return MouseWheelDown, MouseWheel
	}
	held := cur & buttonsHeld
	switch {
	case held != 0 && prev == 0:
		return mouseButton(held), MousePress
	case held != 0:
		return mouseButton(held), MouseDrag
	case prev != 0:
		return mouseButton(prev), MouseRelease
	}
	return MouseNone, MouseMotion
}

func mouseButton(b tcell.ButtonMask) MouseButton {
	switch {
	case b&tcell.Button1 != 0:
		return MouseLeft
	case b&tcell.Button2 != 0:
		return MouseMiddle
	case b&tcell.Button3 != 0:
		return MouseRight
	}
	return MouseNone
}

// keys maps the tcell keys the editor binds. Anything else reads as KeyNone.
var keys = map[tcell.Key]Key{
	tcell.KeyRune:       KeyRune,
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyLF:         KeyEnter,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyPgUp:       KeyPageUp,
	tcell.KeyPgDn:       KeyPageDown,
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyF1:         KeyF1,
	tcell.KeyF2:         KeyF2,
	tcell.KeyF3:         KeyF3,
	tcell.KeyF4:         KeyF4,
	tcell.KeyF5:         KeyF5,
	tcell.KeyF6:         KeyF6,
	tcell.KeyF7:         KeyF7,
	tcell.KeyF8:         KeyF8,
	tcell.KeyF9:         KeyF9,
	tcell.KeyF10:        KeyF10,
	tcell.KeyF11:        KeyF11,
	tcell.KeyF12:        KeyF12,
	tcell.KeyCtrlC:      KeyCtrlC,
}

var mods = []struct {
	from tcell.ModMask
	to   ModMask
}{
	{tcell.ModShift, ModShift},
	{tcell.ModCtrl, ModCtrl},
	{tcell.ModAlt, ModAlt},
	{tcell.ModMeta, ModMeta},
}

func modMask(m tcell.ModMask) ModMask {
	var out ModMask
	for _, p := range mods {
		if m&p.from != 0 {
			out |= p.to
		}
	}
	return out
}
