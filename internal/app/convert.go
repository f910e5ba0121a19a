package app

import (
	"github.com/dshills/te/internal/input"
	"github.com/dshills/te/internal/input/key"
	"github.com/dshills/te/internal/input/mouse"
	"github.com/dshills/te/internal/renderer/backend"
)

var keyMap = map[backend.Key]key.Key{
	backend.KeyEscape:    key.KeyEscape,
	backend.KeyEnter:     key.KeyEnter,
	backend.KeyTab:       key.KeyTab,
	backend.KeyBackspace: key.KeyBackspace,
	backend.KeyDelete:    key.KeyDelete,
	backend.KeyHome:      key.KeyHome,
	backend.KeyEnd:       key.KeyEnd,
	backend.KeyPageUp:    key.KeyPageUp,
	backend.KeyPageDown:  key.KeyPageDown,
	backend.KeyUp:        key.KeyUp,
	backend.KeyDown:      key.KeyDown,
	backend.KeyLeft:      key.KeyLeft,
	backend.KeyRight:     key.KeyRight,
	backend.KeyF1:        key.KeyF1,
	backend.KeyF2:        key.KeyF2,
	backend.KeyF3:        key.KeyF3,
	backend.KeyF4:        key.KeyF4,
	backend.KeyF5:        key.KeyF5,
	backend.KeyF6:        key.KeyF6,
	backend.KeyF7:        key.KeyF7,
	backend.KeyF8:        key.KeyF8,
	backend.KeyF9:        key.KeyF9,
	backend.KeyF10:       key.KeyF10,
	backend.KeyF11:       key.KeyF11,
	backend.KeyF12:       key.KeyF12,
	backend.KeyCtrlC:     key.KeyInterrupt,
}

var buttonMap = map[backend.MouseButton]mouse.Button{
	backend.MouseLeft:      mouse.ButtonLeft,
	backend.MouseMiddle:    mouse.ButtonMiddle,
	backend.MouseRight:     mouse.ButtonRight,
	backend.MouseWheelUp:   mouse.ButtonScrollUp,
	backend.MouseWheelDown: mouse.ButtonScrollDown,
}

var actionMap = map[backend.MouseAction]mouse.Action{
	backend.MouseMotion:  mouse.ActionMove,
	backend.MousePress:   mouse.ActionPress,
	backend.MouseDrag:    mouse.ActionDrag,
	backend.MouseRelease: mouse.ActionRelease,
	backend.MouseWheel:   mouse.ActionScroll,
}

// convertEvent converts a backend event to an input event.
func convertEvent(ev backend.Event) input.Event {
	switch ev.Type {
	case backend.EventKey:
		return input.KeyEvent(convertKeyEvent(ev))
	case backend.EventMouse:
		return input.MouseEvent(mouse.Event{
			X:         ev.MouseX,
			Y:         ev.MouseY,
			Button:    buttonMap[ev.MouseButton],
			Action:    actionMap[ev.MouseAction],
			Modifiers: convertMods(ev.Mod),
		})
	case backend.EventResize:
		return input.ResizeEvent(ev.Width, ev.Height)
	default:
		return input.None
	}
}

func convertKeyEvent(ev backend.Event) key.Event {
	mods := convertMods(ev.Mod)
	if ev.Key == backend.KeyRune {
		e := key.NewRuneEvent(ev.Rune)
		e.Modifiers = mods
		return e
	}
	k, ok := keyMap[ev.Key]
	if !ok {
		k = key.KeyNone
	}
	return key.NewSpecialEvent(k, mods)
}

func convertMods(m backend.ModMask) key.Modifier {
	mods := key.ModNone
	if m&backend.ModShift != 0 {
		mods |= key.ModShift
	}
	if m&backend.ModCtrl != 0 {
		mods |= key.ModCtrl
	}
	if m&backend.ModAlt != 0 {
		mods |= key.ModAlt
	}
	if m&backend.ModMeta != 0 {
		mods |= key.ModMeta
	}
	return mods
}
