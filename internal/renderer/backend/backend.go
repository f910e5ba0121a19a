// Package backend provides the terminal I/O abstraction used by the editor.
//
// A Backend delivers discrete input events and accepts cell writes. Reads are
// non-blocking by default: PollEvent returns an Event of type EventNone when
// nothing is pending. Prompts switch the backend to blocking mode for a single
// read with SetBlocking.
package backend

import "github.com/dshills/te/internal/renderer/core"

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
)

// String returns the event type name.
func (t EventType) String() string {
	switch t {
	case EventKey:
		return "key"
	case EventMouse:
		return "mouse"
	case EventResize:
		return "resize"
	default:
		return "none"
	}
}

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event fields
	Key  Key
	Rune rune
	Mod  ModMask

	// Mouse event fields
	MouseX, MouseY int
	MouseButton    MouseButton
	MouseAction    MouseAction

	// Resize event fields
	Width, Height int
}

// Key represents a keyboard key.
type Key int

// Key constants for special keys.
const (
	KeyNone Key = iota
	KeyRune     // Printable character (use Rune field)
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyCtrlC
)

// ModMask represents modifier key state.
type ModMask int

const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// MouseButton identifies the button involved in a mouse event.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
)

// MouseAction is the button-state transition a mouse event represents.
type MouseAction int

const (
	MouseMotion MouseAction = iota
	MousePress
	MouseDrag
	MouseRelease
	MouseWheel
)

// String returns the action name.
func (a MouseAction) String() string {
	switch a {
	case MousePress:
		return "press"
	case MouseDrag:
		return "drag"
	case MouseRelease:
		return "release"
	case MouseWheel:
		return "wheel"
	default:
		return "motion"
	}
}

// Backend is the terminal collaborator. Cell writes outside the current
// size are ignored.
type Backend interface {
	// Init acquires the terminal.
	Init() error

	// Shutdown restores the terminal.
	Shutdown()

	// Size returns the terminal size in cells.
	Size() (width, height int)

	// Colors returns the number of colors the terminal supports.
	Colors() int

	// SetCell writes one cell. Writes outside the screen are dropped.
	SetCell(x, y int, cell core.Cell)

	// Show flushes pending cell writes to the terminal.
	Show()

	ShowCursor(x, y int)
	HideCursor()

	// PollEvent returns the next event. In non-blocking mode it returns
	// an EventNone event when nothing is pending.
	PollEvent() Event

	// SetBlocking switches PollEvent between blocking and non-blocking reads.
	SetBlocking(blocking bool)
}
