package input

import (
	"fmt"

	"github.com/dshills/te/internal/input/key"
	"github.com/dshills/te/internal/input/mouse"
)

// EventKind identifies which field of an Event is set.
type EventKind uint8

const (
	// EventNone means no input arrived this tick.
	EventNone EventKind = iota
	// EventKey is a key press.
	EventKey
	// EventMouse is a pointer event.
	EventMouse
	// EventResize is a terminal size change.
	EventResize
)

// String returns a string representation of the kind.
func (k EventKind) String() string {
	switch k {
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

// Event is one input event.
type Event struct {
	Kind  EventKind
	Key   key.Event
	Mouse mouse.Event

	// Width and Height are set for EventResize.
	Width, Height int
}

// None is the no-input sentinel.
var None = Event{Kind: EventNone}

// KeyEvent wraps a key event.
func KeyEvent(e key.Event) Event {
	return Event{Kind: EventKey, Key: e}
}

// MouseEvent wraps a pointer event.
func MouseEvent(e mouse.Event) Event {
	return Event{Kind: EventMouse, Mouse: e}
}

// ResizeEvent creates a resize event.
func ResizeEvent(width, height int) Event {
	return Event{Kind: EventResize, Width: width, Height: height}
}

// IsNone returns true for the no-input sentinel.
func (e Event) IsNone() bool {
	return e.Kind == EventNone
}

// IsKey returns true if e is a press of k.
func (e Event) IsKey(k key.Key) bool {
	return e.Kind == EventKey && e.Key.Key == k
}

// String returns a debug representation.
func (e Event) String() string {
	switch e.Kind {
	case EventKey:
		return e.Key.String()
	case EventMouse:
		return e.Mouse.String()
	case EventResize:
		return fmt.Sprintf("resize %dx%d", e.Width, e.Height)
	default:
		return "none"
	}
}
