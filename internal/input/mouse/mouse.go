package mouse

import (
	"fmt"

	"github.com/dshills/te/internal/input/key"
)

// Button represents a mouse button.
type Button uint8

const (
	// ButtonNone indicates no button.
	ButtonNone Button = iota
	// ButtonLeft is the primary (left) mouse button.
	ButtonLeft
	// ButtonMiddle is the middle mouse button.
	ButtonMiddle
	// ButtonRight is the secondary (right) mouse button.
	ButtonRight
	// ButtonScrollUp indicates scroll wheel up.
	ButtonScrollUp
	// ButtonScrollDown indicates scroll wheel down.
	ButtonScrollDown
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	case ButtonScrollUp:
		return "scroll-up"
	case ButtonScrollDown:
		return "scroll-down"
	default:
		return "none"
	}
}

// Action is the button-state transition of an event.
type Action uint8

const (
	// ActionMove is pointer motion with no button held.
	ActionMove Action = iota
	// ActionPress is a button going down.
	ActionPress
	// ActionDrag is motion with a button held.
	ActionDrag
	// ActionRelease is a button going up.
	ActionRelease
	// ActionScroll is a wheel step.
	ActionScroll
)

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionPress:
		return "press"
	case ActionDrag:
		return "drag"
	case ActionRelease:
		return "release"
	case ActionScroll:
		return "scroll"
	default:
		return "move"
	}
}

// Event is a pointer event at cell (X, Y).
type Event struct {
	X, Y      int
	Button    Button
	Action    Action
	Modifiers key.Modifier
}

// IsPress returns true for a primary button press.
func (e Event) IsPress() bool {
	return e.Action == ActionPress && e.Button == ButtonLeft
}

// IsScroll returns true for a wheel step.
func (e Event) IsScroll() bool {
	return e.Action == ActionScroll
}

// ScrollDelta returns -1 for wheel up, 1 for wheel down and 0 otherwise.
func (e Event) ScrollDelta() int {
	switch {
	case e.Action != ActionScroll:
		return 0
	case e.Button == ButtonScrollUp:
		return -1
	case e.Button == ButtonScrollDown:
		return 1
	default:
		return 0
	}
}

// String returns a debug representation.
func (e Event) String() string {
	return fmt.Sprintf("mouse %s %s at (%d,%d)", e.Button, e.Action, e.X, e.Y)
}
