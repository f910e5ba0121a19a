// Package mode provides the modal state machine of the editor.
//
// Exactly one of three modes is active at a time:
//   - Edit: text entry, cursor movement, selection and scrolling
//   - Menu: menu bar navigation
//   - Browser: picking a file to open
//
// # Dispatch
//
// Every input event goes to the current mode's HandleEvent and to no other
// mode. A handler mutates the session state it is given through Context and
// may return an Action that names a command for the application or a mode
// to switch to, with an optional status message.
//
// # Mode Lifecycle
//
//	┌─────────┐    Enter()    ┌─────────┐
//	│ Mode A  │ ───────────▶ │ Mode B  │
//	└─────────┘              └─────────┘
//	     │                        │
//	     │  Exit()                │
//	     ◀────────────────────────┘
//
// When switching modes:
// 1. Current mode's Exit() is called
// 2. The selection is cleared
// 3. New mode's Enter() is called
// 4. Mode change callbacks are notified
//
// The Manager also counts consecutive Escape presses in Edit mode. The
// configured run length (three by default) asks the application to quit;
// any other input resets the count.
package mode
