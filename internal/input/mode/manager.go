package mode

import (
	"fmt"

	"github.com/dshills/te/internal/input"
	"github.com/dshills/te/internal/input/key"
	"github.com/dshills/te/internal/input/mouse"
)

// DefaultQuitCount is the number of consecutive Escape presses in Edit mode
// that end the session.
const DefaultQuitCount = 3

// Manager manages editor modes and coordinates mode transitions. It is
// owned by the control loop and is not safe for concurrent use.
type Manager struct {
	// modes holds all registered modes by name.
	modes map[string]Mode

	// current is the active mode.
	current Mode

	// escapes counts consecutive Escape presses in Edit mode.
	escapes   int
	quitCount int

	// callbacks are notified on mode changes.
	callbacks []ModeChangeCallback
}

// ModeChangeCallback is called when the mode changes.
type ModeChangeCallback func(from, to Mode)

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithQuitCount sets how many consecutive Escape presses quit.
func WithQuitCount(n int) ManagerOption {
	return func(m *Manager) {
		if n > 0 {
			m.quitCount = n
		}
	}
}

// NewManager creates a new mode manager.
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		modes:     make(map[string]Mode),
		quitCount: DefaultQuitCount,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewDefaultManager creates a manager with the Edit, Menu and Browser modes
// registered and Edit active.
func NewDefaultManager(ctx *Context, opts ...ManagerOption) *Manager {
	m := NewManager(opts...)
	m.Register(NewEditMode())
	m.Register(NewMenuMode())
	m.Register(NewBrowserMode())
	_ = m.SetInitialMode(ModeEdit, ctx)
	return m
}

// Register adds a mode to the manager.
// If a mode with the same name exists, it is replaced.
func (m *Manager) Register(mode Mode) {
	m.modes[mode.Name()] = mode
}

// Get returns a mode by name, or nil if not found.
func (m *Manager) Get(name string) Mode {
	return m.modes[name]
}

// Current returns the current mode.
// Returns nil if no mode is set.
func (m *Manager) Current() Mode {
	return m.current
}

// CurrentName returns the name of the current mode.
// Returns empty string if no mode is set.
func (m *Manager) CurrentName() string {
	if m.current == nil {
		return ""
	}
	return m.current.Name()
}

// IsMode returns true if the current mode matches the given name.
func (m *Manager) IsMode(name string) bool {
	return m.CurrentName() == name
}

// Escapes returns the current run of Escape presses.
func (m *Manager) Escapes() int {
	return m.escapes
}

// SetInitialMode sets the initial mode without calling Exit on anything.
// Should only be called once during initialization.
func (m *Manager) SetInitialMode(name string, ctx *Context) error {
	mode, ok := m.modes[name]
	if !ok {
		return fmt.Errorf("unknown mode: %s", name)
	}
	m.current = mode
	ctx.PreviousMode = ""
	return mode.Enter(ctx)
}

// Switch changes to a different mode.
// Calls Exit() on the current mode, clears the selection and calls Enter()
// on the new mode. Switching to the current mode is a no-op.
func (m *Manager) Switch(name string, ctx *Context) error {
	newMode, ok := m.modes[name]
	if !ok {
		return fmt.Errorf("unknown mode: %s", name)
	}
	oldMode := m.current
	if oldMode == newMode {
		return nil
	}

	if oldMode != nil {
		ctx.NextMode = newMode.Name()
		if err := oldMode.Exit(ctx); err != nil {
			return fmt.Errorf("exit %s: %w", oldMode.Name(), err)
		}
		ctx.PreviousMode = oldMode.Name()
	} else {
		ctx.PreviousMode = ""
	}
	ctx.NextMode = ""

	if ctx.Engine != nil {
		ctx.Engine.ClearSelection()
	}

	if err := newMode.Enter(ctx); err != nil {
		return fmt.Errorf("enter %s: %w", newMode.Name(), err)
	}
	m.current = newMode
	m.escapes = 0

	for _, cb := range m.callbacks {
		if cb != nil {
			cb(oldMode, newMode)
		}
	}
	return nil
}

// OnChange registers a callback for mode changes.
// Returns a function to unregister the callback.
func (m *Manager) OnChange(callback ModeChangeCallback) func() {
	m.callbacks = append(m.callbacks, callback)
	index := len(m.callbacks) - 1

	return func() {
		// Remove callback by setting to nil (preserves indices)
		if index < len(m.callbacks) {
			m.callbacks[index] = nil
		}
	}
}

// Dispatch routes ev to the current mode and applies any mode switch the
// handler asks for. It returns the handler's action, or a quit action once
// the Escape run in Edit mode reaches the quit count.
func (m *Manager) Dispatch(ev input.Event, ctx *Context) (*Action, error) {
	current := m.Current()
	if current == nil || ev.IsNone() {
		return nil, nil
	}

	if ev.IsKey(key.KeyInterrupt) {
		return &Action{Command: CmdQuit, Message: "Interrupted."}, nil
	}
	if m.countEscape(ev, current) {
		return run(CmdQuit), nil
	}

	act := current.HandleEvent(ev, ctx)
	if act != nil && act.SwitchTo != "" {
		if err := m.Switch(act.SwitchTo, ctx); err != nil {
			return act, err
		}
	}
	return act, nil
}

// countEscape updates the Escape run and returns true when it reaches the
// quit count.
func (m *Manager) countEscape(ev input.Event, current Mode) bool {
	if ev.IsKey(key.KeyEscape) && current.Name() == ModeEdit {
		m.escapes++
		if m.escapes >= m.quitCount {
			m.escapes = 0
			return true
		}
		return false
	}
	if resetsEscapes(ev) {
		m.escapes = 0
	}
	return false
}

// resetsEscapes reports whether ev counts as intervening input. Resizes and
// bare pointer motion do not.
func resetsEscapes(ev input.Event) bool {
	switch ev.Kind {
	case input.EventKey:
		return true
	case input.EventMouse:
		return ev.Mouse.Action != mouse.ActionMove
	default:
		return false
	}
}
