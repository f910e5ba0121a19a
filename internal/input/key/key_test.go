package key

import "testing"

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyEscape, "Escape"},
		{KeyF1, "F1"},
		{KeyF12, "F12"},
		{KeyPageDown, "PageDown"},
	}
	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestKeyDelta(t *testing.T) {
	if dy, dx := KeyUp.Delta(); dy != -1 || dx != 0 {
		t.Errorf("KeyUp.Delta() = (%d, %d)", dy, dx)
	}
	if dy, dx := KeyRight.Delta(); dy != 0 || dx != 1 {
		t.Errorf("KeyRight.Delta() = (%d, %d)", dy, dx)
	}
	if dy, dx := KeyEnter.Delta(); dy != 0 || dx != 0 {
		t.Errorf("KeyEnter.Delta() = (%d, %d)", dy, dx)
	}
}

func TestEventIsChar(t *testing.T) {
	if !NewRuneEvent('x').IsChar() {
		t.Error("'x' should be a char")
	}
	if NewRuneEvent('\x01').IsChar() {
		t.Error("control rune should not be a char")
	}
	ctrl := Event{Key: KeyRune, Rune: 's', Modifiers: ModCtrl}
	if ctrl.IsChar() {
		t.Error("Ctrl+s should not be a char")
	}
	shifted := Event{Key: KeyRune, Rune: 'S', Modifiers: ModShift}
	if !shifted.IsChar() {
		t.Error("Shift+S should be a char")
	}
}

func TestEventIsShiftArrow(t *testing.T) {
	if !NewSpecialEvent(KeyLeft, ModShift).IsShiftArrow() {
		t.Error("Shift+Left should be a shift arrow")
	}
	if NewSpecialEvent(KeyLeft, ModNone).IsShiftArrow() {
		t.Error("Left should not be a shift arrow")
	}
	if NewSpecialEvent(KeyEnter, ModShift).IsShiftArrow() {
		t.Error("Shift+Enter should not be a shift arrow")
	}
}

func TestEventString(t *testing.T) {
	if got := NewSpecialEvent(KeyUp, ModShift).String(); got != "Shift+Up" {
		t.Errorf("String() = %q", got)
	}
	if got := NewRuneEvent('q').String(); got != "q" {
		t.Errorf("String() = %q", got)
	}
}
