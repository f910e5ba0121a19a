package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/te/internal/renderer/core"
)

func TestNullBackendInit(t *testing.T) {
	b := NewNullBackend(80, 24)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	w, h := b.Size()
	if w != 80 || h != 24 {
		t.Errorf("expected size (80, 24), got (%d, %d)", w, h)
	}
}

func TestNullBackendSetGetCell(t *testing.T) {
	b := NewNullBackend(10, 5)

	cell := core.NewStyledCell('X', core.DefaultStyle().Bold())
	b.SetCell(3, 2, cell)

	if got := b.Cell(3, 2); !got.Equals(cell) {
		t.Errorf("cell mismatch: expected %+v, got %+v", cell, got)
	}

	// Out of bounds writes are ignored
	b.SetCell(-1, 0, cell)
	b.SetCell(100, 0, cell)
	if got := b.Cell(-1, 0); !got.Equals(core.EmptyCell()) {
		t.Error("out of bounds should return empty cell")
	}
}

func TestNullBackendNonBlockingSentinel(t *testing.T) {
	b := NewNullBackend(10, 5)
	if ev := b.PollEvent(); ev.Type != EventNone {
		t.Errorf("PollEvent() type = %v, want none", ev.Type)
	}

	b.QueueEvent(RuneEvent('a'), KeyEvent(KeyEnter, ModNone))
	if ev := b.PollEvent(); ev.Type != EventKey || ev.Rune != 'a' {
		t.Errorf("unexpected first event %+v", ev)
	}
	if ev := b.PollEvent(); ev.Key != KeyEnter {
		t.Errorf("unexpected second event %+v", ev)
	}
	if b.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", b.Pending())
	}
}

func TestNullBackendBlockingReads(t *testing.T) {
	b := NewNullBackend(10, 5)
	b.QueueEvent(RuneEvent('y'))

	b.SetBlocking(true)
	if !b.Blocking() {
		t.Fatal("expected blocking mode")
	}
	b.PollEvent()
	b.SetBlocking(false)
	b.PollEvent()

	if b.BlockingReads() != 1 {
		t.Errorf("BlockingReads() = %d, want 1", b.BlockingReads())
	}
}

func TestNullBackendResizeEvent(t *testing.T) {
	b := NewNullBackend(10, 5)
	b.QueueEvent(ResizeEvent(30, 12))
	b.PollEvent()

	w, h := b.Size()
	if w != 30 || h != 12 {
		t.Errorf("Size() = (%d, %d), want (30, 12)", w, h)
	}
}

func TestNullBackendRow(t *testing.T) {
	b := NewNullBackend(5, 2)
	for i, r := range "hi" {
		b.SetCell(i, 1, core.NewCell(r))
	}
	if got := b.Row(1); got != "hi   " {
		t.Errorf("Row(1) = %q, want %q", got, "hi   ")
	}
}

func TestMouseTransition(t *testing.T) {
	tests := []struct {
		name       string
		prev, cur  tcell.ButtonMask
		wantButton MouseButton
		wantAction MouseAction
	}{
		{"press", tcell.ButtonNone, tcell.Button1, MouseLeft, MousePress},
		{"drag", tcell.Button1, tcell.Button1, MouseLeft, MouseDrag},
		{"release", tcell.Button1, tcell.ButtonNone, MouseLeft, MouseRelease},
		{"wheel up", tcell.ButtonNone, tcell.WheelUp, MouseWheelUp, MouseWheel},
		{"wheel down", tcell.ButtonNone, tcell.WheelDown, MouseWheelDown, MouseWheel},
		{"motion", tcell.ButtonNone, tcell.ButtonNone, MouseNone, MouseMotion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			button, action := mouseTransition(tt.prev, tt.cur)
			if button != tt.wantButton || action != tt.wantAction {
				t.Errorf("mouseTransition() = (%v, %v), want (%v, %v)", button, action, tt.wantButton, tt.wantAction)
			}
		})
	}
}
