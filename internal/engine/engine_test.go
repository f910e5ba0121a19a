package engine

import (
	"reflect"
	"testing"

	"github.com/dshills/te/internal/engine/cursor"
)

func assertCursorValid(t *testing.T, e *Engine) {
	t.Helper()
	if e.LineCount() < 1 {
		t.Fatal("document has no lines")
	}
	if !cursor.Valid(e.buf, e.Cursor()) {
		t.Fatalf("cursor %v outside document %q", e.Cursor(), e.Lines())
	}
}

func TestEngineEditingScenario(t *testing.T) {
	e := New()

	e.InsertChar('a')
	e.InsertChar('b')
	if !reflect.DeepEqual(e.Lines(), []string{"ab"}) || e.Cursor() != (Point{Line: 0, Column: 2}) {
		t.Fatalf("after typing: %q %v", e.Lines(), e.Cursor())
	}

	e.InsertNewline()
	if !reflect.DeepEqual(e.Lines(), []string{"ab", ""}) || e.Cursor() != (Point{Line: 1, Column: 0}) {
		t.Fatalf("after newline: %q %v", e.Lines(), e.Cursor())
	}

	e.Backspace()
	if !reflect.DeepEqual(e.Lines(), []string{"ab"}) || e.Cursor() != (Point{Line: 0, Column: 2}) {
		t.Fatalf("after backspace: %q %v", e.Lines(), e.Cursor())
	}
}

func TestEngineIdempotentEdges(t *testing.T) {
	e := New(WithContent("x\ny"))

	e.Backspace()
	if e.Text() != "x\ny" || e.Cursor() != (Point{}) {
		t.Errorf("backspace at origin changed state: %q %v", e.Text(), e.Cursor())
	}

	e.Move(1, 1)
	e.DeleteForward()
	if e.Text() != "x\ny" || e.Cursor() != (Point{Line: 1, Column: 1}) {
		t.Errorf("delete at end changed state: %q %v", e.Text(), e.Cursor())
	}
}

func TestEngineCursorInvariant(t *testing.T) {
	e := New(WithContent("first line\nsecond\n\nlast"), WithViewportHeight(2))
	ops := []func(){
		func() { e.Move(1, 40) },
		func() { e.DeleteForward() },
		func() { e.Backspace() },
		func() { e.Move(-5, -5) },
		func() { e.DeleteForward() },
		func() { e.InsertNewline() },
		func() { e.ExtendSelection(3, 2) },
		func() { e.Page(1) },
		func() { e.Page(-1) },
		func() { e.Wheel(1) },
		func() { e.Backspace() },
		func() { e.LineEnd() },
		func() { e.ReplaceLine([]string{"a", "bb"}) },
		func() { e.PointerPress(Point{Line: 99, Column: 99}) },
		func() { e.PointerDrag(Point{Line: -3, Column: 2}) },
		func() { e.PointerRelease(Point{Line: 1, Column: 0}) },
	}
	for i, op := range ops {
		op()
		assertCursorValid(t, e)
		if !e.view.IsVisible(e.Cursor().Line) {
			t.Fatalf("step %d: cursor line %d outside viewport top=%d", i, e.Cursor().Line, e.TopLine())
		}
	}
}

func TestEngineSelectionLifecycle(t *testing.T) {
	e := New(WithContent("hello\nworld"))

	e.ExtendSelection(0, 2)
	e.ExtendSelection(1, 0)
	sel := e.Selection()
	if sel == nil {
		t.Fatal("expected a selection")
	}
	if sel.Anchor != (Point{Line: 0, Column: 0}) || sel.Active != (Point{Line: 1, Column: 2}) {
		t.Errorf("selection = %v", sel)
	}

	e.Move(0, 1)
	if e.HasSelection() {
		t.Error("plain movement should clear the selection")
	}

	e.ExtendSelection(0, -1)
	e.InsertChar('!')
	if e.HasSelection() {
		t.Error("typing should clear the selection")
	}
}

func TestEnginePointerDrag(t *testing.T) {
	e := New(WithContent("abcdef\nghijkl"))

	e.PointerPress(Point{Line: 0, Column: 1})
	if e.HasSelection() {
		t.Error("press alone should not select")
	}
	e.PointerDrag(Point{Line: 1, Column: 3})
	e.PointerRelease(Point{Line: 1, Column: 3})

	sel := e.Selection()
	if sel == nil || sel.Anchor != (Point{Line: 0, Column: 1}) || sel.Active != (Point{Line: 1, Column: 3}) {
		t.Fatalf("selection = %v", sel)
	}

	// A click without movement clears it.
	e.PointerPress(Point{Line: 0, Column: 4})
	e.PointerRelease(Point{Line: 0, Column: 4})
	if e.HasSelection() {
		t.Error("plain click should leave no selection")
	}
	if e.Cursor() != (Point{Line: 0, Column: 4}) {
		t.Errorf("cursor = %v, want (0:4)", e.Cursor())
	}
}

func TestEnginePageDoesNotChaseCursor(t *testing.T) {
	lines := make([]string, 50)
	e := New(WithLines(lines), WithViewportHeight(10))

	e.Move(5, 0)
	e.Page(1)
	if e.TopLine() != 10 {
		t.Errorf("TopLine() = %d, want 10", e.TopLine())
	}
	if e.Cursor().Line != 10 {
		t.Errorf("cursor line = %d, want 10 (clamped into window)", e.Cursor().Line)
	}

	// Scrolling back keeps the cursor where it is when still visible.
	e.Move(5, 0)
	e.Wheel(-1)
	if e.TopLine() != 7 {
		t.Errorf("TopLine() = %d, want 7", e.TopLine())
	}
	if e.Cursor().Line != 15 {
		t.Errorf("cursor line = %d, want 15", e.Cursor().Line)
	}
}

func TestEngineFollowOnMove(t *testing.T) {
	lines := make([]string, 30)
	e := New(WithLines(lines), WithViewportHeight(5))
	e.Move(12, 0)
	if e.TopLine() != 8 {
		t.Errorf("TopLine() = %d, want 8", e.TopLine())
	}
	e.Move(-10, 0)
	if e.TopLine() != 2 {
		t.Errorf("TopLine() = %d, want 2", e.TopLine())
	}
}

func TestEngineResetAndNew(t *testing.T) {
	e := New(WithContent("a\nb\nc"), WithViewportHeight(1))
	e.Move(2, 1)
	e.Reset([]string{"x"}, "/tmp/x.txt")
	if e.Cursor() != (Point{}) || e.TopLine() != 0 {
		t.Errorf("Reset should move to origin, got %v top=%d", e.Cursor(), e.TopLine())
	}
	if e.Path() != "/tmp/x.txt" {
		t.Errorf("Path() = %q", e.Path())
	}

	e.NewDocument()
	if e.HasPath() || e.Text() != "" || e.LineCount() != 1 {
		t.Errorf("NewDocument left %q path=%q", e.Lines(), e.Path())
	}
}

func TestEnginePositionAt(t *testing.T) {
	lines := []string{"zero", "one", "two", "three"}
	e := New(WithLines(lines), WithViewportHeight(2))
	e.Move(3, 0)
	if e.TopLine() != 2 {
		t.Fatalf("TopLine() = %d, want 2", e.TopLine())
	}
	if p := e.PositionAt(1, 10); p != (Point{Line: 3, Column: 5}) {
		t.Errorf("PositionAt(1, 10) = %v, want (3:5)", p)
	}
	if p := e.PositionAt(5, 0); p != (Point{Line: 3, Column: 0}) {
		t.Errorf("PositionAt(5, 0) = %v, want (3:0)", p)
	}
}
