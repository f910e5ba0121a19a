// Package engine provides the editing session core of te.
//
// The engine combines the document buffer, the cursor, the optional
// selection, the viewport and the file association into one value owned by
// the control loop. Every operation leaves the cursor inside the document
// and the cursor line inside the viewport, except explicit scrolling, which
// moves the cursor only when it would leave the window.
//
// # Basic Usage
//
//	e := engine.New(engine.WithViewportHeight(20))
//	e.InsertChar('a')
//	e.InsertNewline()
//	e.Backspace()
//	fmt.Println(e.Cursor()) // (0:1)
//
// # Selections
//
// Shift movement starts or extends a selection anchored at the cursor
// position where it began. Any other edit or plain movement clears it.
// Pointer drags build a selection from the press position to the
// current drag position.
package engine
