// Package buffer provides the line-oriented document buffer.
//
// A Buffer is an ordered sequence of lines with no embedded terminators.
// It always holds at least one line; an empty document is a single empty
// line. Every mutation takes a Point that the caller has already clamped to
// the buffer with Clamp, and returns the Point where the cursor lands, so
// operations never fail.
//
// Basic usage:
//
//	buf := buffer.NewBuffer()
//	p := buf.InsertChar(buffer.Point{}, 'a')   // ["a"], (0,1)
//	p = buf.SplitLine(p)                       // ["a", ""], (1,0)
//	p = buf.Backspace(p)                       // ["a"], (0,1)
//
// Columns count runes, not bytes or cells.
//
// A Buffer is owned by a single goroutine and is not safe for concurrent use.
package buffer
