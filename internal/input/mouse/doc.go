// Package mouse defines normalized pointer events.
//
// An Event carries the cell position, the button and the button-state
// transition (press, drag, release or wheel) the terminal reported.
package mouse
