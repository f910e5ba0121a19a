// Package key defines normalized keyboard events.
//
//   - Key: identifies a keyboard key (special keys, function keys, or runes)
//   - Modifier: the modifier keys held (Ctrl, Alt, Shift, Meta)
//   - Event: a single key press
//
// Shifted arrows arrive as the arrow Key with ModShift set and drive
// selection in the edit mode.
package key
