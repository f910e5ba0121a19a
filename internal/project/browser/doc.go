// Package browser implements the file browser state.
//
// A Browser lists one directory at a time. Entries are ordered as the
// parent entry (omitted at the file system root), then directories, then
// files, each group sorted by name. A listing failure is reported as a
// single error entry in place of the directories and files.
//
// The browser tracks a selected index and a scroll offset. The number of
// visible rows comes from the window Layout and is pushed in with
// SetVisibleRows before each frame, which keeps the selection on screen.
package browser
