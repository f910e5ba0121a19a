package config

import "time"

// EditorConfig provides type-safe access to editor settings.
type EditorConfig struct {
	// LineNumbers shows the line number gutter at startup.
	LineNumbers bool

	// GutterWidth is the width of the line number gutter, including the
	// separating space.
	GutterWidth int

	// WheelLines is the number of lines one wheel step scrolls.
	WheelLines int

	// QuitEscapes is the run of Escape presses in edit mode that quits.
	QuitEscapes int
}

// UIConfig provides type-safe access to UI settings.
type UIConfig struct {
	// Theme is the highlighting theme name.
	Theme string

	// StyleCapacity bounds the number of distinct styles one theme may
	// register.
	StyleCapacity int

	// TickInterval is the sleep between event loop iterations.
	TickInterval time.Duration
}

// FilesConfig provides type-safe access to file handling settings.
type FilesConfig struct {
	// LegacyEncoding names the fallback encoding for non-UTF-8 files.
	LegacyEncoding string

	// WorkDir is where the file browser starts for unsaved documents.
	// Empty means the process working directory.
	WorkDir string
}
