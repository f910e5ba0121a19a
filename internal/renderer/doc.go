// Package renderer provides the display layer for the te editor.
//
// Rendering is split in two. Compose is a pure function from a Scene (the
// document, cursor, selection, viewport, mode and chrome text) to a Frame,
// an abstract grid of styled cells. Blit copies a Frame to a backend. Only
// Blit has side effects, so layout and styling are tested without a
// terminal.
//
// Architecture:
//
//	┌─────────────────────────────────────────┐
//	│        Renderer (Compose + Blit)        │
//	├─────────────────────────────────────────┤
//	│ Highlight │ Gutter │ Statusline │ Menu  │
//	│ StyleTable│        │            │Browser│
//	├─────────────────────────────────────────┤
//	│           Backend Abstraction           │
//	├─────────────────────────────────────────┤
//	│    Terminal (tcell) │ NullBackend       │
//	└─────────────────────────────────────────┘
//
// Frame layout, top to bottom: the menu bar, the document rows, the status
// line, the message line and the help line. In browser mode the file browser
// window replaces the document rows.
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	r := renderer.New(term)
//	err := r.Render(scene)
package renderer
