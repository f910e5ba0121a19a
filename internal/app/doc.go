// Package app runs the te editing session.
//
// An Application owns every piece of session state: the engine (document,
// cursor, selection, viewport and file association), the menu bar, the mode
// manager, the highlighting theme and the status message. Nothing else
// mutates that state.
//
// # Control Loop
//
// Run drives a cooperative single-threaded loop. Each tick polls the backend
// for at most one event without blocking, hands it to the current mode,
// executes the resulting command, draws exactly one frame and sleeps for the
// configured tick interval.
//
// File loads and saves run synchronously inside the tick. Prompts switch the
// backend to blocking reads and always restore non-blocking reads before
// returning.
//
// Run returns ErrQuit after a quit request, or the context error when the
// context is cancelled.
package app
