package app

import (
	"strings"

	"github.com/dshills/te/internal/input"
	"github.com/dshills/te/internal/input/key"
)

// readBlocking reads one event with the backend in blocking mode. Resize
// events are redrawn and skipped.
func (app *Application) readBlocking() input.Event {
	app.backend.SetBlocking(true)
	defer app.backend.SetBlocking(false)
	for {
		ev := convertEvent(app.backend.PollEvent())
		if ev.Kind != input.EventResize {
			return ev
		}
		app.render()
	}
}

// promptText reads a line of text on the message row. It returns false if
// the prompt was cancelled.
func (app *Application) promptText(label string) (string, bool) {
	var text []rune
	app.promptActive = true
	defer func() {
		app.promptActive = false
		app.prompt = ""
	}()

	for {
		app.prompt = label + string(text)
		app.render()

		ev := app.readBlocking()
		switch {
		case ev.IsNone():
			return "", false
		case ev.Kind != input.EventKey:
			continue
		}
		k := ev.Key
		switch k.Key {
		case key.KeyEnter:
			return strings.TrimSpace(string(text)), true
		case key.KeyEscape, key.KeyInterrupt:
			return "", false
		case key.KeyBackspace:
			if len(text) > 0 {
				text = text[:len(text)-1]
			}
		case key.KeyRune:
			if k.IsChar() {
				text = append(text, k.Rune)
			}
		}
	}
}

// confirm asks a yes/no question. Only 'y' or 'Y' is yes.
func (app *Application) confirm(label string) bool {
	app.promptActive = true
	app.prompt = label
	defer func() {
		app.promptActive = false
		app.prompt = ""
	}()
	app.render()

	ev := app.readBlocking()
	if ev.Kind != input.EventKey || ev.Key.Key != key.KeyRune {
		return false
	}
	return ev.Key.Rune == 'y' || ev.Key.Rune == 'Y'
}
