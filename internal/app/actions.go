package app

import (
	"context"
	"fmt"

	"github.com/dshills/te/internal/input/menu"
	"github.com/dshills/te/internal/input/mode"
)

const (
	aboutText = "ABOUT: TE (Text Editor) Version 7 - An evolving text editor. It may be basic, but it's mine!"
	poemDone  = "Poem written! Your creative block has been resolved."
)

var coffeeMessages = []string{
	"Brewing coffee... *coffee sounds* Perfect!",
	"Coffee break initiated. Productivity temporarily suspended.",
	"*sip* Ah, that's the good stuff. Back to work!",
	"Error: Coffee cup empty. I think you've had enough.",
	"Coffee_Maker.exe has stopped working. Please try again.",
}

var poem = []string{
	"# A Poem by Your Text Editor",
	"",
	"Roses are red,",
	"Violets are blue,",
	"I'm a text editor,",
	"And I'm writing for you!",
	"",
	"# End of automated creativity",
}

// execute runs the command an action names. Only a quit returns an error.
func (app *Application) execute(ctx context.Context, act *mode.Action) error {
	switch act.Command {
	case mode.CmdNone:
	case mode.CmdQuit:
		reason := act.Message
		if reason == "" {
			reason = "escape sequence"
		}
		app.logger.Info("quit: %s", reason)
		return ErrQuit
	case mode.CmdOpen:
		app.switchMode(mode.ModeBrowser)
		app.message = "Opening file browser..."
	case mode.CmdSave:
		app.save(ctx, false)
	case mode.CmdSaveAs:
		app.save(ctx, true)
	case mode.CmdNew:
		app.engine.NewDocument()
		app.retokenize()
		app.message = "New file created."
	case mode.CmdNextTheme:
		app.message = fmt.Sprintf("Theme changed to %s", app.nextTheme())
	case mode.CmdToggleLineNumbers:
		app.toggleLineNumbers()
	case mode.CmdLoad:
		app.load(ctx, act.Path)
	case mode.CmdMenuItem:
		return app.runMenuItem(ctx, act.Item)
	default:
		app.logger.Warn("unhandled command %s", act.Command)
	}
	return nil
}

func (app *Application) toggleLineNumbers() {
	if app.gutter.Toggle() {
		app.message = "Line numbers turned on."
	} else {
		app.message = "Line numbers turned off."
	}
	app.syncGeometry()
}

// runMenuItem resolves a menu entry. The menu is already closed.
func (app *Application) runMenuItem(ctx context.Context, item menu.Item) error {
	app.logger.WithComponent("menu").Debug("selected %s", item)
	switch item.Menu {
	case menu.File:
		switch item.Name {
		case menu.ItemNew:
			return app.execute(ctx, &mode.Action{Command: mode.CmdNew})
		case menu.ItemOpen:
			return app.execute(ctx, &mode.Action{Command: mode.CmdOpen})
		case menu.ItemSave:
			return app.execute(ctx, &mode.Action{Command: mode.CmdSave})
		case menu.ItemSaveAs:
			return app.execute(ctx, &mode.Action{Command: mode.CmdSaveAs})
		case menu.ItemExit:
			return app.execute(ctx, &mode.Action{Command: mode.CmdQuit, Message: "menu exit"})
		}
	case menu.Edit:
		app.message = fmt.Sprintf("Edit:%s not implemented yet", item.Name)
	case menu.View:
		switch item.Name {
		case menu.ItemLineNum:
			return app.execute(ctx, &mode.Action{Command: mode.CmdToggleLineNumbers})
		case menu.ItemTheme:
			return app.execute(ctx, &mode.Action{Command: mode.CmdNextTheme})
		}
	case menu.Help:
		app.message = aboutText
	case menu.Fun:
		app.runFun(item.Name)
	}
	return nil
}

func (app *Application) runFun(name string) {
	switch name {
	case menu.ItemPrinter:
		app.message = "Printing to the void... *printer noises* Job completed successfully!"
	case menu.ItemGame:
		app.message = "I'll see if I can add a game here on the next version!"
	case menu.ItemCoffee:
		app.message = coffeeMessages[app.pick(len(coffeeMessages))]
	case menu.ItemFeed:
		app.message = "Send a message to alby13 on Github or X"
	case menu.ItemProcras:
		app.message = "Procrastinating... I'll finish this later. Maybe tomorrow."
	case menu.ItemWrite:
		app.engine.ReplaceLine(poem)
		app.message = poemDone
	}
}
