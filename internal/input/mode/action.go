package mode

import (
	"fmt"

	"github.com/dshills/te/internal/input/menu"
)

// Command is work a mode hands back to the application.
type Command uint8

const (
	// CmdNone requests nothing.
	CmdNone Command = iota
	// CmdOpen starts picking a file.
	CmdOpen
	// CmdSave saves to the associated file, prompting if there is none.
	CmdSave
	// CmdSaveAs always prompts for a path.
	CmdSaveAs
	// CmdNew starts an empty document.
	CmdNew
	// CmdQuit ends the session.
	CmdQuit
	// CmdNextTheme switches to the next highlighting theme.
	CmdNextTheme
	// CmdToggleLineNumbers shows or hides the gutter.
	CmdToggleLineNumbers
	// CmdLoad loads Action.Path.
	CmdLoad
	// CmdMenuItem runs Action.Item.
	CmdMenuItem
)

var commandNames = map[Command]string{
	CmdNone:              "none",
	CmdOpen:              "open",
	CmdSave:              "save",
	CmdSaveAs:            "save-as",
	CmdNew:               "new",
	CmdQuit:              "quit",
	CmdNextTheme:         "next-theme",
	CmdToggleLineNumbers: "toggle-line-numbers",
	CmdLoad:              "load",
	CmdMenuItem:          "menu-item",
}

// String returns the command name.
func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Command(%d)", c)
}

// Action is the result of handling an event.
type Action struct {
	Command Command

	// SwitchTo names the mode to switch to, if any.
	SwitchTo string

	// Path is the file for CmdLoad.
	Path string

	// Item is the menu entry for CmdMenuItem.
	Item menu.Item

	// Message replaces the status message when non-empty.
	Message string
}

// run returns an action for cmd.
func run(cmd Command) *Action {
	return &Action{Command: cmd}
}

// switchTo returns an action that changes mode and shows msg.
func switchTo(name, msg string) *Action {
	return &Action{SwitchTo: name, Message: msg}
}
