package menu

// Menu titles.
const (
	File = "File"
	Edit = "Edit"
	View = "Menu"
	Help = "Help"
	Fun  = "Fun"
)

// Item names.
const (
	ItemNew     = "New"
	ItemOpen    = "Open"
	ItemSave    = "Save"
	ItemSaveAs  = "Save as"
	ItemExit    = "Exit"
	ItemCut     = "Cut"
	ItemCopy    = "Copy"
	ItemPaste   = "Paste"
	ItemLineNum = "Toggle Line Numbers"
	ItemTheme   = "Change Theme"
	ItemManual  = "User Manual"
	ItemAbout   = "About"
	ItemPrinter = "Print to Imaginary Printer"
	ItemGame    = "Play a Game"
	ItemCoffee  = "Coffee Break Simulator"
	ItemFeed    = "Provide Feedback"
	ItemProcras = "Procrastination NOW!"
	ItemWrite   = "Write it for me"
)

// Default returns the editor's menu bar.
func Default() *Menu {
	return New(
		[]string{File, Edit, View, Help, Fun},
		map[string][]string{
			File: {ItemNew, ItemOpen, ItemSave, ItemSaveAs, ItemExit},
			Edit: {ItemCut, ItemCopy, ItemPaste},
			View: {ItemLineNum, ItemTheme},
			Help: {ItemManual, ItemAbout},
			Fun:  {ItemPrinter, ItemGame, ItemCoffee, ItemFeed, ItemProcras, ItemWrite},
		},
	)
}
