package app

import (
	"context"
	"fmt"
	"path/filepath"
)

const (
	saveCancelled   = "Save cancelled."
	saveNoFilename  = "Save cancelled - no filename provided."
	saveAsLabel     = "Save As: "
	overwriteFormat = "'%s' exists. Overwrite? (y/n)"
)

// load replaces the document with the file at path. A failure leaves the
// document unchanged.
func (app *Application) load(ctx context.Context, path string) {
	log := app.logger.WithComponent("files")
	doc, err := app.files.Load(ctx, path)
	if err != nil {
		err = NewOperationError("load", path, err)
		log.Warn("%v", err)
		app.message = StatusText(err)
		return
	}

	app.engine.Reset(doc.Lines, doc.Path)
	app.retokenize()
	log.WithFields(map[string]any{
		"encoding": string(doc.Encoding),
		"lines":    len(doc.Lines),
	}).Info("loaded %s", doc.Path)

	if doc.Fallback {
		app.message = fmt.Sprintf("Opened %s (Decoded as %s)", filepath.Base(doc.Path), doc.Encoding)
		return
	}
	app.message = fmt.Sprintf("Opened %s (%s)", filepath.Base(doc.Path), doc.Encoding)
}

// save writes the document. It prompts for a path when saveAs is set or
// the document has none, and confirms before replacing another file.
func (app *Application) save(ctx context.Context, saveAs bool) {
	path := app.engine.Path()
	if saveAs || path == "" {
		name, ok := app.promptText(saveAsLabel)
		if !ok || name == "" {
			app.message = saveNoFilename
			return
		}
		target := app.files.Abs(name)
		if target != path && app.files.Exists(target) {
			if !app.confirm(fmt.Sprintf(overwriteFormat, filepath.Base(target))) {
				app.message = saveCancelled
				return
			}
		}
		path = target
	}

	log := app.logger.WithComponent("files")
	abs, err := app.files.Save(ctx, path, app.engine.Lines())
	if err != nil {
		err = NewOperationError("save", path, err)
		log.Warn("%v", err)
		app.message = StatusText(err)
		return
	}
	app.engine.SetPath(abs)
	app.retokenize()
	log.Info("saved %s", abs)
	app.message = fmt.Sprintf("Saved to '%s'", filepath.Base(abs))
}
