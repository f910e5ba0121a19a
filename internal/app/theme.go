package app

import (
	"github.com/dshills/te/internal/renderer/highlight"
)

// setTheme selects the named theme and rebuilds the style table. An
// unknown name falls back to the first theme the source knows.
func (app *Application) setTheme(name string) {
	log := app.logger.WithComponent("highlight")
	theme, err := app.source.Theme(name)
	if err != nil {
		names := app.source.ThemeNames()
		if len(names) == 0 {
			log.Warn("theme %q: %v", name, err)
			app.theme = name
			app.styles = nil
			return
		}
		log.Warn("theme %q: %v; using %s", name, err, names[0])
		if theme, err = app.source.Theme(names[0]); err != nil {
			log.Error("theme %q: %v", names[0], err)
			app.theme = names[0]
			app.styles = nil
			return
		}
	}
	app.theme = theme.Name
	app.rebuildStyles(theme)
}

// nextTheme switches to the theme after the current one and returns its name.
func (app *Application) nextTheme() string {
	app.setTheme(highlight.NextTheme(app.source.ThemeNames(), app.theme))
	return app.theme
}

func (app *Application) rebuildStyles(theme highlight.Theme) {
	reduce := highlight.ReducerFor(app.backend.Colors())
	app.styles = highlight.NewStyleTable(theme, app.cfg.UI().StyleCapacity, reduce)
	if err := app.styles.Err(); err != nil && !app.warned[theme.Name] {
		app.warned[theme.Name] = true
		app.logger.WithComponent("highlight").Warn("%v", err)
	}
}

// retokenize picks a classifier for the current document.
func (app *Application) retokenize() {
	app.classifier = app.source.Classifier(app.engine.Path(), app.engine.Text())
}
