package app

import (
	"context"
	"errors"
	"time"

	"github.com/dshills/te/internal/input"
	"github.com/dshills/te/internal/input/mode"
	"github.com/dshills/te/internal/project/browser"
	"github.com/dshills/te/internal/renderer"
)

const browserTooSmall = "Terminal too small for file browser."

// Run initializes the backend and runs the control loop until a quit
// request, which returns ErrQuit, or until ctx is cancelled.
func (app *Application) Run(ctx context.Context) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.backend.Init(); err != nil {
		return NewOperationError("init", "terminal", err)
	}
	defer app.backend.Shutdown()
	app.backend.SetBlocking(false)

	// The color count is only known once the terminal is up.
	app.setTheme(app.theme)
	app.logger.Info("session started")
	app.render()

	ticker := time.NewTicker(app.cfg.UI().TickInterval)
	defer ticker.Stop()

	for {
		if err := app.Step(ctx); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			app.logger.Info("quit: %v", ctx.Err())
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Step runs one tick: poll at most one event, handle it and draw one frame.
func (app *Application) Step(ctx context.Context) error {
	ev := convertEvent(app.backend.PollEvent())
	err := app.handleEvent(ctx, ev)
	app.render()
	return err
}

func (app *Application) handleEvent(ctx context.Context, ev input.Event) error {
	if ev.IsNone() {
		return nil
	}
	app.syncGeometry()

	act, err := app.modes.Dispatch(ev, app.modeCtx)
	if err != nil {
		app.logger.WithComponent("mode").Error("dispatch %s: %v", ev, err)
	}
	if act == nil {
		return nil
	}
	if act.Message != "" {
		app.message = act.Message
	}
	return app.execute(ctx, act)
}

// syncGeometry updates everything derived from the terminal size.
func (app *Application) syncGeometry() {
	g := app.geometry()
	app.modeCtx.Geometry = g
	if h := max(1, g.ContentHeight()); h != app.engine.ViewportHeight() {
		app.engine.Resize(h)
	}

	if !app.modes.IsMode(mode.ModeBrowser) || app.modeCtx.Browser == nil {
		return
	}
	l := browser.NewLayout(g.Width, g.Height)
	if !l.Fits() {
		app.switchMode(mode.ModeEdit)
		app.message = browserTooSmall
		return
	}
	app.modeCtx.Browser.SetVisibleRows(l.ItemRows())
}

func (app *Application) switchMode(name string) {
	if err := app.modes.Switch(name, app.modeCtx); err != nil {
		app.logger.WithComponent("mode").Error("switch to %s: %v", name, err)
	}
}

func (app *Application) render() {
	app.syncGeometry()
	err := app.renderer.Render(app.scene())
	if err != nil && !errors.Is(err, renderer.ErrRenderOverflow) {
		app.logger.WithComponent("renderer").Error("%v", err)
	}
}

func (app *Application) scene() renderer.Scene {
	s := renderer.Scene{
		Doc:          app.engine,
		Menu:         app.menu,
		Styles:       app.styles,
		Classifier:   app.classifier,
		Gutter:       app.gutter,
		Theme:        app.theme,
		Message:      app.message,
		Prompt:       app.prompt,
		PromptActive: app.promptActive,
	}
	if cur := app.modes.Current(); cur != nil {
		s.Mode = cur.Name()
		s.ModeName = cur.DisplayName()
		s.CursorVisible = cur.CursorVisible()
	}
	if b := app.modeCtx.Browser; b != nil {
		s.Browser = b
	}
	return s
}
