package app

import (
	"math/rand"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dshills/te/internal/config"
	"github.com/dshills/te/internal/engine"
	"github.com/dshills/te/internal/input/menu"
	"github.com/dshills/te/internal/input/mode"
	"github.com/dshills/te/internal/project/filestore"
	"github.com/dshills/te/internal/project/vfs"
	"github.com/dshills/te/internal/renderer"
	"github.com/dshills/te/internal/renderer/backend"
	"github.com/dshills/te/internal/renderer/core"
	"github.com/dshills/te/internal/renderer/gutter"
	"github.com/dshills/te/internal/renderer/highlight"
)

// Application is the editing session and its control loop.
type Application struct {
	cfg      *config.Config
	backend  backend.Backend
	renderer *renderer.Renderer
	logger   *Logger
	session  string

	engine  *engine.Engine
	menu    *menu.Menu
	modes   *mode.Manager
	modeCtx *mode.Context
	files   *filestore.FileStore

	source     highlight.Source
	theme      string
	styles     *highlight.StyleTable
	classifier highlight.Classifier
	warned     map[string]bool
	gutter     *gutter.Gutter

	message      string
	prompt       string
	promptActive bool

	// pick returns a random index in [0, n).
	pick func(n int) int

	running atomic.Bool
}

// Options configures the application.
type Options struct {
	// Backend is the terminal. Required.
	Backend backend.Backend

	// Config defaults to config.Default().
	Config *config.Config

	// FS defaults to the operating system file system.
	FS vfs.FS

	// Source defaults to the chroma style source.
	Source highlight.Source

	// Logger defaults to NullLogger.
	Logger *Logger
}

// New creates an application. The backend is not initialized until Run.
func New(opts Options) (*Application, error) {
	if opts.Backend == nil {
		return nil, ErrNoBackend
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	fs := opts.FS
	if fs == nil {
		fs = vfs.NewDisk()
	}
	source := opts.Source
	if source == nil {
		source = highlight.NewChromaSource()
	}
	logger := opts.Logger
	if logger == nil {
		logger = NullLogger
	}

	session := uuid.NewString()
	app := &Application{
		cfg:      cfg,
		backend:  opts.Backend,
		renderer: renderer.New(opts.Backend),
		logger:   logger.WithField("session", session),
		session:  session,
		menu:     menu.Default(),
		source:   source,
		warned:   make(map[string]bool),
		pick:     rand.Intn,
	}
	if err := cfg.Validate(); err != nil {
		app.logger.WithComponent("config").Warn("%v", err)
	}

	decoder, err := vfs.DecoderFor(cfg.Files().LegacyEncoding)
	if err != nil {
		app.logger.WithComponent("config").Warn("%v; using Latin-1", err)
		decoder = vfs.NewDecoder()
	}
	app.files = filestore.NewFileStore(fs, filestore.WithDecoder(decoder))

	ed := cfg.Editor()
	app.gutter = gutter.New(ed.GutterWidth, ed.LineNumbers)
	app.engine = engine.New(
		engine.WithWheelLines(ed.WheelLines),
		engine.WithViewportHeight(app.geometry().ContentHeight()),
	)

	workDir := cfg.Files().WorkDir
	if workDir == "" {
		workDir = "."
	}
	app.modeCtx = &mode.Context{
		Engine:   app.engine,
		Menu:     app.menu,
		FS:       fs,
		WorkDir:  app.files.Abs(workDir),
		Geometry: app.geometry(),
	}
	app.modes = mode.NewDefaultManager(app.modeCtx, mode.WithQuitCount(ed.QuitEscapes))
	app.modes.OnChange(func(from, to mode.Mode) {
		if from != nil {
			app.logger.WithComponent("mode").Debug("%s -> %s", from.Name(), to.Name())
		}
	})

	app.setTheme(cfg.UI().Theme)
	app.retokenize()
	return app, nil
}

// Session returns the session id carried in every log line.
func (app *Application) Session() string { return app.session }

// Engine returns the editing state.
func (app *Application) Engine() *engine.Engine { return app.engine }

// Mode returns the name of the current mode.
func (app *Application) Mode() string { return app.modes.CurrentName() }

// Message returns the current status message.
func (app *Application) Message() string { return app.message }

// Theme returns the current theme name.
func (app *Application) Theme() string { return app.theme }

// LineNumbers reports whether the gutter is shown.
func (app *Application) LineNumbers() bool { return app.gutter.Enabled() }

// Menu returns the menu bar state.
func (app *Application) Menu() *menu.Menu { return app.menu }

// LastFrame returns the most recently drawn frame.
func (app *Application) LastFrame() *renderer.Frame { return app.renderer.LastFrame() }

// geometry returns the current screen geometry.
func (app *Application) geometry() core.Geometry {
	w, h := app.backend.Size()
	g := core.Geometry{Width: w, Height: h}
	if app.gutter != nil {
		g.GutterWidth = app.gutter.Width()
	}
	return g
}
