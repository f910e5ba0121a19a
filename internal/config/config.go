package config

import (
	"errors"
	"fmt"
	"time"
)

// Default values.
const (
	DefaultTheme          = "pygments"
	DefaultGutterWidth    = 5
	DefaultWheelLines     = 3
	DefaultQuitEscapes    = 3
	DefaultStyleCapacity  = 63
	DefaultTickInterval   = 10 * time.Millisecond
	DefaultLegacyEncoding = "ISO-8859-1"

	maxTickInterval = time.Second
)

// ErrInvalidValue marks a setting that Validate had to correct.
var ErrInvalidValue = errors.New("invalid configuration value")

// Config is the complete editor configuration.
type Config struct {
	editor EditorConfig
	ui     UIConfig
	files  FilesConfig
}

// Option configures a Config instance.
type Option func(*Config)

// WithTheme sets the initial highlighting theme.
func WithTheme(name string) Option {
	return func(c *Config) {
		c.ui.Theme = name
	}
}

// WithLineNumbers shows or hides the gutter at startup.
func WithLineNumbers(show bool) Option {
	return func(c *Config) {
		c.editor.LineNumbers = show
	}
}

// WithGutterWidth sets the gutter width.
func WithGutterWidth(width int) Option {
	return func(c *Config) {
		c.editor.GutterWidth = width
	}
}

// WithWheelLines sets the wheel scroll step.
func WithWheelLines(n int) Option {
	return func(c *Config) {
		c.editor.WheelLines = n
	}
}

// WithQuitEscapes sets the Escape run that quits.
func WithQuitEscapes(n int) Option {
	return func(c *Config) {
		c.editor.QuitEscapes = n
	}
}

// WithStyleCapacity sets the style table capacity.
func WithStyleCapacity(n int) Option {
	return func(c *Config) {
		c.ui.StyleCapacity = n
	}
}

// WithTickInterval sets the event loop sleep.
func WithTickInterval(d time.Duration) Option {
	return func(c *Config) {
		c.ui.TickInterval = d
	}
}

// WithWorkDir sets the browser start directory for unsaved documents.
func WithWorkDir(dir string) Option {
	return func(c *Config) {
		c.files.WorkDir = dir
	}
}

// New creates a configuration from the defaults and opts. Call Validate to
// correct out-of-range values.
func New(opts ...Option) *Config {
	c := Default()
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		editor: EditorConfig{
			LineNumbers: false,
			GutterWidth: DefaultGutterWidth,
			WheelLines:  DefaultWheelLines,
			QuitEscapes: DefaultQuitEscapes,
		},
		ui: UIConfig{
			Theme:         DefaultTheme,
			StyleCapacity: DefaultStyleCapacity,
			TickInterval:  DefaultTickInterval,
		},
		files: FilesConfig{
			LegacyEncoding: DefaultLegacyEncoding,
		},
	}
}

// Validate resets nonsensical values to their defaults. It returns an
// error naming every corrected setting, or nil.
func (c *Config) Validate() error {
	var errs []error
	fix := func(name string, bad bool, reset func()) {
		if bad {
			reset()
			errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidValue, name))
		}
	}

	fix("editor.gutterWidth", c.editor.GutterWidth < 2, func() { c.editor.GutterWidth = DefaultGutterWidth })
	fix("editor.wheelLines", c.editor.WheelLines < 1, func() { c.editor.WheelLines = DefaultWheelLines })
	fix("editor.quitEscapes", c.editor.QuitEscapes < 1, func() { c.editor.QuitEscapes = DefaultQuitEscapes })
	fix("ui.theme", c.ui.Theme == "", func() { c.ui.Theme = DefaultTheme })
	fix("ui.styleCapacity", c.ui.StyleCapacity < 1, func() { c.ui.StyleCapacity = DefaultStyleCapacity })
	fix("ui.tickInterval", c.ui.TickInterval <= 0 || c.ui.TickInterval > maxTickInterval,
		func() { c.ui.TickInterval = DefaultTickInterval })

	return errors.Join(errs...)
}

// Editor returns the editor settings.
func (c *Config) Editor() EditorConfig {
	return c.editor
}

// UI returns the UI settings.
func (c *Config) UI() UIConfig {
	return c.ui
}

// Files returns the file handling settings.
func (c *Config) Files() FilesConfig {
	return c.files
}
