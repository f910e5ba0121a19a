package engine

// Default configuration values.
const (
	DefaultViewportHeight = 20
	DefaultWheelLines     = 3
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithContent sets the initial content of the engine.
func WithContent(content string) Option {
	return func(e *Engine) {
		e.buf.Reset(splitLines(content))
	}
}

// WithLines sets the initial lines of the engine.
func WithLines(lines []string) Option {
	return func(e *Engine) {
		e.buf.Reset(lines)
	}
}

// WithPath sets the file association.
func WithPath(path string) Option {
	return func(e *Engine) {
		e.path = path
	}
}

// WithViewportHeight sets the number of content rows.
func WithViewportHeight(height int) Option {
	return func(e *Engine) {
		if height > 0 {
			e.viewHeight = height
		}
	}
}

// WithWheelLines sets how many lines one wheel step scrolls.
func WithWheelLines(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.wheelLines = n
		}
	}
}
