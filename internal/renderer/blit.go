package renderer

import "github.com/dshills/te/internal/renderer/backend"

// Blit copies f to b and flushes it.
func Blit(f *Frame, b backend.Backend) {
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			b.SetCell(x, y, f.cells[y*f.width+x])
		}
	}
	if pos, ok := f.Cursor(); ok {
		b.ShowCursor(pos.Col, pos.Row)
	} else {
		b.HideCursor()
	}
	b.Show()
}

// Renderer draws scenes on a backend.
type Renderer struct {
	backend backend.Backend
	frames  uint64
	last    *Frame
}

// New creates a renderer for b.
func New(b backend.Backend) *Renderer {
	return &Renderer{backend: b}
}

// Render sizes the scene to the backend, composes it and blits the result.
// It returns ErrRenderOverflow when the terminal is too small; the notice
// frame is still drawn.
func (r *Renderer) Render(s Scene) error {
	s.Geometry.Width, s.Geometry.Height = r.backend.Size()
	f, err := Compose(s)
	Blit(f, r.backend)
	r.last = f
	r.frames++
	return err
}

// Frames returns how many frames were drawn.
func (r *Renderer) Frames() uint64 {
	return r.frames
}

// LastFrame returns the most recent frame, or nil.
func (r *Renderer) LastFrame() *Frame {
	return r.last
}
